// internal/app/features/auth/me.go
package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeMe handles GET /me for the signed-in user.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}
	httpjson.OK(w, user)
}

type updateMeRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Department string `json:"department" validate:"omitempty,oneof=management projects ai communications finance"`
}

// ServeUpdateMe handles PUT /me. Role changes are not allowed here; only an
// admin can change roles through the users feature.
func (h *Handler) ServeUpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req updateMeRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.Update(ctx, user.ID, models.User{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		h.Log.Error("auth: updating profile failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update profile")
		return
	}

	updated, err := h.Users.GetByID(ctx, user.ID)
	if err != nil {
		h.Log.Error("auth: reloading profile failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update profile")
		return
	}
	httpjson.OK(w, updated)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128"`
}

// ServeChangePassword handles PUT /me/password.
func (h *Handler) ServeChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req changePasswordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("auth: hashing password failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not change password")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		h.Log.Error("auth: updating password failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not change password")
		return
	}
	httpjson.OKMessage(w, "password changed")
}
