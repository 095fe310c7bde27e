// internal/app/features/users/manage.go
package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type createUserRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=128"`
	Role       string `json:"role" validate:"required,oneof=admin editor viewer"`
	Department string `json:"department" validate:"omitempty,oneof=management projects ai communications finance"`
}

// ServeCreate handles POST /users. Unlike self-registration, an admin can
// set the role directly.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("users: hashing password failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Department:   req.Department,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		h.Log.Error("users: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create user")
		return
	}
	httpjson.Created(w, user)
}

type updateUserRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Role       string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	Department string `json:"department" validate:"omitempty,oneof=management projects ai communications finance"`
}

// ServeUpdate handles PUT /users/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	// An admin cannot demote themselves; that would risk locking everyone
	// out of user management.
	if current, ok := sysauth.CurrentUser(r); ok && current.ID == id && req.Role != "" && req.Role != models.RoleAdmin {
		httpjson.Error(w, http.StatusBadRequest, "cannot change your own role")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Users.Update(ctx, id, models.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		h.Log.Error("users: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update user")
		return
	}

	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		httpjson.NotFound(w, "user not found")
		return
	}
	httpjson.OK(w, updated)
}

// ServeDeactivate handles DELETE /users/{id}. Accounts are disabled, not
// removed, so content authorship stays resolvable.
func (h *Handler) ServeDeactivate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if current, ok := sysauth.CurrentUser(r); ok && current.ID == id {
		httpjson.Error(w, http.StatusBadRequest, "cannot deactivate your own account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	modified, err := h.Users.SetActive(ctx, id, false)
	if err != nil {
		h.Log.Error("users: deactivate failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not deactivate user")
		return
	}
	if modified == 0 {
		httpjson.NotFound(w, "user not found")
		return
	}
	httpjson.OKMessage(w, "user deactivated")
}

// ServeActivate handles PUT /users/{id}/activate to re-enable an account.
func (h *Handler) ServeActivate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Users.SetActive(ctx, id, true); err != nil {
		h.Log.Error("users: activate failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not activate user")
		return
	}
	httpjson.OKMessage(w, "user activated")
}
