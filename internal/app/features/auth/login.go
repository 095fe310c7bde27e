// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ServeLogin handles POST /login. Bad email and bad password get the same
// answer so the endpoint cannot be used to probe for accounts.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
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

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Log.Error("auth: looking up user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not sign in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !user.IsActive {
		httpjson.Error(w, http.StatusUnauthorized, "account is deactivated")
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex())
	if err != nil {
		h.Log.Error("auth: generating token failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not sign in")
		return
	}

	sysauth.SetTokenCookie(w, token, int(h.TokenTTL.Seconds()), h.Secure)
	httpjson.OK(w, sessionResponse{Token: token, User: user})
}

// ServeLogout handles POST /logout by clearing the auth cookie. Bearer
// tokens simply expire; there is no server-side revocation list.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	sysauth.ClearTokenCookie(w, h.Secure)
	httpjson.OKMessage(w, "signed out")
}

// issueSession mints a token for a freshly created account and responds 201.
func (h *Handler) issueSession(w http.ResponseWriter, user models.User) {
	token, err := h.Tokens.Generate(user.ID.Hex())
	if err != nil {
		h.Log.Error("auth: generating token failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create account")
		return
	}
	sysauth.SetTokenCookie(w, token, int(h.TokenTTL.Seconds()), h.Secure)
	httpjson.Created(w, sessionResponse{Token: token, User: &user})
}
