// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// TokenCookie is the cookie the login endpoint sets alongside the JSON
// token, so browser clients can authenticate without managing headers.
const TokenCookie = "token"

// UserLoader fetches the current user on every protected request, so role
// changes and disabled accounts take effect immediately rather than at
// token expiry. Implemented by the users store.
type UserLoader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Manager bundles token validation with user loading and provides the
// route middleware.
type Manager struct {
	tokens *TokenManager
	users  UserLoader
	log    *zap.Logger
}

// NewManager constructs an auth manager.
func NewManager(tokens *TokenManager, users UserLoader, logger *zap.Logger) *Manager {
	return &Manager{tokens: tokens, users: users, log: logger}
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user attached by Protect.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

func withUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser attaches a user directly to the request context,
// bypassing token validation. Tests only.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return withUser(r, u)
}

// extractToken pulls the JWT from the Authorization: Bearer header, falling
// back to the token cookie.
func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// Protect validates the request's token, loads the referenced user, and
// attaches it to the context. Any failure (missing token, bad signature,
// unknown user, disabled account) yields a 401 with a generic message.
func (m *Manager) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := extractToken(r)
		if tok == "" {
			httpjson.Error(w, http.StatusUnauthorized, "not authorized")
			return
		}

		claims, err := m.tokens.Validate(tok)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "not authorized")
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.ID)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "not authorized")
			return
		}

		u, err := m.users.GetByID(r.Context(), id)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "not authorized")
			return
		}
		if !u.IsActive {
			httpjson.Error(w, http.StatusUnauthorized, "account is deactivated")
			return
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireRole returns middleware that 403s unless the authenticated user's
// role is in the allowed set. Must run after Protect.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "not authorized")
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				httpjson.Error(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetTokenCookie writes the auth cookie on login. Secure is enabled in
// production so the cookie only travels over HTTPS.
func SetTokenCookie(w http.ResponseWriter, token string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie expires the auth cookie on logout.
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
