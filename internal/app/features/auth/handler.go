// internal/app/features/auth/handler.go
package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
)

// Handler is the feature-level entry point for authentication.
type Handler struct {
	Users    *userstore.Store
	Tokens   *sysauth.TokenManager
	TokenTTL time.Duration
	Secure   bool // set Secure on auth cookies (prod)
	Log      *zap.Logger
}

// NewHandler constructs an auth handler bound to the user store.
func NewHandler(db *mongo.Database, tokens *sysauth.TokenManager, ttl time.Duration, secure bool, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Tokens:   tokens,
		TokenTTL: ttl,
		Secure:   secure,
		Log:      logger,
	}
}
