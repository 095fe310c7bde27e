// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("handler timeouts configured from environment", zap.Int("overrides", n))
	}

	if appCfg.BootstrapAdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.BootstrapAdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdmin guarantees an admin account exists for the given email.
// An existing account is promoted; a missing one is created with a
// one-time random password that is logged once so the operator can sign
// in and change it.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.MongoDatabase)

	existing, err := users.GetByEmail(ctx, email)
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("looking up admin account: %w", err)
	}

	if existing != nil {
		if existing.Role == models.RoleAdmin {
			return nil
		}
		if err := users.Update(ctx, existing.ID, models.User{Role: models.RoleAdmin}); err != nil {
			return fmt.Errorf("promoting admin account: %w", err)
		}
		logger.Info("promoted existing account to admin", zap.String("email", existing.Email))
		return nil
	}

	password := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	created, err := users.Create(ctx, models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	logger.Warn("created admin account with one-time password; change it after first login",
		zap.String("email", created.Email),
		zap.String("password", password),
	)
	return nil
}
