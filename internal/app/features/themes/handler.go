// internal/app/features/themes/handler.go
package themes

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	themestore "github.com/causewayhq/causeway/internal/app/store/themes"
)

// Handler is the feature-level entry point for site Themes.
type Handler struct {
	Themes *themestore.Store
	Log    *zap.Logger
}

// NewHandler constructs a themes handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Themes: themestore.New(db),
		Log:    logger,
	}
}
