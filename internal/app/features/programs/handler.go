// internal/app/features/programs/handler.go
package programs

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	programstore "github.com/causewayhq/causeway/internal/app/store/programs"
)

// Handler is the feature-level entry point for Programs.
type Handler struct {
	Programs *programstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a programs handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Programs: programstore.New(db),
		Log:      logger,
	}
}
