// internal/app/features/projects/handler.go
package projects

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	projectstore "github.com/causewayhq/causeway/internal/app/store/projects"
	"github.com/causewayhq/causeway/internal/app/system/uploads"
)

const maxImageUploadBytes = 10 << 20 // 10 MiB

// Handler is the feature-level entry point for Projects.
type Handler struct {
	Projects *projectstore.Store
	Uploads  uploads.Store
	Log      *zap.Logger
}

// NewHandler constructs a projects handler bound to a DB, upload store,
// and logger.
func NewHandler(db *mongo.Database, uploadStore uploads.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Projects: projectstore.New(db),
		Uploads:  uploadStore,
		Log:      logger,
	}
}
