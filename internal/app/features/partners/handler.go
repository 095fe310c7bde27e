// internal/app/features/partners/handler.go
package partners

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	partnerstore "github.com/causewayhq/causeway/internal/app/store/partners"
	"github.com/causewayhq/causeway/internal/app/system/uploads"
)

const maxLogoUploadBytes = 5 << 20 // 5 MiB

// Handler is the feature-level entry point for Partners.
type Handler struct {
	Partners *partnerstore.Store
	Uploads  uploads.Store
	Log      *zap.Logger
}

// NewHandler constructs a partners handler bound to a DB, upload store,
// and logger.
func NewHandler(db *mongo.Database, uploadStore uploads.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Partners: partnerstore.New(db),
		Uploads:  uploadStore,
		Log:      logger,
	}
}
