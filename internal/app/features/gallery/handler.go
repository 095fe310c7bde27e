// internal/app/features/gallery/handler.go
package gallery

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	gallerystore "github.com/causewayhq/causeway/internal/app/store/gallery"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/uploads"
	"github.com/causewayhq/causeway/internal/domain/models"
)

const maxMediaUploadBytes = 50 << 20 // 50 MiB, videos included

// Handler is the feature-level entry point for the media Gallery.
type Handler struct {
	Gallery *gallerystore.Store
	Uploads uploads.Store
	Log     *zap.Logger
}

// NewHandler constructs a gallery handler bound to a DB, upload store,
// and logger.
func NewHandler(db *mongo.Database, uploadStore uploads.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Gallery: gallerystore.New(db),
		Uploads: uploadStore,
		Log:     logger,
	}
}

// canManage reports whether the signed-in user may modify the item.
// Admins manage everything; editors only what they uploaded.
func canManage(r *http.Request, item *models.GalleryItem) bool {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.Role == models.RoleEditor && item.UploadedBy == user.ID
}
