// internal/app/features/news/handler.go
package news

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	newsstore "github.com/causewayhq/causeway/internal/app/store/news"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Handler is the feature-level entry point for News.
type Handler struct {
	News *newsstore.Store
	Log  *zap.Logger
}

// NewHandler constructs a news handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		News: newsstore.New(db),
		Log:  logger,
	}
}

// canManage reports whether the signed-in user may modify the article.
// Admins manage everything; editors only their own articles.
func canManage(r *http.Request, article *models.News) bool {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.Role == models.RoleEditor && article.AuthorID == user.ID
}
