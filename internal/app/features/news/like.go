// internal/app/features/news/like.go
package news

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type likeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ServeLike handles PUT /news/{id}/like and /unlike for signed-in users.
// Both operations are idempotent.
func (h *Handler) ServeLike(like bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sysauth.CurrentUser(r)
		if !ok {
			httpjson.Error(w, http.StatusUnauthorized, "not authorized")
			return
		}

		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid article id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		var article *models.News
		if like {
			article, err = h.News.Like(ctx, id, user.ID)
		} else {
			article, err = h.News.Unlike(ctx, id, user.ID)
		}
		if err != nil {
			if err == mongo.ErrNoDocuments {
				httpjson.NotFound(w, "article not found")
				return
			}
			h.Log.Error("news: like toggle failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "could not update article")
			return
		}
		httpjson.OK(w, likeResponse{Likes: len(article.Likes), Liked: like})
	}
}
