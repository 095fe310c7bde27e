// internal/app/features/news/manage.go
package news

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/htmlsanitize"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type articleRequest struct {
	Title    string   `json:"title" validate:"required,min=3,max=200"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  string   `json:"excerpt" validate:"omitempty,max=500"`
	Category string   `json:"category" validate:"required,oneof=announcement event press story update"`
	CoverURL string   `json:"coverUrl" validate:"omitempty,url"`
	Tags     []string `json:"tags"`
}

func (req articleRequest) toModel() models.News {
	return models.News{
		Title:    req.Title,
		Content:  htmlsanitize.Sanitize(req.Content),
		Excerpt:  req.Excerpt,
		Category: req.Category,
		CoverURL: req.CoverURL,
		Tags:     req.Tags,
	}
}

// ServeCreate handles POST /news. Articles start as drafts; publishing is a
// separate step.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req articleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	article := req.toModel()
	article.AuthorID = user.ID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.News.Create(ctx, article)
	if err != nil {
		h.Log.Error("news: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create article")
		return
	}
	httpjson.Created(w, created)
}

// loadManaged fetches the article and enforces the author-or-admin rule.
// Writes the error response itself and returns nil when the caller should
// stop.
func (h *Handler) loadManaged(w http.ResponseWriter, r *http.Request) *models.News {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid article id")
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	article, err := h.News.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "article not found")
			return nil
		}
		h.Log.Error("news: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load article")
		return nil
	}

	if !canManage(r, article) {
		httpjson.Error(w, http.StatusForbidden, "insufficient permissions")
		return nil
	}
	return article
}

// ServeUpdate handles PUT /news/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	article := h.loadManaged(w, r)
	if article == nil {
		return
	}

	var req articleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.News.Update(ctx, article.ID, req.toModel()); err != nil {
		h.Log.Error("news: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update article")
		return
	}

	updated, err := h.News.GetByID(ctx, article.ID)
	if err != nil {
		h.Log.Error("news: reload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update article")
		return
	}
	httpjson.OK(w, updated)
}

// ServeDelete handles DELETE /news/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	article := h.loadManaged(w, r)
	if article == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.News.Delete(ctx, article.ID); err != nil {
		h.Log.Error("news: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete article")
		return
	}
	httpjson.OKMessage(w, "article deleted")
}

// ServePublish handles PUT /news/{id}/publish and /unpublish.
func (h *Handler) ServePublish(publish bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		article := h.loadManaged(w, r)
		if article == nil {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		updated, err := h.News.SetPublished(ctx, article.ID, publish)
		if err != nil {
			h.Log.Error("news: publish toggle failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "could not update article")
			return
		}
		httpjson.OK(w, updated)
	}
}
