// internal/app/features/news/list.go
package news

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	newsstore "github.com/causewayhq/causeway/internal/app/store/news"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeList handles GET /news for the public feed: published articles only,
// with ?q=, ?category=, ?tag= filters and page/limit pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	published := true
	f := newsstore.Filter{
		Search:    query.Search(r, "q"),
		Category:  query.Get(r, "category"),
		Tag:       query.Get(r, "tag"),
		Published: &published,
		Paging:    paging.Parse(r, paging.DefaultLimit),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	articles, total, err := h.News.List(ctx, f)
	if err != nil {
		h.Log.Error("news: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load news")
		return
	}
	httpjson.List(w, articles, len(articles), total, f.Paging.Info(total))
}

// ServeAdminList handles GET /news/admin: drafts included, optional
// ?published= and ?author= filters on top of the public ones. Editors only
// see their own articles; the ?author= filter is an admin tool.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}

	f := newsstore.Filter{
		Search:   query.Search(r, "q"),
		Category: query.Get(r, "category"),
		Tag:      query.Get(r, "tag"),
		Paging:   paging.Parse(r, paging.DefaultLimit),
	}
	switch query.Get(r, "published") {
	case "true":
		published := true
		f.Published = &published
	case "false":
		published := false
		f.Published = &published
	}
	if user.Role != models.RoleAdmin {
		authorID := user.ID
		f.AuthorID = &authorID
	} else if raw := query.Get(r, "author"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid author id")
			return
		}
		f.AuthorID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	articles, total, err := h.News.List(ctx, f)
	if err != nil {
		h.Log.Error("news: admin list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load news")
		return
	}
	httpjson.List(w, articles, len(articles), total, f.Paging.Info(total))
}

// ServeGet handles GET /news/{idOrSlug}. Reading a published article bumps
// its view counter atomically; drafts are only visible to whoever can
// manage them and do not count views.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "idOrSlug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	article, err := h.lookup(ctx, key)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "article not found")
			return
		}
		h.Log.Error("news: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load article")
		return
	}

	if !article.Published {
		if !canManage(r, article) {
			httpjson.NotFound(w, "article not found")
			return
		}
		httpjson.OK(w, article)
		return
	}

	counted, err := h.News.IncrementViews(ctx, article.ID)
	if err != nil {
		// The read itself succeeded; serve the article with the stale count.
		h.Log.Warn("news: view count failed", zap.Error(err))
		httpjson.OK(w, article)
		return
	}
	httpjson.OK(w, counted)
}

func (h *Handler) lookup(ctx context.Context, key string) (*models.News, error) {
	if id, err := primitive.ObjectIDFromHex(key); err == nil {
		return h.News.GetByID(ctx, id)
	}
	return h.News.GetBySlug(ctx, key)
}

// ServeStats handles GET /news/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.News.Stats(ctx)
	if err != nil {
		h.Log.Error("news: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load news stats")
		return
	}
	httpjson.OK(w, stats)
}
