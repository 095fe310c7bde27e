// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	projectstore "github.com/causewayhq/causeway/internal/app/store/projects"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeList handles GET /projects with ?q=, ?category=, ?status=,
// ?featured= filters and page/limit pagination. The endpoint is public.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := projectstore.Filter{
		Search:   query.Search(r, "q"),
		Category: query.Get(r, "category"),
		Status:   query.Get(r, "status"),
		Paging:   paging.Parse(r, paging.DefaultLimit),
	}
	switch query.Get(r, "featured") {
	case "true":
		featured := true
		f.Featured = &featured
	case "false":
		featured := false
		f.Featured = &featured
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, total, err := h.Projects.List(ctx, f)
	if err != nil {
		h.Log.Error("projects: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load projects")
		return
	}
	httpjson.List(w, projects, len(projects), total, f.Paging.Info(total))
}

// ServeGet handles GET /projects/{idOrSlug}. A 24-char hex value is treated
// as an ObjectID, anything else as a slug, so both /projects/66b2… and
// /projects/clean-water work.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "idOrSlug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, err := h.lookup(ctx, key)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "project not found")
			return
		}
		h.Log.Error("projects: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load project")
		return
	}
	httpjson.OK(w, project)
}

func (h *Handler) lookup(ctx context.Context, key string) (*models.Project, error) {
	if id, err := primitive.ObjectIDFromHex(key); err == nil {
		return h.Projects.GetByID(ctx, id)
	}
	return h.Projects.GetBySlug(ctx, key)
}

// ServeStats handles GET /projects/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Projects.Stats(ctx)
	if err != nil {
		h.Log.Error("projects: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load project stats")
		return
	}
	httpjson.OK(w, stats)
}
