// internal/app/features/gallery/gallery.go
package gallery

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	gallerystore "github.com/causewayhq/causeway/internal/app/store/gallery"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeList handles GET /gallery with ?q=, ?type=, ?album=, ?tag=,
// ?project= filters and page/limit pagination. The endpoint is public.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := gallerystore.Filter{
		Search: query.Search(r, "q"),
		Type:   query.Get(r, "type"),
		Album:  query.Get(r, "album"),
		Tag:    query.Get(r, "tag"),
		Paging: paging.Parse(r, paging.DefaultLimit),
	}
	if raw := query.Get(r, "project"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid project id")
			return
		}
		f.ProjectID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, total, err := h.Gallery.List(ctx, f)
	if err != nil {
		h.Log.Error("gallery: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load gallery")
		return
	}
	httpjson.List(w, items, len(items), total, f.Paging.Info(total))
}

// ServeGet handles GET /gallery/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid gallery item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Gallery.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "gallery item not found")
			return
		}
		h.Log.Error("gallery: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load gallery item")
		return
	}
	httpjson.OK(w, item)
}

// ServeAlbums handles GET /gallery/albums.
func (h *Handler) ServeAlbums(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	albums, err := h.Gallery.Albums(ctx)
	if err != nil {
		h.Log.Error("gallery: albums failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load albums")
		return
	}
	httpjson.OK(w, albums)
}

// ServeStats handles GET /gallery/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Gallery.Stats(ctx)
	if err != nil {
		h.Log.Error("gallery: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load gallery stats")
		return
	}
	httpjson.OK(w, stats)
}

// loadManaged fetches the item and enforces the uploader-or-admin rule.
func (h *Handler) loadManaged(w http.ResponseWriter, r *http.Request) *models.GalleryItem {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid gallery item id")
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Gallery.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "gallery item not found")
			return nil
		}
		h.Log.Error("gallery: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load gallery item")
		return nil
	}

	if !canManage(r, item) {
		httpjson.Error(w, http.StatusForbidden, "insufficient permissions")
		return nil
	}
	return item
}

type updateItemRequest struct {
	Title     string   `json:"title" validate:"omitempty,min=2,max=200"`
	Album     string   `json:"album" validate:"omitempty,max=100"`
	Tags      []string `json:"tags"`
	ProjectID string   `json:"projectId"`
}

// ServeUpdate handles PUT /gallery/{id} for descriptive metadata.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	item := h.loadManaged(w, r)
	if item == nil {
		return
	}

	var req updateItemRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	update := models.GalleryItem{
		Title: req.Title,
		Album: req.Album,
		Tags:  req.Tags,
	}
	if req.ProjectID != "" {
		pid, err := primitive.ObjectIDFromHex(req.ProjectID)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid project id")
			return
		}
		update.ProjectID = &pid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gallery.Update(ctx, item.ID, update); err != nil {
		h.Log.Error("gallery: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update gallery item")
		return
	}

	updated, err := h.Gallery.GetByID(ctx, item.ID)
	if err != nil {
		h.Log.Error("gallery: reload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update gallery item")
		return
	}
	httpjson.OK(w, updated)
}

// ServeDelete handles DELETE /gallery/{id}. The stored media file is
// removed best-effort after the document.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	item := h.loadManaged(w, r)
	if item == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Gallery.Delete(ctx, item.ID); err != nil {
		h.Log.Error("gallery: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete gallery item")
		return
	}

	if key := h.Uploads.KeyFromURL(item.URL); key != "" {
		if err := h.Uploads.Delete(ctx, key); err != nil {
			h.Log.Warn("gallery: removing media file failed", zap.String("key", key), zap.Error(err))
		}
	}
	httpjson.OKMessage(w, "gallery item deleted")
}
