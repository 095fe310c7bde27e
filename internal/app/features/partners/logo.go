// internal/app/features/partners/logo.go
package partners

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/uploads"
)

type logoResponse struct {
	LogoURL string `json:"logo_url"`
}

// ServeUploadLogo handles POST /partners/{id}/logo. Expects a multipart
// form with a "logo" file. Replacing a logo removes the previous file
// best-effort; a leftover file is not worth failing the request over.
func (h *Handler) ServeUploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	if err := r.ParseMultipartForm(maxLogoUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "could not parse upload")
		return
	}
	file, header, err := r.FormFile("logo")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "missing logo file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/svg+xml", "image/webp":
	default:
		httpjson.Error(w, http.StatusBadRequest, "unsupported logo type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	key := uploads.BuildKey("logos", header.Filename)
	url, err := h.Uploads.Put(ctx, key, file, contentType)
	if err != nil {
		h.Log.Error("partners: storing logo failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not store logo")
		return
	}

	prevURL, err := h.Partners.SetLogoURL(ctx, id, url)
	if err != nil {
		_ = h.Uploads.Delete(ctx, key)
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "partner not found")
			return
		}
		h.Log.Error("partners: saving logo url failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not store logo")
		return
	}

	h.removeLogoFile(ctx, prevURL)
	httpjson.OK(w, logoResponse{LogoURL: url})
}

// removeLogoFile deletes the file backing url, if this store owns it.
func (h *Handler) removeLogoFile(ctx context.Context, url string) {
	if url == "" {
		return
	}
	key := h.Uploads.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := h.Uploads.Delete(ctx, key); err != nil {
		h.Log.Warn("partners: removing old logo failed", zap.String("key", key), zap.Error(err))
	}
}
