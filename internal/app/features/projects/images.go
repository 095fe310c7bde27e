// internal/app/features/projects/images.go
package projects

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
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeUploadImage handles POST /projects/{id}/images. Expects a multipart
// form with an "image" file and optional "caption" and "isCover" fields.
func (h *Handler) ServeUploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "could not parse upload")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageType(contentType) {
		httpjson.Error(w, http.StatusBadRequest, "unsupported image type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	key := uploads.BuildKey("projects", header.Filename)
	url, err := h.Uploads.Put(ctx, key, file, contentType)
	if err != nil {
		h.Log.Error("projects: storing image failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	img := models.ProjectImage{
		URL:     url,
		Caption: r.FormValue("caption"),
		IsCover: r.FormValue("isCover") == "true",
	}
	if err := h.Projects.AddImage(ctx, id, img); err != nil {
		// The file is orphaned if we cannot attach it; clean it up.
		_ = h.Uploads.Delete(ctx, key)
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "project not found")
			return
		}
		h.Log.Error("projects: attaching image failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}
	httpjson.Created(w, img)
}

func allowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
