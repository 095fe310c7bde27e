// internal/app/features/gallery/upload.go
package gallery

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/uploads"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeUpload handles POST /gallery. Expects a multipart form with a
// "media" file plus "title" and optional "album", "tags" (comma-separated)
// fields. The media type is derived from the file's content type.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}

	if err := r.ParseMultipartForm(maxMediaUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "could not parse upload")
		return
	}
	file, header, err := r.FormFile("media")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "missing media file")
		return
	}
	defer file.Close()

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		httpjson.ValidationFailed(w, []httpjson.FieldError{{Field: "title", Message: "title is required"}})
		return
	}

	contentType := header.Header.Get("Content-Type")
	mediaType, ok := mediaTypeFor(contentType)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, "unsupported media type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	key := uploads.BuildKey("gallery", header.Filename)
	url, err := h.Uploads.Put(ctx, key, file, contentType)
	if err != nil {
		h.Log.Error("gallery: storing media failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not store media")
		return
	}

	item := models.GalleryItem{
		Title:      title,
		Type:       mediaType,
		URL:        url,
		Album:      strings.TrimSpace(r.FormValue("album")),
		Tags:       splitTags(r.FormValue("tags")),
		Meta:       models.MediaMeta{Size: header.Size},
		UploadedBy: user.ID,
	}

	created, err := h.Gallery.Create(ctx, item)
	if err != nil {
		_ = h.Uploads.Delete(ctx, key)
		h.Log.Error("gallery: saving item failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not store media")
		return
	}
	httpjson.Created(w, created)
}

func mediaTypeFor(contentType string) (string, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo, true
	}
	return "", false
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
