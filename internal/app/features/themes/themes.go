// internal/app/features/themes/themes.go
package themes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	themestore "github.com/causewayhq/causeway/internal/app/store/themes"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeActive handles GET /themes/active, the endpoint the public site
// reads its colors from. 404 when no theme has been activated yet.
func (h *Handler) ServeActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	theme, err := h.Themes.GetActive(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "no active theme")
			return
		}
		h.Log.Error("themes: active lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load theme")
		return
	}
	httpjson.OK(w, theme)
}

// ServeList handles GET /themes.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	themes, err := h.Themes.List(ctx)
	if err != nil {
		h.Log.Error("themes: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load themes")
		return
	}
	httpjson.OK(w, themes)
}

type themeRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Primary    string `json:"primary" validate:"required,hexcolor"`
	Secondary  string `json:"secondary" validate:"required,hexcolor"`
	Accent     string `json:"accent" validate:"omitempty,hexcolor"`
	Background string `json:"background" validate:"omitempty,hexcolor"`
	Text       string `json:"text" validate:"omitempty,hexcolor"`
}

func (req themeRequest) toModel() models.Theme {
	return models.Theme{
		Name:       req.Name,
		Primary:    req.Primary,
		Secondary:  req.Secondary,
		Accent:     req.Accent,
		Background: req.Background,
		Text:       req.Text,
	}
}

// ServeCreate handles POST /themes. New themes start inactive.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
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

	created, err := h.Themes.Create(ctx, req.toModel())
	if err != nil {
		h.Log.Error("themes: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create theme")
		return
	}
	httpjson.Created(w, created)
}

// ServeUpdate handles PUT /themes/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	var req themeRequest
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

	if err := h.Themes.Update(ctx, id, req.toModel()); err != nil {
		h.Log.Error("themes: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update theme")
		return
	}

	updated, err := h.Themes.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "theme not found")
			return
		}
		h.Log.Error("themes: reload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update theme")
		return
	}
	httpjson.OK(w, updated)
}

// ServeActivate handles PUT /themes/{id}/activate. Exactly one theme is
// active afterward.
func (h *Handler) ServeActivate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	theme, err := h.Themes.Activate(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "theme not found")
			return
		}
		h.Log.Error("themes: activate failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not activate theme")
		return
	}
	httpjson.OK(w, theme)
}

// ServeDelete handles DELETE /themes/{id}. The active theme is protected.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Themes.Delete(ctx, id)
	if err != nil {
		if err == themestore.ErrActiveTheme {
			httpjson.Error(w, http.StatusConflict, "cannot delete the active theme")
			return
		}
		h.Log.Error("themes: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete theme")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "theme not found")
		return
	}
	httpjson.OKMessage(w, "theme deleted")
}
