// internal/app/features/programs/programs.go
package programs

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	programstore "github.com/causewayhq/causeway/internal/app/store/programs"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeList handles GET /programs with ?q=, ?category=, ?status= filters
// and page/limit pagination. The endpoint is public.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := programstore.Filter{
		Search:   query.Search(r, "q"),
		Category: query.Get(r, "category"),
		Status:   query.Get(r, "status"),
		Paging:   paging.Parse(r, paging.DefaultLimit),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	programs, total, err := h.Programs.List(ctx, f)
	if err != nil {
		h.Log.Error("programs: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load programs")
		return
	}
	httpjson.List(w, programs, len(programs), total, f.Paging.Info(total))
}

// ServeGet handles GET /programs/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid program id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	program, err := h.Programs.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "program not found")
			return
		}
		h.Log.Error("programs: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load program")
		return
	}
	httpjson.OK(w, program)
}

// ServeStats handles GET /programs/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Programs.Stats(ctx)
	if err != nil {
		h.Log.Error("programs: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load program stats")
		return
	}
	httpjson.OK(w, stats)
}

type programRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=200"`
	Description   string   `json:"description" validate:"omitempty,max=5000"`
	Category      string   `json:"category" validate:"required,oneof=training outreach research mentorship"`
	Status        string   `json:"status" validate:"omitempty,oneof=upcoming ongoing finished"`
	Beneficiaries int      `json:"beneficiaries" validate:"omitempty,min=0"`
	Features      []string `json:"features"`
}

func (req programRequest) toModel() models.Program {
	return models.Program{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Status:        req.Status,
		Beneficiaries: req.Beneficiaries,
		Features:      req.Features,
	}
}

// ServeCreate handles POST /programs.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req programRequest
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

	created, err := h.Programs.Create(ctx, req.toModel())
	if err != nil {
		h.Log.Error("programs: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create program")
		return
	}
	httpjson.Created(w, created)
}

// ServeUpdate handles PUT /programs/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid program id")
		return
	}

	var req programRequest
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

	if err := h.Programs.Update(ctx, id, req.toModel()); err != nil {
		h.Log.Error("programs: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update program")
		return
	}

	updated, err := h.Programs.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "program not found")
			return
		}
		h.Log.Error("programs: reload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update program")
		return
	}
	httpjson.OK(w, updated)
}

// ServeDelete handles DELETE /programs/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid program id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Programs.Delete(ctx, id)
	if err != nil {
		h.Log.Error("programs: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete program")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "program not found")
		return
	}
	httpjson.OKMessage(w, "program deleted")
}
