// internal/app/features/partners/partners.go
package partners

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	partnerstore "github.com/causewayhq/causeway/internal/app/store/partners"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeList handles GET /partners with ?q=, ?level=, ?category= filters and
// page/limit pagination. The endpoint is public.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := partnerstore.Filter{
		Search:   query.Search(r, "q"),
		Level:    query.Get(r, "level"),
		Category: query.Get(r, "category"),
		Paging:   paging.Parse(r, paging.DefaultLimit),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	partners, total, err := h.Partners.List(ctx, f)
	if err != nil {
		h.Log.Error("partners: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load partners")
		return
	}
	httpjson.List(w, partners, len(partners), total, f.Paging.Info(total))
}

// ServeGet handles GET /partners/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	partner, err := h.Partners.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "partner not found")
			return
		}
		h.Log.Error("partners: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load partner")
		return
	}
	httpjson.OK(w, partner)
}

// ServeStats handles GET /partners/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Partners.Stats(ctx)
	if err != nil {
		h.Log.Error("partners: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load partner stats")
		return
	}
	httpjson.OK(w, stats)
}

type partnerRequest struct {
	Name             string               `json:"name" validate:"required,min=2,max=200"`
	Description      string               `json:"description" validate:"omitempty,max=2000"`
	Website          string               `json:"website" validate:"omitempty,url"`
	PartnershipLevel string               `json:"partnershipLevel" validate:"omitempty,oneof=platinum gold silver bronze supporter"`
	Category         string               `json:"category" validate:"required,oneof=corporate ngo government academic media"`
	Contact          models.ContactPerson `json:"contact"`
	StartDate        *time.Time           `json:"startDate"`
	EndDate          *time.Time           `json:"endDate"`
}

func (req partnerRequest) toModel() models.Partner {
	return models.Partner{
		Name:             req.Name,
		Description:      req.Description,
		Website:          req.Website,
		PartnershipLevel: req.PartnershipLevel,
		Category:         req.Category,
		Contact:          req.Contact,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
}

// ServeCreate handles POST /partners.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req partnerRequest
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

	created, err := h.Partners.Create(ctx, req.toModel())
	if err != nil {
		h.Log.Error("partners: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create partner")
		return
	}
	httpjson.Created(w, created)
}

// ServeUpdate handles PUT /partners/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	var req partnerRequest
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

	if err := h.Partners.Update(ctx, id, req.toModel()); err != nil {
		h.Log.Error("partners: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update partner")
		return
	}

	updated, err := h.Partners.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "partner not found")
			return
		}
		h.Log.Error("partners: reload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update partner")
		return
	}
	httpjson.OK(w, updated)
}

// ServeDelete handles DELETE /partners/{id}. The stored logo is removed
// best-effort after the document.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	partner, err := h.Partners.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "partner not found")
			return
		}
		h.Log.Error("partners: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete partner")
		return
	}

	deleted, err := h.Partners.Delete(ctx, id)
	if err != nil {
		h.Log.Error("partners: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete partner")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "partner not found")
		return
	}

	h.removeLogoFile(ctx, partner.LogoURL)
	httpjson.OKMessage(w, "partner deleted")
}
