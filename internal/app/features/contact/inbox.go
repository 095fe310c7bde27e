// internal/app/features/contact/inbox.go
package contact

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	contactstore "github.com/causewayhq/causeway/internal/app/store/contacts"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// ServeList handles GET /contact with ?q= and ?status= filters plus
// page/limit pagination. Admin inbox view, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := contactstore.Filter{
		Search: query.Search(r, "q"),
		Status: query.Get(r, "status"),
		Paging: paging.Parse(r, paging.DefaultLimit),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	messages, total, err := h.Contacts.List(ctx, f)
	if err != nil {
		h.Log.Error("contact: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load messages")
		return
	}
	httpjson.List(w, messages, len(messages), total, f.Paging.Info(total))
}

// ServeGet handles GET /contact/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid message id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	msg, err := h.Contacts.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "message not found")
			return
		}
		h.Log.Error("contact: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load message")
		return
	}
	httpjson.OK(w, msg)
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ServeSetStatus handles PUT /contact/{id}/status with {"status": "read"}.
func (h *Handler) ServeSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var req statusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidContactStatus(req.Status) {
		httpjson.Error(w, http.StatusBadRequest, "unknown status")
		return
	}

	h.setStatus(w, r, id, req.Status)
}

// ServeMarkStatus returns a handler that moves a message to a fixed status,
// backing the PUT /{id}/read and PUT /{id}/replied shortcuts.
func (h *Handler) ServeMarkStatus(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid message id")
			return
		}
		h.setStatus(w, r, id, status)
	}
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, id primitive.ObjectID, status string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msg, err := h.Contacts.SetStatus(ctx, id, status)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "message not found")
			return
		}
		h.Log.Error("contact: status update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update message")
		return
	}
	httpjson.OK(w, msg)
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Status string   `json:"status" validate:"required"`
}

type bulkResponse struct {
	Modified int64 `json:"modified"`
}

// ServeBulkStatus handles PUT /contact/bulk/status.
func (h *Handler) ServeBulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidContactStatus(req.Status) {
		httpjson.Error(w, http.StatusBadRequest, "unknown status")
		return
	}
	ids, ok := parseIDs(w, req.IDs)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	modified, err := h.Contacts.BulkSetStatus(ctx, ids, req.Status)
	if err != nil {
		h.Log.Error("contact: bulk status failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update messages")
		return
	}
	httpjson.OK(w, bulkResponse{Modified: modified})
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// ServeBulkDelete handles DELETE /contact/bulk.
func (h *Handler) ServeBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ids, ok := parseIDs(w, req.IDs)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Contacts.BulkDelete(ctx, ids)
	if err != nil {
		h.Log.Error("contact: bulk delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete messages")
		return
	}
	httpjson.OK(w, bulkResponse{Modified: deleted})
}

// ServeDelete handles DELETE /contact/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid message id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Contacts.Delete(ctx, id)
	if err != nil {
		h.Log.Error("contact: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete message")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "message not found")
		return
	}
	httpjson.OKMessage(w, "message deleted")
}

// ServeStats handles GET /contact/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Contacts.Stats(ctx)
	if err != nil {
		h.Log.Error("contact: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load contact stats")
		return
	}
	httpjson.OK(w, stats)
}

func parseIDs(w http.ResponseWriter, raw []string) ([]primitive.ObjectID, bool) {
	if len(raw) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "no ids given")
		return nil, false
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid message id: "+s)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
