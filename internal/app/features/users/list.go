// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
)

// ServeList handles GET /users with ?q=, ?role=, ?department=, ?active=
// filters and page/limit pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := userstore.Filter{
		Search:     query.Search(r, "q"),
		Role:       query.Get(r, "role"),
		Department: query.Get(r, "department"),
		Paging:     paging.Parse(r, paging.DefaultLimit),
	}
	switch query.Get(r, "active") {
	case "true":
		active := true
		f.Active = &active
	case "false":
		active := false
		f.Active = &active
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, total, err := h.Users.List(ctx, f)
	if err != nil {
		h.Log.Error("users: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load users")
		return
	}
	httpjson.List(w, users, len(users), total, f.Paging.Info(total))
}

// ServeGet handles GET /users/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "user not found")
			return
		}
		h.Log.Error("users: get failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load user")
		return
	}
	httpjson.OK(w, user)
}

// ServeStats handles GET /users/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Users.Stats(ctx)
	if err != nil {
		h.Log.Error("users: stats failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not load user stats")
		return
	}
	httpjson.OK(w, stats)
}
