// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Routes returns the /users subrouter. User administration is admin-only.
func Routes(h *Handler, sessions *sysauth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessions.Protect)
	r.Use(sysauth.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Get("/stats", h.ServeStats)
	r.Post("/", h.ServeCreate)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.ServeUpdate)
	r.Delete("/{id}", h.ServeDeactivate)
	r.Put("/{id}/activate", h.ServeActivate)

	return r
}
