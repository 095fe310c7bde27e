// internal/app/features/themes/routes.go
package themes

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Routes returns the /themes subrouter. The active theme is public (the
// site reads it); management is admin-only.
func Routes(h *Handler, sessions *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/active", h.ServeActive)

	r.Group(func(r chi.Router) {
		r.Use(sessions.Protect)
		r.Use(sysauth.RequireRole(models.RoleAdmin))
		r.Get("/", h.ServeList)
		r.Post("/", h.ServeCreate)
		r.Put("/{id}", h.ServeUpdate)
		r.Put("/{id}/activate", h.ServeActivate)
		r.Delete("/{id}", h.ServeDelete)
	})

	return r
}
