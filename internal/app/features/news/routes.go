// internal/app/features/news/routes.go
package news

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Routes returns the /news subrouter. The public feed and article pages are
// open; everything else needs a signed-in user.
func Routes(h *Handler, sessions *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Group(func(r chi.Router) {
		r.Use(sessions.Protect)

		r.Group(func(r chi.Router) {
			r.Use(sysauth.RequireRole(models.RoleAdmin, models.RoleEditor))
			r.Get("/admin", h.ServeAdminList)
			r.Get("/stats", h.ServeStats)
			r.Post("/", h.ServeCreate)
			r.Put("/{id}", h.ServeUpdate)
			r.Delete("/{id}", h.ServeDelete)
			r.Put("/{id}/publish", h.ServePublish(true))
			r.Put("/{id}/unpublish", h.ServePublish(false))
		})

		r.Put("/{id}/like", h.ServeLike(true))
		r.Put("/{id}/unlike", h.ServeLike(false))
	})

	// Wildcard last so /admin and /stats resolve to their handlers.
	r.Get("/{idOrSlug}", h.ServeGet)

	return r
}
