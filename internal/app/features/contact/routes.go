// internal/app/features/contact/routes.go
package contact

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/ratelimit"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Routes returns the /contact subrouter. Submission is public but rate
// limited; the inbox is admin-only.
func Routes(h *Handler, sessions *sysauth.Manager, submitLimiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(submitLimiter.Middleware)
		r.Post("/", h.ServeSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.Protect)
		r.Use(sysauth.RequireRole(models.RoleAdmin))

		r.Get("/", h.ServeList)
		r.Get("/stats", h.ServeStats)
		r.Put("/bulk/status", h.ServeBulkStatus)
		r.Delete("/bulk", h.ServeBulkDelete)

		r.Get("/{id}", h.ServeGet)
		r.Put("/{id}/status", h.ServeSetStatus)
		r.Put("/{id}/read", h.ServeMarkStatus(models.ContactRead))
		r.Put("/{id}/replied", h.ServeMarkStatus(models.ContactReplied))
		r.Delete("/{id}", h.ServeDelete)
	})

	return r
}
