// internal/app/features/gallery/routes.go
package gallery

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Routes returns the /gallery subrouter. Browsing is public; uploads and
// edits need an editor or admin.
func Routes(h *Handler, sessions *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/albums", h.ServeAlbums)
	r.Get("/stats", h.ServeStats)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(r chi.Router) {
		r.Use(sessions.Protect)
		r.Use(sysauth.RequireRole(models.RoleAdmin, models.RoleEditor))
		r.Post("/", h.ServeUpload)
		r.Put("/{id}", h.ServeUpdate)
		r.Delete("/{id}", h.ServeDelete)
	})

	return r
}
