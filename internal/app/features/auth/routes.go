// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/ratelimit"
)

// Routes returns the /auth subrouter. Login and register share a limiter so
// credential stuffing cannot hop between the two endpoints.
func Routes(h *Handler, sessions *sysauth.Manager, loginLimiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(loginLimiter.Middleware)
		r.Post("/register", h.ServeRegister)
		r.Post("/login", h.ServeLogin)
	})

	r.Post("/logout", h.ServeLogout)

	r.Group(func(r chi.Router) {
		r.Use(sessions.Protect)
		r.Get("/me", h.ServeMe)
		r.Put("/me", h.ServeUpdateMe)
		r.Put("/me/password", h.ServeChangePassword)
	})

	return r
}
