// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	authfeature "github.com/causewayhq/causeway/internal/app/features/auth"
	contactfeature "github.com/causewayhq/causeway/internal/app/features/contact"
	galleryfeature "github.com/causewayhq/causeway/internal/app/features/gallery"
	healthfeature "github.com/causewayhq/causeway/internal/app/features/health"
	newsfeature "github.com/causewayhq/causeway/internal/app/features/news"
	partnersfeature "github.com/causewayhq/causeway/internal/app/features/partners"
	programsfeature "github.com/causewayhq/causeway/internal/app/features/programs"
	projectsfeature "github.com/causewayhq/causeway/internal/app/features/projects"
	themesfeature "github.com/causewayhq/causeway/internal/app/features/themes"
	usersfeature "github.com/causewayhq/causeway/internal/app/features/users"
	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/mailer"
	"github.com/causewayhq/causeway/internal/app/system/ratelimit"
	"github.com/causewayhq/causeway/internal/app/system/uploads"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It builds the shared infrastructure
// (token manager, rate limiters, upload store, mailer) and mounts every
// feature router under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	tokens := sysauth.NewTokenManager(appCfg.JWTSecret, appCfg.JWTExpiry)
	sessions := sysauth.NewManager(tokens, userstore.New(deps.MongoDatabase), logger)

	// One general cap across /api plus stricter, separately counted
	// limiters for the credential and contact endpoints.
	apiLimiter := ratelimit.New(appCfg.RateLimitMax, appCfg.RateLimitWindow)
	loginLimiter := ratelimit.New(appCfg.AuthRateLimitMax, appCfg.RateLimitWindow)
	contactLimiter := ratelimit.New(appCfg.AuthRateLimitMax, appCfg.RateLimitWindow)

	uploadStore, err := buildUploadStore(appCfg)
	if err != nil {
		logger.Error("upload store init failed", zap.Error(err))
		return nil, err
	}

	// No SMTP host means no outbound mail; the contact feature stores
	// submissions either way.
	var mail mailer.Sender
	if appCfg.MailSMTPHost != "" {
		mail = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     appCfg.MailSMTPHost,
			Port:     appCfg.MailSMTPPort,
			User:     appCfg.MailSMTPUser,
			Pass:     appCfg.MailSMTPPass,
			From:     appCfg.MailFrom,
			FromName: appCfg.MailFromName,
		})
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(appCfg.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Locally stored uploads are served straight from disk; S3 objects are
	// served by the bucket or CDN instead.
	if appCfg.StorageType == "local" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, appCfg.JWTExpiry, secure, logger)
		r.Mount("/auth", authfeature.Routes(authHandler, sessions, loginLimiter))

		usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
		r.Mount("/users", usersfeature.Routes(usersHandler, sessions))

		projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, uploadStore, logger)
		r.Mount("/projects", projectsfeature.Routes(projectsHandler, sessions))

		newsHandler := newsfeature.NewHandler(deps.MongoDatabase, logger)
		r.Mount("/news", newsfeature.Routes(newsHandler, sessions))

		partnersHandler := partnersfeature.NewHandler(deps.MongoDatabase, uploadStore, logger)
		r.Mount("/partners", partnersfeature.Routes(partnersHandler, sessions))

		galleryHandler := galleryfeature.NewHandler(deps.MongoDatabase, uploadStore, logger)
		r.Mount("/gallery", galleryfeature.Routes(galleryHandler, sessions))

		programsHandler := programsfeature.NewHandler(deps.MongoDatabase, logger)
		r.Mount("/programs", programsfeature.Routes(programsHandler, sessions))

		themesHandler := themesfeature.NewHandler(deps.MongoDatabase, logger)
		r.Mount("/themes", themesfeature.Routes(themesHandler, sessions))

		contactHandler := contactfeature.NewHandler(deps.MongoDatabase, mail, appCfg.SiteName, appCfg.AdminEmail, logger)
		r.Mount("/contact", contactfeature.Routes(contactHandler, sessions, contactLimiter))
	})

	return r, nil
}

func buildUploadStore(appCfg AppConfig) (uploads.Store, error) {
	if appCfg.StorageType == "s3" {
		return uploads.NewS3(context.Background(),
			appCfg.StorageS3Region,
			appCfg.StorageS3Bucket,
			appCfg.StorageS3Prefix,
			appCfg.StorageCDNURL,
		)
	}
	return uploads.NewLocal(appCfg.StorageLocalPath, appCfg.StorageLocalURL)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
