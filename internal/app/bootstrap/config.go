// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Causeway.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: CAUSEWAY_MONGO_URI, CAUSEWAY_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_fallback_uri", Default: "", Desc: "Optional fallback URI tried when the primary is unreachable"},
	{Name: "mongo_database", Default: "causeway", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Auth
	{Name: "jwt_secret", Default: "", Desc: "Bearer token signing secret (required)"},
	{Name: "jwt_expiry", Default: "168h", Desc: "Bearer token lifetime (e.g., 24h, 168h)"},

	// CORS
	{Name: "allowed_origins", Default: "http://localhost:3000", Desc: "Comma-separated list of allowed CORS origins"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 's3'"},
	{Name: "storage_local_path", Default: "./uploads", Desc: "Local storage path for uploaded files"},
	{Name: "storage_local_url", Default: "/uploads", Desc: "URL prefix for serving local files"},

	// S3 configuration
	{Name: "storage_s3_region", Default: "", Desc: "AWS region for S3"},
	{Name: "storage_s3_bucket", Default: "", Desc: "S3 bucket name"},
	{Name: "storage_s3_prefix", Default: "media/", Desc: "S3 key prefix"},
	{Name: "storage_cdn_url", Default: "", Desc: "Optional CDN URL in front of the bucket"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP server host (blank disables outbound mail)"},
	{Name: "mail_smtp_port", Default: 587, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@causeway.org", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Causeway", Desc: "From display name"},

	// Site identity
	{Name: "site_name", Default: "Causeway", Desc: "Site name used in emails"},
	{Name: "admin_email", Default: "", Desc: "Inbox that receives contact notifications"},

	// Rate limits
	{Name: "rate_limit_window", Default: "10m", Desc: "Rate limit window"},
	{Name: "rate_limit_max", Default: 300, Desc: "Requests allowed per window per IP across /api"},
	{Name: "auth_rate_limit_max", Default: 10, Desc: "Login/register/contact attempts allowed per window per IP"},

	// Admin bootstrap
	{Name: "bootstrap_admin_email", Default: "", Desc: "Email promoted to (or created as) admin on startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, CAUSEWAY_* for app), and
// command-line flags, merged with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAUSEWAY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoFallbackURI: appValues.String("mongo_fallback_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		JWTExpiry: appValues.Duration("jwt_expiry", 168*time.Hour),

		AllowedOrigins: appValues.String("allowed_origins"),

		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		StorageS3Region: appValues.String("storage_s3_region"),
		StorageS3Bucket: appValues.String("storage_s3_bucket"),
		StorageS3Prefix: appValues.String("storage_s3_prefix"),
		StorageCDNURL:   appValues.String("storage_cdn_url"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		SiteName:   appValues.String("site_name"),
		AdminEmail: appValues.String("admin_email"),

		RateLimitWindow:  appValues.Duration("rate_limit_window", 10*time.Minute),
		RateLimitMax:     appValues.Int("rate_limit_max"),
		AuthRateLimitMax: appValues.Int("auth_rate_limit_max"),

		BootstrapAdminEmail: appValues.String("bootstrap_admin_email"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The JWT secret has no usable default: tokens signed with a known value
// would let anyone mint sessions.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoFallbackURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoFallbackURI); err != nil {
			logger.Error("invalid fallback MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid fallback MongoDB URI: %w", err)
		}
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must be set (CAUSEWAY_JWT_SECRET)")
	}
	if len(appCfg.JWTSecret) < 32 && coreCfg.Env == "prod" {
		return fmt.Errorf("jwt_secret must be at least 32 characters in prod")
	}

	switch appCfg.StorageType {
	case "local":
	case "s3":
		if appCfg.StorageS3Bucket == "" || appCfg.StorageS3Region == "" {
			return fmt.Errorf("storage_type 's3' requires storage_s3_bucket and storage_s3_region")
		}
	default:
		return fmt.Errorf("storage_type must be 'local' or 's3', got %q", appCfg.StorageType)
	}

	return nil
}
