// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, log level); AppConfig is where
// everything specific to Causeway lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoFallbackURI string // Optional local fallback tried when the primary is unreachable
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Token-based auth configuration
	JWTSecret string        // Signing secret for bearer tokens (required)
	JWTExpiry time.Duration // Token lifetime (default 7 days)

	// CORS
	AllowedOrigins string // Comma-separated list of allowed origins

	// File storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/uploads")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region string // AWS region
	StorageS3Bucket string // S3 bucket name
	StorageS3Prefix string // Key prefix (e.g., "media/")
	StorageCDNURL   string // Optional CDN URL in front of the bucket

	// Email/SMTP configuration. Leaving the host blank disables outbound
	// mail; contact submissions are still stored.
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string // From email address (e.g., noreply@causeway.org)
	MailFromName string // From display name

	// Site identity used in emails and the contact workflow
	SiteName   string
	AdminEmail string // Inbox that receives contact notifications

	// Rate limiting: a general cap on /api plus a stricter one shared by
	// the credential and contact endpoints
	RateLimitWindow  time.Duration
	RateLimitMax     int
	AuthRateLimitMax int

	// Admin bootstrap: promotes (or creates) this account on startup
	BootstrapAdminEmail string
}
