// internal/app/features/contact/handler.go
package contact

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	contactstore "github.com/causewayhq/causeway/internal/app/store/contacts"
	"github.com/causewayhq/causeway/internal/app/system/mailer"
)

// Handler is the feature-level entry point for the contact workflow.
type Handler struct {
	Contacts   *contactstore.Store
	Mail       mailer.Sender
	SiteName   string
	AdminEmail string // inbox that receives submission notifications
	Log        *zap.Logger
}

// NewHandler constructs a contact handler. Mail may be nil when no SMTP
// host is configured; submissions are still stored.
func NewHandler(db *mongo.Database, mail mailer.Sender, siteName, adminEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		Contacts:   contactstore.New(db),
		Mail:       mail,
		SiteName:   siteName,
		AdminEmail: adminEmail,
		Log:        logger,
	}
}
