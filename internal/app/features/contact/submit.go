// internal/app/features/contact/submit.go
package contact

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/mailer"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
}

// ServeSubmit handles POST /contact, the public contact form. The message
// is stored first; notification emails are best-effort and never fail the
// request.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Contacts.Create(ctx, models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Phone:   req.Phone,
	})
	if err != nil {
		h.Log.Error("contact: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not submit message")
		return
	}

	h.sendEmails(ctx, created)

	httpjson.Created(w, created)
}

func (h *Handler) sendEmails(ctx context.Context, m models.Contact) {
	if h.Mail == nil {
		return
	}
	data := mailer.ContactEmailData{
		SiteName: h.SiteName,
		Name:     m.Name,
		Email:    m.Email,
		Subject:  m.Subject,
		Message:  m.Message,
		Phone:    m.Phone,
	}
	if h.AdminEmail != "" {
		mailer.SendBestEffort(ctx, h.Mail, mailer.BuildContactNotification(h.AdminEmail, data), h.Log)
	}
	mailer.SendBestEffort(ctx, h.Mail, mailer.BuildContactAutoReply(data), h.Log)
}
