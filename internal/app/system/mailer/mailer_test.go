package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type failingSender struct{ calls int }

func (f *failingSender) Send(context.Context, Email) error {
	f.calls++
	return errors.New("relay down")
}

func TestSendBestEffortSwallowsError(t *testing.T) {
	s := &failingSender{}
	SendBestEffort(context.Background(), s, Email{To: "a@x.com", Subject: "Hi"}, zap.NewNop())
	if s.calls != 1 {
		t.Errorf("calls = %d, want 1", s.calls)
	}
}

func TestBuildContactNotification(t *testing.T) {
	e := BuildContactNotification("admin@site.org", ContactEmailData{
		SiteName: "Causeway",
		Name:     "A",
		Email:    "a@x.com",
		Subject:  "Hi",
		Message:  "Hello there, testing.",
		Phone:    "555-0100",
	})

	if e.To != "admin@site.org" {
		t.Errorf("To = %q", e.To)
	}
	if !strings.Contains(e.Subject, "Hi") {
		t.Errorf("Subject = %q, want it to contain the form subject", e.Subject)
	}
	if !strings.Contains(e.TextBody, "a@x.com") || !strings.Contains(e.TextBody, "555-0100") {
		t.Errorf("text body missing sender details: %q", e.TextBody)
	}
	if !strings.Contains(e.HTMLBody, "Hello there, testing.") {
		t.Error("html body missing message")
	}
}

func TestBuildContactAutoReply(t *testing.T) {
	e := BuildContactAutoReply(ContactEmailData{
		SiteName: "Causeway",
		Name:     "A",
		Email:    "a@x.com",
		Subject:  "Hi",
		Message:  "Hello there, testing.",
	})

	if e.To != "a@x.com" {
		t.Errorf("To = %q, want the submitter", e.To)
	}
	if !strings.Contains(e.TextBody, "Thank you for contacting Causeway") {
		t.Errorf("text body = %q", e.TextBody)
	}
}

func TestAutoReplyHTMLEscapes(t *testing.T) {
	e := BuildContactAutoReply(ContactEmailData{
		SiteName: "Causeway",
		Name:     "A",
		Email:    "a@x.com",
		Subject:  "<script>alert(1)</script>",
		Message:  "hi",
	})
	if strings.Contains(e.HTMLBody, "<script>") {
		t.Error("html body must escape user input")
	}
}
