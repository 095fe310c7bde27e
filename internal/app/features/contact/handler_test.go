// internal/app/features/contact/handler_test.go
package contact

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	contactstore "github.com/causewayhq/causeway/internal/app/store/contacts"
	"github.com/causewayhq/causeway/internal/app/system/mailer"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

// recordingSender captures outbound mail instead of delivering it.
type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Email
}

func (s *recordingSender) Send(_ context.Context, e mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, e)
	return nil
}

// failingSender simulates a down SMTP relay.
type failingSender struct{}

func (failingSender) Send(context.Context, mailer.Email) error {
	return errors.New("relay unreachable")
}

func newTestHandler(t *testing.T, mail mailer.Sender) (*Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, mail, "Causeway", "admin@causeway.test", zap.NewNop()), db
}

func submitBody() map[string]any {
	return map[string]any{
		"name":    "Jordan Blake",
		"email":   "Jordan@Example.com",
		"subject": "Volunteering",
		"message": "I would like to help with the literacy program this fall.",
	}
}

func TestSubmitStoresMessage(t *testing.T) {
	sender := &recordingSender{}
	h, _ := newTestHandler(t, sender)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contact", submitBody())
	rec := testutil.NewRecorder()
	h.ServeSubmit(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Data models.Contact `json:"data"`
	}
	rec.DecodeJSON(t, &resp)

	if resp.Data.Status != models.ContactNew {
		t.Errorf("status: got %q, want %q", resp.Data.Status, models.ContactNew)
	}
	if resp.Data.Email != "jordan@example.com" {
		t.Errorf("email not normalized: got %q", resp.Data.Email)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("sent emails: got %d, want 2 (notification + auto-reply)", len(sender.sent))
	}
	if sender.sent[0].To != "admin@causeway.test" {
		t.Errorf("notification recipient: got %q", sender.sent[0].To)
	}
	if sender.sent[1].To != "jordan@example.com" {
		t.Errorf("auto-reply recipient: got %q", sender.sent[1].To)
	}
}

func TestSubmitSucceedsWhenMailerFails(t *testing.T) {
	h, _ := newTestHandler(t, failingSender{})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contact", submitBody())
	rec := testutil.NewRecorder()
	h.ServeSubmit(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, total, err := h.Contacts.List(ctx, contactstore.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Errorf("stored messages: got %d, want 1", total)
	}
}

func TestSubmitSucceedsWithoutMailer(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contact", submitBody())
	rec := testutil.NewRecorder()
	h.ServeSubmit(rec, req)
	rec.AssertStatus(t, http.StatusCreated)
}

func TestSubmitValidation(t *testing.T) {
	h, _ := newTestHandler(t, &recordingSender{})

	body := submitBody()
	body["message"] = "too short"
	req := testutil.NewJSONRequest(t, http.MethodPost, "/contact", body)
	rec := testutil.NewRecorder()
	h.ServeSubmit(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestSetStatusMarksReplied(t *testing.T) {
	h, db := newTestHandler(t, &recordingSender{})
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	msg := fx.CreateContact(ctx, "Sam Lee", "sam@example.com", models.ContactNew)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/contact/"+msg.ID.Hex()+"/status",
		map[string]any{"status": models.ContactReplied})
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeSetStatus(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data models.Contact `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.Status != models.ContactReplied {
		t.Errorf("status: got %q, want %q", resp.Data.Status, models.ContactReplied)
	}
	if resp.Data.RepliedAt == nil {
		t.Error("RepliedAt not stamped on reply")
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	h, db := newTestHandler(t, &recordingSender{})
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	msg := fx.CreateContact(ctx, "Sam Lee", "sam@example.com", models.ContactNew)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/contact/"+msg.ID.Hex()+"/status",
		map[string]any{"status": "spam"})
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeSetStatus(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestBulkStatusReportsModifiedCount(t *testing.T) {
	h, db := newTestHandler(t, &recordingSender{})
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	a := fx.CreateContact(ctx, "A", "a@example.com", models.ContactNew)
	b := fx.CreateContact(ctx, "B", "b@example.com", models.ContactNew)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/contact/bulk/status", map[string]any{
		"ids":    []string{a.ID.Hex(), b.ID.Hex()},
		"status": models.ContactArchived,
	})
	rec := testutil.NewRecorder()
	h.ServeBulkStatus(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data bulkResponse `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.Modified != 2 {
		t.Errorf("modified: got %d, want 2", resp.Data.Modified)
	}
}
