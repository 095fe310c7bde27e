package contactstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	contactstore "github.com/causewayhq/causeway/internal/app/store/contacts"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestStore_Create_ForcesNewStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Contact{
		Name:    "Visitor",
		Email:   "Visitor@Example.com",
		Subject: "Volunteering",
		Message: "How can I help?",
		Status:  models.ContactArchived, // submitted status must be ignored
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.ContactNew {
		t.Errorf("status = %q, want new", created.Status)
	}
	if created.Email != "visitor@example.com" {
		t.Errorf("email = %q, want normalized", created.Email)
	}
	if created.RepliedAt != nil {
		t.Error("RepliedAt must start unset")
	}
}

func TestStore_SetStatus_RepliedStampsTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	msg := fx.CreateContact(ctx, "Visitor", "v@example.com", models.ContactNew)

	read, err := store.SetStatus(ctx, msg.ID, models.ContactRead)
	if err != nil {
		t.Fatalf("SetStatus(read) failed: %v", err)
	}
	if read.Status != models.ContactRead || read.RepliedAt != nil {
		t.Errorf("after read: status=%q repliedAt=%v", read.Status, read.RepliedAt)
	}

	replied, err := store.SetStatus(ctx, msg.ID, models.ContactReplied)
	if err != nil {
		t.Fatalf("SetStatus(replied) failed: %v", err)
	}
	if replied.RepliedAt == nil {
		t.Error("expected RepliedAt to be stamped")
	}
}

func TestStore_BulkSetStatus_ReturnsModifiedCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	a := fx.CreateContact(ctx, "A", "a@example.com", models.ContactNew)
	b := fx.CreateContact(ctx, "B", "b@example.com", models.ContactNew)
	c := fx.CreateContact(ctx, "C", "c@example.com", models.ContactNew)

	ids := []primitive.ObjectID{a.ID, b.ID, c.ID}
	modified, err := store.BulkSetStatus(ctx, ids, models.ContactArchived)
	if err != nil {
		t.Fatalf("BulkSetStatus failed: %v", err)
	}
	if modified != 3 {
		t.Errorf("modified = %d, want 3", modified)
	}

	// Unknown IDs simply don't count.
	modified, err = store.BulkSetStatus(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID()}, models.ContactRead)
	if err != nil {
		t.Fatalf("BulkSetStatus failed: %v", err)
	}
	if modified != 1 {
		t.Errorf("modified = %d, want 1", modified)
	}

	if n, err := store.BulkSetStatus(ctx, nil, models.ContactRead); err != nil || n != 0 {
		t.Errorf("empty bulk = (%d, %v), want (0, nil)", n, err)
	}
}

func TestStore_BulkDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	a := fx.CreateContact(ctx, "A", "a@example.com", models.ContactArchived)
	b := fx.CreateContact(ctx, "B", "b@example.com", models.ContactArchived)
	fx.CreateContact(ctx, "Keep", "k@example.com", models.ContactNew)

	deleted, err := store.BulkDelete(ctx, []primitive.ObjectID{a.ID, b.ID})
	if err != nil {
		t.Fatalf("BulkDelete failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	_, total, err := store.List(ctx, contactstore.Filter{Paging: paging.Params{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("remaining = %d, want 1", total)
	}
}

func TestStore_List_FilterByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateContact(ctx, "New One", "n1@example.com", models.ContactNew)
	fx.CreateContact(ctx, "New Two", "n2@example.com", models.ContactNew)
	fx.CreateContact(ctx, "Old", "o@example.com", models.ContactArchived)

	messages, total, err := store.List(ctx, contactstore.Filter{
		Status: models.ContactNew,
		Paging: paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	for _, m := range messages {
		if m.Status != models.ContactNew {
			t.Errorf("unexpected status %q", m.Status)
		}
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateContact(ctx, "A", "a@example.com", models.ContactNew)
	fx.CreateContact(ctx, "B", "b@example.com", models.ContactNew)
	fx.CreateContact(ctx, "C", "c@example.com", models.ContactReplied)

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.ByStatus[models.ContactNew] != 2 {
		t.Errorf("ByStatus[new] = %d, want 2", st.ByStatus[models.ContactNew])
	}
	if len(st.Monthly) != 1 {
		t.Errorf("Monthly buckets = %d, want 1", len(st.Monthly))
	}
}
