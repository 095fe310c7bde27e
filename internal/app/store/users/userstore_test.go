package userstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:         "Amina Diallo",
		Email:        "  Amina@Example.COM ",
		PasswordHash: "$2a$10$fakehash",
		Role:         models.RoleEditor,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "amina@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.NameCI != "amina diallo" {
		t.Errorf("NameCI = %q, want folded %q", created.NameCI, "amina diallo")
	}
	if !created.IsActive {
		t.Error("expected new user to be active")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := models.User{Name: "First", Email: "dup@example.com", PasswordHash: "x"}
	if _, err := store.Create(ctx, u); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Same email with different case must still collide.
	u.Name = "Second"
	u.Email = "DUP@example.com"
	if _, err := store.Create(ctx, u); err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateAdmin(ctx, "Admin", "boss@example.com")

	got, err := store.GetByEmail(ctx, "Boss@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.Name != "Admin" {
		t.Errorf("got user %q", got.Name)
	}
}

func TestStore_SetActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateEditor(ctx, "Editor", "ed@example.com")

	modified, err := store.SetActive(ctx, u.ID, false)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if modified != 1 {
		t.Errorf("modified = %d, want 1", modified)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.IsActive {
		t.Error("expected user to be deactivated")
	}
	if got.PasswordHash == "" {
		t.Error("deactivation must not clear credentials")
	}
}

func TestStore_List_FilterByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateAdmin(ctx, "Admin One", "a1@example.com")
	fx.CreateEditor(ctx, "Editor One", "e1@example.com")
	fx.CreateEditor(ctx, "Editor Two", "e2@example.com")

	users, total, err := store.List(ctx, userstore.Filter{
		Role:   models.RoleEditor,
		Paging: paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	for _, u := range users {
		if u.Role != models.RoleEditor {
			t.Errorf("unexpected role %q in filtered list", u.Role)
		}
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateAdmin(ctx, "Admin", "a@example.com")
	fx.CreateEditor(ctx, "Editor", "e@example.com")
	fx.CreateDisabledUser(ctx, "Gone", "g@example.com")

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.Active != 2 {
		t.Errorf("Active = %d, want 2", st.Active)
	}
	if st.Inactive != 1 {
		t.Errorf("Inactive = %d, want 1", st.Inactive)
	}
	if st.ByRole[models.RoleAdmin] != 1 {
		t.Errorf("ByRole[admin] = %d, want 1", st.ByRole[models.RoleAdmin])
	}
}
