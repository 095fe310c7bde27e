package themestore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	themestore "github.com/causewayhq/causeway/internal/app/store/themes"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestStore_Activate_SingleActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := themestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, models.Theme{Name: "Default", Primary: "#111111", Secondary: "#222222"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := store.Create(ctx, models.Theme{Name: "Dark", Primary: "#000000", Secondary: "#333333"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.Activate(ctx, first.ID); err != nil {
		t.Fatalf("first Activate failed: %v", err)
	}
	activated, err := store.Activate(ctx, second.ID)
	if err != nil {
		t.Fatalf("second Activate failed: %v", err)
	}
	if !activated.IsActive {
		t.Error("expected second theme to be active")
	}

	// Exactly one theme is active after any number of activations.
	themes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var active int
	for _, th := range themes {
		if th.IsActive {
			active++
			if th.ID != second.ID {
				t.Errorf("wrong theme active: %s", th.Name)
			}
		}
	}
	if active != 1 {
		t.Errorf("active themes = %d, want 1", active)
	}
}

func TestStore_GetActive_NoneYet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := themestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Theme{Name: "Idle", Primary: "#111111", Secondary: "#222222"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.GetActive(ctx); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_Create_IgnoresActiveFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := themestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Theme{
		Name: "Sneaky", Primary: "#111111", Secondary: "#222222", IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.IsActive {
		t.Error("Create must not allow activating a theme; activation is explicit")
	}
}

func TestStore_Delete_ActiveThemeRefused(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := themestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Theme{Name: "Current", Primary: "#111111", Secondary: "#222222"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Activate(ctx, created.ID); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if _, err := store.Delete(ctx, created.ID); err != themestore.ErrActiveTheme {
		t.Errorf("expected ErrActiveTheme, got %v", err)
	}

	// Deactivated themes delete normally.
	other, err := store.Create(ctx, models.Theme{Name: "Old", Primary: "#444444", Secondary: "#555555"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	deleted, err := store.Delete(ctx, other.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
