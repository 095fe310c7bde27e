// internal/app/bootstrap/startup_test.go
package bootstrap

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestEnsureAdminCreatesAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := ensureAdmin(ctx, deps, "admin@causeway.test", zap.NewNop()); err != nil {
		t.Fatalf("ensureAdmin: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"email": "admin@causeway.test"}).Decode(&user); err != nil {
		t.Fatalf("created admin not found: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role: got %q, want %q", user.Role, models.RoleAdmin)
	}
	if user.PasswordHash == "" {
		t.Error("created admin has no password hash")
	}
	if !user.IsActive {
		t.Error("created admin is not active")
	}
}

func TestEnsureAdminPromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	existing := fx.CreateUser(ctx, "Future Admin", "promote@causeway.test", "password123", models.RoleViewer)

	deps := DBDeps{MongoDatabase: db}
	if err := ensureAdmin(ctx, deps, "Promote@Causeway.Test", zap.NewNop()); err != nil {
		t.Fatalf("ensureAdmin: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user); err != nil {
		t.Fatalf("promoted user not found: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role after promotion: got %q, want %q", user.Role, models.RoleAdmin)
	}
	if user.PasswordHash != existing.PasswordHash {
		t.Error("promotion changed the password hash")
	}
}

func TestEnsureAdminIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAdmin(ctx, "Boss", "boss@causeway.test")

	deps := DBDeps{MongoDatabase: db}
	for i := 0; i < 2; i++ {
		if err := ensureAdmin(ctx, deps, "boss@causeway.test", zap.NewNop()); err != nil {
			t.Fatalf("ensureAdmin run %d: %v", i+1, err)
		}
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "boss@causeway.test"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("admin accounts: got %d, want 1", n)
	}
}
