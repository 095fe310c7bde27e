// internal/app/features/auth/handler_test.go
package auth

import (
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens := sysauth.NewTokenManager("test-secret", time.Hour)
	return NewHandler(db, tokens, time.Hour, false, zap.NewNop()), db
}

func TestLoginSucceeds(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateUser(ctx, "Robin Vale", "robin@example.com", "correct-horse", models.RoleEditor)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "Robin@Example.com",
		"password": "correct-horse",
	})
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data sessionResponse `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.Token == "" {
		t.Error("no token in login response")
	}
	if resp.Data.User == nil || resp.Data.User.Email != "robin@example.com" {
		t.Errorf("unexpected user in login response: %+v", resp.Data.User)
	}

	var foundCookie bool
	for _, c := range rec.Result().Cookies() {
		if c.Value != "" && c.MaxAge > 0 {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Error("login did not set an auth cookie")
	}
}

func TestLoginSameAnswerForBadEmailAndBadPassword(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateUser(ctx, "Robin Vale", "robin@example.com", "correct-horse", models.RoleViewer)

	cases := []map[string]any{
		{"email": "nobody@example.com", "password": "correct-horse"},
		{"email": "robin@example.com", "password": "wrong"},
	}
	for _, body := range cases {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/auth/login", body)
		rec := testutil.NewRecorder()
		h.ServeLogin(rec, req)
		rec.AssertStatus(t, http.StatusUnauthorized)

		var resp struct {
			Message string `json:"message"`
		}
		rec.DecodeJSON(t, &resp)
		if resp.Message != "invalid credentials" {
			t.Errorf("message: got %q, want %q", resp.Message, "invalid credentials")
		}
	}
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateDisabledUser(ctx, "Gone User", "gone@example.com")

	req := testutil.NewJSONRequest(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "gone@example.com",
		"password": "password123",
	})
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)
	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestRegisterForcesViewerRole(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
		"name":     "New Person",
		"email":    "new@example.com",
		"password": "longenough1",
	})
	rec := testutil.NewRecorder()
	h.ServeRegister(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Data sessionResponse `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.User.Role != models.RoleViewer {
		t.Errorf("role: got %q, want %q", resp.Data.User.Role, models.RoleViewer)
	}
	if resp.Data.Token == "" {
		t.Error("no token issued on registration")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateUser(ctx, "Robin Vale", "taken@example.com", "password123", models.RoleViewer)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
		"name":     "Imposter",
		"email":    "Taken@Example.com",
		"password": "longenough1",
	})
	rec := testutil.NewRecorder()
	h.ServeRegister(rec, req)
	rec.AssertStatus(t, http.StatusConflict)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	h, _ := newTestHandler(t)

	user := testutil.EditorUser()
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/auth/me", user)
	rec := testutil.NewRecorder()
	h.ServeMe(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data models.User `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.Email != user.Email {
		t.Errorf("email: got %q, want %q", resp.Data.Email, user.Email)
	}
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	h, db := newTestHandler(t)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	user := fx.CreateUser(ctx, "Robin Vale", "robin@example.com", "old-password1", models.RoleViewer)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/auth/me/password", map[string]any{
		"currentPassword": "not-the-password",
		"newPassword":     "brand-new-pass1",
	})
	req = testutil.WithUser(req, &user)
	rec := testutil.NewRecorder()
	h.ServeChangePassword(rec, req)
	rec.AssertStatus(t, http.StatusUnauthorized)
}
