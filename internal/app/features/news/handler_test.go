// internal/app/features/news/handler_test.go
package news

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestGetHidesDraftsFromAnonymousReaders(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	draft := fx.CreateNews(ctx, "Unfinished Story", "story", false, author.ID)

	req := testutil.NewRequest(http.MethodGet, "/news/"+draft.Slug)
	req = testutil.WithChiURLParam(req, "idOrSlug", draft.Slug)
	rec := testutil.NewRecorder()
	h.ServeGet(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestGetShowsDraftToItsAuthor(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	draft := fx.CreateNews(ctx, "Unfinished Story", "story", false, author.ID)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/news/"+draft.Slug, &author)
	req = testutil.WithChiURLParam(req, "idOrSlug", draft.Slug)
	rec := testutil.NewRecorder()
	h.ServeGet(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data models.News `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.Views != 0 {
		t.Errorf("draft view count: got %d, want 0", resp.Data.Views)
	}
}

func TestGetCountsViewsOnPublishedArticle(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	article := fx.CreateNews(ctx, "Big Launch", "announcement", true, author.ID)

	for want := 1; want <= 3; want++ {
		req := testutil.NewRequest(http.MethodGet, "/news/"+article.Slug)
		req = testutil.WithChiURLParam(req, "idOrSlug", article.Slug)
		rec := testutil.NewRecorder()
		h.ServeGet(rec, req)
		rec.AssertStatus(t, http.StatusOK)

		var resp struct {
			Data models.News `json:"data"`
		}
		rec.DecodeJSON(t, &resp)
		if resp.Data.Views != int64(want) {
			t.Errorf("views after read %d: got %d, want %d", want, resp.Data.Views, want)
		}
	}
}

func TestPublicListExcludesDrafts(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	fx.CreateNews(ctx, "Published One", "update", true, author.ID)
	fx.CreateNews(ctx, "Draft One", "update", false, author.ID)

	req := testutil.NewRequest(http.MethodGet, "/news")
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Total int64         `json:"total"`
		Data  []models.News `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Total != 1 {
		t.Errorf("public list total: got %d, want 1", resp.Total)
	}
	for _, a := range resp.Data {
		if !a.Published {
			t.Errorf("draft %q leaked into public list", a.Title)
		}
	}
}

func TestAdminListForbiddenForViewers(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	viewer := fx.CreateUser(ctx, "Curious Viewer", "viewer@example.com", "password123", models.RoleViewer)

	gate := sysauth.RequireRole(models.RoleAdmin, models.RoleEditor)(http.HandlerFunc(h.ServeAdminList))
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/news/admin", &viewer)
	rec := testutil.NewRecorder()
	gate.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestAdminListScopesEditorsToOwnArticles(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	rival := fx.CreateEditor(ctx, "Rival", "rival@example.com")
	fx.CreateNews(ctx, "My Draft", "update", false, author.ID)
	fx.CreateNews(ctx, "Rival Draft", "update", false, rival.ID)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/news/admin", &author)
	rec := testutil.NewRecorder()
	h.ServeAdminList(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Total int64         `json:"total"`
		Data  []models.News `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Total != 1 {
		t.Errorf("editor admin list total: got %d, want 1", resp.Total)
	}
	for _, a := range resp.Data {
		if a.AuthorID != author.ID {
			t.Errorf("article %q by another author leaked into editor's list", a.Title)
		}
	}
}

func TestAdminListAuthorFilterForAdmins(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := fx.CreateAdmin(ctx, "Boss", "boss@example.com")
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	rival := fx.CreateEditor(ctx, "Rival", "rival@example.com")
	fx.CreateNews(ctx, "Author Draft", "update", false, author.ID)
	fx.CreateNews(ctx, "Rival Draft", "update", false, rival.ID)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/news/admin?author="+author.ID.Hex(), &admin)
	rec := testutil.NewRecorder()
	h.ServeAdminList(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Total int64 `json:"total"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Total != 1 {
		t.Errorf("filtered admin list total: got %d, want 1", resp.Total)
	}
}

func TestUpdateForbiddenForOtherEditor(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	other := fx.CreateEditor(ctx, "Rival", "rival@example.com")
	article := fx.CreateNews(ctx, "Contested Piece", "story", true, author.ID)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/news/"+article.ID.Hex(), map[string]any{
		"title":    "Hijacked",
		"content":  "<p>mine now</p>",
		"category": "story",
	})
	req = testutil.WithUser(req, &other)
	req = testutil.WithChiURLParam(req, "id", article.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeUpdate(rec, req)
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestAdminCanUpdateAnyArticle(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	admin := fx.CreateAdmin(ctx, "Boss", "boss@example.com")
	article := fx.CreateNews(ctx, "Editable Piece", "story", true, author.ID)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/news/"+article.ID.Hex(), map[string]any{
		"title":    "Edited by Admin",
		"content":  "<p>cleaned up</p>",
		"category": "story",
	})
	req = testutil.WithUser(req, &admin)
	req = testutil.WithChiURLParam(req, "id", article.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeUpdate(rec, req)
	rec.AssertStatus(t, http.StatusOK)
}

func TestCreateSanitizesContent(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	editor := fx.CreateEditor(ctx, "Author", "author@example.com")

	req := testutil.NewJSONRequest(t, http.MethodPost, "/news", map[string]any{
		"title":    "Script Attempt",
		"content":  `<p>hello</p><script>alert("xss")</script>`,
		"category": "update",
	})
	req = testutil.WithUser(req, &editor)
	rec := testutil.NewRecorder()
	h.ServeCreate(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Data models.News `json:"data"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Data.Content != "<p>hello</p>" {
		t.Errorf("content not sanitized: %q", resp.Data.Content)
	}
	if resp.Data.Published {
		t.Error("new article created already published")
	}
	if resp.Data.AuthorID != editor.ID {
		t.Error("author not taken from session")
	}
}

func TestLikeIsIdempotent(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	author := fx.CreateEditor(ctx, "Author", "author@example.com")
	reader := fx.CreateUser(ctx, "Reader", "reader@example.com", "password123", models.RoleViewer)
	article := fx.CreateNews(ctx, "Likeable", "story", true, author.ID)

	for i := 0; i < 2; i++ {
		req := testutil.NewAuthenticatedRequest(http.MethodPut, "/news/"+article.ID.Hex()+"/like", &reader)
		req = testutil.WithChiURLParam(req, "id", article.ID.Hex())
		rec := testutil.NewRecorder()
		h.ServeLike(true)(rec, req)
		rec.AssertStatus(t, http.StatusOK)

		var resp struct {
			Data likeResponse `json:"data"`
		}
		rec.DecodeJSON(t, &resp)
		if resp.Data.Likes != 1 {
			t.Errorf("likes after press %d: got %d, want 1", i+1, resp.Data.Likes)
		}
	}
}
