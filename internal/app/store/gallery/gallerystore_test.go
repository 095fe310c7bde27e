package gallerystore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	gallerystore "github.com/causewayhq/causeway/internal/app/store/gallery"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestStore_List_FilterByTypeAndAlbum(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	uploader := primitive.NewObjectID()
	fx.CreateGalleryItem(ctx, "Gala Photo", models.MediaImage, "gala-2025", uploader)
	fx.CreateGalleryItem(ctx, "Gala Clip", models.MediaVideo, "gala-2025", uploader)
	fx.CreateGalleryItem(ctx, "Field Photo", models.MediaImage, "fieldwork", uploader)

	items, total, err := store.List(ctx, gallerystore.Filter{
		Type:   models.MediaImage,
		Album:  "gala-2025",
		Paging: paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("total = %d, len = %d, want 1/1", total, len(items))
	}
	if items[0].Title != "Gala Photo" {
		t.Errorf("got %q", items[0].Title)
	}
}

func TestStore_Albums(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	uploader := primitive.NewObjectID()
	fx.CreateGalleryItem(ctx, "A", models.MediaImage, "gala-2025", uploader)
	fx.CreateGalleryItem(ctx, "B", models.MediaImage, "gala-2025", uploader)
	fx.CreateGalleryItem(ctx, "C", models.MediaImage, "fieldwork", uploader)
	fx.CreateGalleryItem(ctx, "D", models.MediaImage, "", uploader)

	albums, err := store.Albums(ctx)
	if err != nil {
		t.Fatalf("Albums failed: %v", err)
	}
	if len(albums) != 2 {
		t.Errorf("albums = %v, want 2 distinct non-empty", albums)
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.GalleryItem{
		Title: "Big Photo", Type: models.MediaImage, URL: "/uploads/gallery/a.jpg",
		Meta:       models.MediaMeta{Size: 1000},
		UploadedBy: primitive.NewObjectID(),
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.GalleryItem{
		Title: "Clip", Type: models.MediaVideo, URL: "/uploads/gallery/b.mp4",
		Meta:       models.MediaMeta{Size: 5000, Duration: 12.5},
		UploadedBy: primitive.NewObjectID(),
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 2 || st.Images != 1 || st.Videos != 1 {
		t.Errorf("counts = %+v", st)
	}
	if st.TotalSize != 6000 {
		t.Errorf("TotalSize = %d, want 6000", st.TotalSize)
	}
}
