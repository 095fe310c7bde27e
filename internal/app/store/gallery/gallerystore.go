// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/search"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("gallery")}
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Search    string
	Type      string
	Album     string
	Tag       string
	ProjectID *primitive.ObjectID
	Paging    paging.Params
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if or := search.Or(f.Search, "title", "album"); or != nil {
		for k, v := range or {
			q[k] = v
		}
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Album != "" {
		q["album"] = f.Album
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	if f.ProjectID != nil {
		q["project_id"] = *f.ProjectID
	}
	return q
}

func (s *Store) Create(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	now := time.Now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return models.GalleryItem{}, err
	}
	return item, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns a page of gallery items plus the total match count, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.GalleryItem, int64, error) {
	q := f.query()

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(f.Paging.Skip()).
		SetLimit(f.Paging.Limit64())
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []models.GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update modifies descriptive fields. The stored media file itself is
// immutable; replacing media means a new upload.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, item models.GalleryItem) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if item.Title != "" {
		set["title"] = item.Title
	}
	if item.Album != "" {
		set["album"] = item.Album
	}
	if item.Tags != nil {
		set["tags"] = item.Tags
	}
	if item.ThumbnailURL != "" {
		set["thumbnail_url"] = item.ThumbnailURL
	}
	if item.ProjectID != nil {
		set["project_id"] = *item.ProjectID
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a gallery item by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Albums returns the distinct album names in use.
func (s *Store) Albums(ctx context.Context) ([]string, error) {
	raw, err := s.c.Distinct(ctx, "album", bson.M{"album": bson.M{"$ne": ""}})
	if err != nil {
		return nil, err
	}
	albums := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			albums = append(albums, s)
		}
	}
	return albums, nil
}

// Stats summarizes the gallery for the dashboard.
type Stats struct {
	Total     int64 `json:"total"`
	Images    int64 `json:"images"`
	Videos    int64 `json:"videos"`
	TotalSize int64 `json:"totalSize"` // bytes
	Albums    int64 `json:"albums"`
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"count": bson.M{"$sum": 1},
			"size":  bson.M{"$sum": "$meta.size"},
		}}},
	})
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
		Size  int64  `bson:"size"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, row := range rows {
		st.Total += row.Count
		st.TotalSize += row.Size
		switch row.Type {
		case models.MediaImage:
			st.Images = row.Count
		case models.MediaVideo:
			st.Videos = row.Count
		}
	}

	albums, err := s.Albums(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.Albums = int64(len(albums))
	return st, nil
}
