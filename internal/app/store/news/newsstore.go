// internal/app/store/news/newsstore.go
package newsstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/causewayhq/causeway/internal/app/system/normalize"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/app/system/search"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrSlugExhausted = errors.New("could not generate a unique slug")

const maxSlugAttempts = 50

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("news")}
}

// Filter narrows List results. Published is a tri-state: nil means both
// drafts and published articles (admin view), &true restricts to the
// public feed.
type Filter struct {
	Search    string
	Category  string
	Tag       string
	Published *bool
	AuthorID  *primitive.ObjectID
	Paging    paging.Params
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if or := search.Or(f.Search, "title", "excerpt", "content"); or != nil {
		for k, v := range or {
			q[k] = v
		}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	if f.Published != nil {
		q["published"] = *f.Published
	}
	if f.AuthorID != nil {
		q["author_id"] = *f.AuthorID
	}
	return q
}

// Create inserts an article. The slug is derived from the title with a
// numeric suffix retry on collision.
func (s *Store) Create(ctx context.Context, a models.News) (models.News, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.Views = 0
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &now
	}

	base := normalize.Slug(a.Title)
	a.Slug = base
	for n := 2; ; n++ {
		_, err := s.c.InsertOne(ctx, a)
		if err == nil {
			return a, nil
		}
		if !wafflemongo.IsDup(err) {
			return models.News{}, err
		}
		if n > maxSlugAttempts {
			return models.News{}, ErrSlugExhausted
		}
		a.Slug = normalize.SlugWithSuffix(base, n)
	}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.News, error) {
	var a models.News
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	var a models.News
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns a page of articles plus the total match count, newest first.
// Published articles sort by publish date, drafts by creation date.
func (s *Store) List(ctx context.Context, f Filter) ([]models.News, int64, error) {
	q := f.query()

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	if f.Published != nil && *f.Published {
		sort = bson.D{{Key: "published_at", Value: -1}}
	}
	opts := options.Find().
		SetSort(sort).
		SetSkip(f.Paging.Skip()).
		SetLimit(f.Paging.Limit64())
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var articles []models.News
	if err := cur.All(ctx, &articles); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// Update replaces an article's content fields. The slug stays stable so
// shared links keep working.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, a models.News) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if a.Title != "" {
		set["title"] = a.Title
	}
	if a.Content != "" {
		set["content"] = a.Content
	}
	if a.Excerpt != "" {
		set["excerpt"] = a.Excerpt
	}
	if a.Category != "" {
		set["category"] = a.Category
	}
	if a.CoverURL != "" {
		set["cover_url"] = a.CoverURL
	}
	if a.Tags != nil {
		set["tags"] = a.Tags
	}
	if a.RelatedProjectIDs != nil {
		set["related_project_ids"] = a.RelatedProjectIDs
	}
	if a.RelatedNewsIDs != nil {
		set["related_news_ids"] = a.RelatedNewsIDs
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// IncrementViews atomically bumps the view counter and returns the article
// with the new count. Concurrent reads never lose an increment.
func (s *Store) IncrementViews(ctx context.Context, id primitive.ObjectID) (*models.News, error) {
	var a models.News
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetPublished toggles publication. PublishedAt is set only the first time
// an article is published; later unpublish/republish cycles keep the
// original date. The $ifNull pipeline update makes this a single atomic op.
func (s *Store) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*models.News, error) {
	set := bson.M{
		"published":  published,
		"updated_at": "$$NOW",
	}
	if published {
		set["published_at"] = bson.M{"$ifNull": bson.A{"$published_at", "$$NOW"}}
	}

	var a models.News
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		mongo.Pipeline{{{Key: "$set", Value: set}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Like records a user's like. $addToSet keeps the operation idempotent.
func (s *Store) Like(ctx context.Context, id, userID primitive.ObjectID) (*models.News, error) {
	var a models.News
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"likes": userID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Unlike removes a user's like.
func (s *Store) Unlike(ctx context.Context, id, userID primitive.ObjectID) (*models.News, error) {
	var a models.News
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"likes": userID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an article by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// MonthCount is one bucket in the publication trend.
type MonthCount struct {
	Month string `bson:"_id" json:"month"` // "2025-07"
	Count int64  `bson:"count" json:"count"`
}

// Stats summarizes the news collection for the dashboard.
type Stats struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	Drafts     int64            `json:"drafts"`
	TotalViews int64            `json:"totalViews"`
	ByCategory map[string]int64 `json:"byCategory"`
	Monthly    []MonthCount     `json:"monthly"` // last 12 months of publications
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$category",
			"count":     bson.M{"$sum": 1},
			"published": bson.M{"$sum": bson.M{"$cond": bson.A{"$published", 1, 0}}},
			"views":     bson.M{"$sum": "$views"},
		}}},
	})
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Category  string `bson:"_id"`
		Count     int64  `bson:"count"`
		Published int64  `bson:"published"`
		Views     int64  `bson:"views"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, err
	}

	st := Stats{ByCategory: make(map[string]int64)}
	for _, row := range rows {
		st.Total += row.Count
		st.Published += row.Published
		st.TotalViews += row.Views
		st.ByCategory[row.Category] = row.Count
	}
	st.Drafts = st.Total - st.Published

	monthly, err := s.monthlyTrend(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.Monthly = monthly
	return st, nil
}

func (s *Store) monthlyTrend(ctx context.Context) ([]MonthCount, error) {
	since := time.Now().UTC().AddDate(0, -12, 0)
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"published":    true,
			"published_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$published_at",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var monthly []MonthCount
	if err := cur.All(ctx, &monthly); err != nil {
		return nil, err
	}
	return monthly, nil
}
