// internal/app/store/partners/partnerstore.go
package partnerstore

import (
	"context"
	"time"

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

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("partners")}
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Search   string
	Level    string
	Category string
	Paging   paging.Params
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if or := search.Or(f.Search, "name", "description"); or != nil {
		for k, v := range or {
			q[k] = v
		}
	}
	if f.Level != "" {
		q["partnership_level"] = f.Level
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	return q
}

func (s *Store) Create(ctx context.Context, p models.Partner) (models.Partner, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.NameCI = normalize.Fold(p.Name)
	if p.PartnershipLevel == "" {
		p.PartnershipLevel = models.PartnerSupporter
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Partner{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	var p models.Partner
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns a page of partners plus the total match count, sorted by
// case-folded name.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Partner, int64, error) {
	q := f.query()

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}}).
		SetSkip(f.Paging.Skip()).
		SetLimit(f.Paging.Limit64())
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var partners []models.Partner
	if err := cur.All(ctx, &partners); err != nil {
		return nil, 0, err
	}
	return partners, total, nil
}

// Update modifies a partner's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.Partner) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
		"contact":    p.Contact,
	}
	if p.Name != "" {
		set["name"] = p.Name
		set["name_ci"] = normalize.Fold(p.Name)
	}
	if p.Description != "" {
		set["description"] = p.Description
	}
	if p.Website != "" {
		set["website"] = p.Website
	}
	if p.PartnershipLevel != "" {
		set["partnership_level"] = p.PartnershipLevel
	}
	if p.Category != "" {
		set["category"] = p.Category
	}
	if p.StartDate != nil {
		set["start_date"] = p.StartDate
	}
	if p.EndDate != nil {
		set["end_date"] = p.EndDate
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// SetLogoURL replaces the stored logo URL and returns the previous one so
// the caller can clean up the old file.
func (s *Store) SetLogoURL(ctx context.Context, id primitive.ObjectID, url string) (string, error) {
	var prev struct {
		LogoURL string `bson:"logo_url"`
	}
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"logo_url": url, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.Before).
			SetProjection(bson.M{"logo_url": 1}),
	).Decode(&prev)
	if err != nil {
		return "", err
	}
	return prev.LogoURL, nil
}

// Delete removes a partner by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Stats summarizes the partner collection for the dashboard.
type Stats struct {
	Total      int64            `json:"total"`
	ByLevel    map[string]int64 `json:"byLevel"`
	ByCategory map[string]int64 `json:"byCategory"`
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"level": "$partnership_level", "category": "$category"},
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID struct {
			Level    string `bson:"level"`
			Category string `bson:"category"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, err
	}

	st := Stats{ByLevel: make(map[string]int64), ByCategory: make(map[string]int64)}
	for _, row := range rows {
		st.Total += row.Count
		st.ByLevel[row.ID.Level] += row.Count
		st.ByCategory[row.ID.Category] += row.Count
	}
	return st, nil
}
