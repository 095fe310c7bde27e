// internal/app/store/programs/programstore.go
package programstore

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
	return &Store{c: db.Collection("programs")}
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Search   string
	Category string
	Status   string
	Paging   paging.Params
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if or := search.Or(f.Search, "title", "description"); or != nil {
		for k, v := range or {
			q[k] = v
		}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	return q
}

func (s *Store) Create(ctx context.Context, p models.Program) (models.Program, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.ProgramUpcoming
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Program, error) {
	var p models.Program
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns a page of programs plus the total match count, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Program, int64, error) {
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

	var programs []models.Program
	if err := cur.All(ctx, &programs); err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

// Update modifies a program's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.Program) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Title != "" {
		set["title"] = p.Title
	}
	if p.Description != "" {
		set["description"] = p.Description
	}
	if p.Category != "" {
		set["category"] = p.Category
	}
	if p.Status != "" {
		set["status"] = p.Status
	}
	if p.Beneficiaries != 0 {
		set["beneficiaries"] = p.Beneficiaries
	}
	if p.Features != nil {
		set["features"] = p.Features
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a program by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Stats summarizes the program collection for the dashboard.
type Stats struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"byStatus"`
	ByCategory    map[string]int64 `json:"byCategory"`
	Beneficiaries int64            `json:"totalBeneficiaries"`
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"status": "$status", "category": "$category"},
			"count":         bson.M{"$sum": 1},
			"beneficiaries": bson.M{"$sum": "$beneficiaries"},
		}}},
	})
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID struct {
			Status   string `bson:"status"`
			Category string `bson:"category"`
		} `bson:"_id"`
		Count         int64 `bson:"count"`
		Beneficiaries int64 `bson:"beneficiaries"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, err
	}

	st := Stats{ByStatus: make(map[string]int64), ByCategory: make(map[string]int64)}
	for _, row := range rows {
		st.Total += row.Count
		st.ByStatus[row.ID.Status] += row.Count
		st.ByCategory[row.ID.Category] += row.Count
		st.Beneficiaries += row.Beneficiaries
	}
	return st, nil
}
