// internal/app/store/projects/projectstore.go
package projectstore

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

// ErrSlugExhausted is returned when slug deduplication gives up. In practice
// this needs dozens of projects with the same title.
var ErrSlugExhausted = errors.New("could not generate a unique slug")

const maxSlugAttempts = 50

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Search   string
	Category string
	Status   string
	Featured *bool
	Paging   paging.Params
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if or := search.Or(f.Search, "title", "description", "location"); or != nil {
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
	if f.Featured != nil {
		q["featured"] = *f.Featured
	}
	return q
}

// Create inserts a project. The slug is derived from the title; on a
// collision we retry with a numeric suffix (-2, -3, ...) until the unique
// index accepts it.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.ProjectPlanning
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	base := normalize.Slug(p.Title)
	p.Slug = base
	for n := 2; ; n++ {
		_, err := s.c.InsertOne(ctx, p)
		if err == nil {
			return p, nil
		}
		if !wafflemongo.IsDup(err) {
			return models.Project{}, err
		}
		if n > maxSlugAttempts {
			return models.Project{}, ErrSlugExhausted
		}
		p.Slug = normalize.SlugWithSuffix(base, n)
	}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns a page of projects plus the total match count. Featured
// projects sort first, then newest.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Project, int64, error) {
	q := f.query()

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(f.Paging.Skip()).
		SetLimit(f.Paging.Limit64())
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Update replaces a project's content fields. The slug is not regenerated on
// title change so published URLs stay stable.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.Project) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
		"featured":   p.Featured,
		"impact":     p.Impact,
	}
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
	if p.Location != "" {
		set["location"] = p.Location
	}
	if p.StartDate != nil {
		set["start_date"] = p.StartDate
	}
	if p.EndDate != nil {
		set["end_date"] = p.EndDate
	}
	if p.Images != nil {
		set["images"] = p.Images
	}
	if p.Videos != nil {
		set["videos"] = p.Videos
	}
	if p.Team != nil {
		set["team"] = p.Team
	}
	if p.PartnerIDs != nil {
		set["partner_ids"] = p.PartnerIDs
	}
	if !p.UpdatedBy.IsZero() {
		set["updated_by"] = p.UpdatedBy
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// AddImage appends an image to the project's gallery.
func (s *Store) AddImage(ctx context.Context, id primitive.ObjectID, img models.ProjectImage) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"images": img},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a project by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Stats summarizes the project collection for the dashboard.
type Stats struct {
	Total         int64            `json:"total"`
	Featured      int64            `json:"featured"`
	ByStatus      map[string]int64 `json:"byStatus"`
	ByCategory    map[string]int64 `json:"byCategory"`
	Beneficiaries int64            `json:"totalBeneficiaries"`
	Volunteers    int64            `json:"totalVolunteers"`
	FundsRaised   float64          `json:"totalFundsRaised"`
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"status": "$status", "category": "$category"},
			"count":         bson.M{"$sum": 1},
			"featured":      bson.M{"$sum": bson.M{"$cond": bson.A{"$featured", 1, 0}}},
			"beneficiaries": bson.M{"$sum": "$impact.beneficiaries"},
			"volunteers":    bson.M{"$sum": "$impact.volunteers"},
			"funds_raised":  bson.M{"$sum": "$impact.funds_raised"},
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
		Count         int64   `bson:"count"`
		Featured      int64   `bson:"featured"`
		Beneficiaries int64   `bson:"beneficiaries"`
		Volunteers    int64   `bson:"volunteers"`
		FundsRaised   float64 `bson:"funds_raised"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, err
	}

	st := Stats{ByStatus: make(map[string]int64), ByCategory: make(map[string]int64)}
	for _, row := range rows {
		st.Total += row.Count
		st.Featured += row.Featured
		st.ByStatus[row.ID.Status] += row.Count
		st.ByCategory[row.ID.Category] += row.Count
		st.Beneficiaries += row.Beneficiaries
		st.Volunteers += row.Volunteers
		st.FundsRaised += row.FundsRaised
	}
	return st, nil
}
