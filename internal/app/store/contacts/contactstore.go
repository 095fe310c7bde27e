// internal/app/store/contacts/contactstore.go
package contactstore

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
	return &Store{c: db.Collection("contacts")}
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Search string
	Status string
	Paging paging.Params
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if or := search.Or(f.Search, "name", "email", "subject", "message"); or != nil {
		for k, v := range or {
			q[k] = v
		}
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	return q
}

// Create inserts a contact message in the "new" state.
func (s *Store) Create(ctx context.Context, m models.Contact) (models.Contact, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.Email = normalize.Email(m.Email)
	m.Status = models.ContactNew
	m.RepliedAt = nil
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Contact{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var m models.Contact
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns a page of messages plus the total match count, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Contact, int64, error) {
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

	var messages []models.Contact
	if err := cur.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// SetStatus moves a message to the given status and returns the updated
// document. Transitioning to "replied" stamps RepliedAt once.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	now := time.Now().UTC()
	set := bson.M{"status": status, "updated_at": now}
	if status == models.ContactReplied {
		set["replied_at"] = now
	}

	var m models.Contact
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// BulkSetStatus updates the status of every listed message and returns how
// many documents were actually modified.
func (s *Store) BulkSetStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	set := bson.M{"status": status, "updated_at": now}
	if status == models.ContactReplied {
		set["replied_at"] = now
	}
	res, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": set},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// BulkDelete removes every listed message and returns how many were deleted.
func (s *Store) BulkDelete(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := s.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Delete removes a message by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// MonthCount is one bucket in the submission trend.
type MonthCount struct {
	Month string `bson:"_id" json:"month"` // "2025-07"
	Count int64  `bson:"count" json:"count"`
}

// Stats summarizes the contact inbox for the dashboard.
type Stats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	Monthly  []MonthCount     `json:"monthly"` // last 12 months of submissions
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return Stats{}, err
	}

	st := Stats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		st.Total += row.Count
		st.ByStatus[row.Status] = row.Count
	}

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
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$created_at",
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
