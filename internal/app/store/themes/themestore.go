// internal/app/store/themes/themestore.go
package themestore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/causewayhq/causeway/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

// ErrActiveTheme is returned when deleting the currently active theme.
var ErrActiveTheme = errors.New("cannot delete the active theme")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("themes")}
}

func (s *Store) Create(ctx context.Context, t models.Theme) (models.Theme, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.IsActive = false
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Theme{}, err
	}
	return t, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Theme, error) {
	var t models.Theme
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetActive returns the currently active theme, or mongo.ErrNoDocuments
// when none has been activated yet.
func (s *Store) GetActive(ctx context.Context) (*models.Theme, error) {
	var t models.Theme
	if err := s.c.FindOne(ctx, bson.M{"is_active": true}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all themes, active first then newest. The collection is
// small (a handful of presets) so there is no pagination.
func (s *Store) List(ctx context.Context) ([]models.Theme, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "is_active", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var themes []models.Theme
	if err := cur.All(ctx, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// Update modifies a theme's color tokens. Activation goes through Activate,
// not here.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, t models.Theme) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if t.Name != "" {
		set["name"] = t.Name
	}
	if t.Primary != "" {
		set["primary"] = t.Primary
	}
	if t.Secondary != "" {
		set["secondary"] = t.Secondary
	}
	if t.Accent != "" {
		set["accent"] = t.Accent
	}
	if t.Background != "" {
		set["background"] = t.Background
	}
	if t.Text != "" {
		set["text"] = t.Text
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Activate makes the given theme the single active one. All other themes
// are deactivated first; the partial unique index on is_active guarantees
// two racing activations cannot both win.
func (s *Store) Activate(ctx context.Context, id primitive.ObjectID) (*models.Theme, error) {
	now := time.Now().UTC()

	if _, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$ne": id}, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": now}},
	); err != nil {
		return nil, err
	}

	var t models.Theme
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": true, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a theme. The active theme cannot be deleted; a new theme
// must be activated first so the site never loses its styling.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "is_active": false})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount == 0 {
		// Distinguish "not found" from "active" for a useful error.
		err := s.c.FindOne(ctx, bson.M{"_id": id}).Err()
		if err == nil {
			return 0, ErrActiveTheme
		}
	}
	return res.DeletedCount, nil
}
