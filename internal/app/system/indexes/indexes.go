// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureProjects(ctx, db); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureNews(ctx, db); err != nil {
		problems = append(problems, "news: "+err.Error())
	}
	if err := ensurePartners(ctx, db); err != nil {
		problems = append(problems, "partners: "+err.Error())
	}
	if err := ensureGallery(ctx, db); err != nil {
		problems = append(problems, "gallery: "+err.Error())
	}
	if err := ensurePrograms(ctx, db); err != nil {
		problems = append(problems, "programs: "+err.Error())
	}
	if err := ensureThemes(ctx, db); err != nil {
		problems = append(problems, "themes: "+err.Error())
	}
	if err := ensureContacts(ctx, db); err != nil {
		problems = append(problems, "contacts: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func create(ctx context.Context, db *mongo.Database, coll string, idx ...mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, idx)
	return err
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "users",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("role_active"),
		},
	)
}

func ensureProjects(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "projects",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_slug"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("category_status"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	)
}

func ensureNews(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "news",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_slug"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "published", Value: 1}, {Key: "published_at", Value: -1}},
			Options: options.Index().SetName("published_recent"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category"),
		},
	)
}

func ensurePartners(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "partners",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("name_ci"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "partnership_level", Value: 1}, {Key: "category", Value: 1}},
			Options: options.Index().SetName("level_category"),
		},
	)
}

func ensureGallery(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "gallery",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "album", Value: 1}},
			Options: options.Index().SetName("type_album"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("tags"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	)
}

func ensurePrograms(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "programs",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("category_status"),
		},
	)
}

// ensureThemes backs the single-active-theme invariant with a partial
// unique index: at most one document can have is_active == true, so a
// racing second activation fails at the database instead of leaving two
// active themes.
func ensureThemes(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "themes",
		mongo.IndexModel{
			Keys: bson.D{{Key: "is_active", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}).
				SetName("uniq_active"),
		},
	)
}

func ensureContacts(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "contacts",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_recent"),
		},
	)
}
