package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/causewayhq/causeway/internal/app/system/normalize"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role and password.
// The password is bcrypt-hashed the same way the auth feature does it.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password, role string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hashing test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       normalize.Name(name),
		Email:        normalize.Email(email),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, "password123", models.RoleAdmin)
}

// CreateEditor creates a test editor user.
func (f *Fixtures) CreateEditor(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, "password123", models.RoleEditor)
}

// CreateDisabledUser creates a deactivated test user.
func (f *Fixtures) CreateDisabledUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	user := f.CreateUser(ctx, name, email, "password123", models.RoleViewer)
	_, err := f.db.Collection("users").UpdateByID(ctx, user.ID,
		map[string]any{"$set": map[string]any{"is_active": false}})
	if err != nil {
		f.t.Fatalf("failed to deactivate test user: %v", err)
	}
	user.IsActive = false
	return user
}

// CreateProject creates a test project with the given title and status.
func (f *Fixtures) CreateProject(ctx context.Context, title, category, status string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	project := models.Project{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Slug:        normalize.Slug(title),
		Description: "Test project description",
		Category:    category,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, project); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateNews creates a test news article. Published articles get a
// PublishedAt timestamp; drafts do not.
func (f *Fixtures) CreateNews(ctx context.Context, title, category string, published bool, authorID primitive.ObjectID) models.News {
	f.t.Helper()

	now := time.Now().UTC()
	article := models.News{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Slug:      normalize.Slug(title),
		Content:   "<p>Test article content</p>",
		Category:  category,
		Published: published,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if published {
		article.PublishedAt = &now
	}

	if _, err := f.db.Collection("news").InsertOne(ctx, article); err != nil {
		f.t.Fatalf("failed to create test news article: %v", err)
	}
	return article
}

// CreatePartner creates a test partner at the given level.
func (f *Fixtures) CreatePartner(ctx context.Context, name, level, category string) models.Partner {
	f.t.Helper()

	now := time.Now().UTC()
	partner := models.Partner{
		ID:               primitive.NewObjectID(),
		Name:             name,
		NameCI:           normalize.Name(name),
		PartnershipLevel: level,
		Category:         category,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("partners").InsertOne(ctx, partner); err != nil {
		f.t.Fatalf("failed to create test partner: %v", err)
	}
	return partner
}

// CreateGalleryItem creates a test gallery item.
func (f *Fixtures) CreateGalleryItem(ctx context.Context, title, mediaType, album string, uploadedBy primitive.ObjectID) models.GalleryItem {
	f.t.Helper()

	now := time.Now().UTC()
	item := models.GalleryItem{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Type:       mediaType,
		URL:        "/uploads/gallery/test.jpg",
		Album:      album,
		UploadedBy: uploadedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("gallery").InsertOne(ctx, item); err != nil {
		f.t.Fatalf("failed to create test gallery item: %v", err)
	}
	return item
}

// CreateProgram creates a test program.
func (f *Fixtures) CreateProgram(ctx context.Context, title, category, status string) models.Program {
	f.t.Helper()

	now := time.Now().UTC()
	program := models.Program{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Category:  category,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("programs").InsertOne(ctx, program); err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	return program
}

// CreateTheme creates a test theme.
func (f *Fixtures) CreateTheme(ctx context.Context, name string, active bool) models.Theme {
	f.t.Helper()

	now := time.Now().UTC()
	theme := models.Theme{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Primary:   "#1a1a2e",
		Secondary: "#16213e",
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("themes").InsertOne(ctx, theme); err != nil {
		f.t.Fatalf("failed to create test theme: %v", err)
	}
	return theme
}

// CreateContact creates a test contact message with the given status.
func (f *Fixtures) CreateContact(ctx context.Context, name, email, status string) models.Contact {
	f.t.Helper()

	now := time.Now().UTC()
	msg := models.Contact{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Subject:   "Test subject",
		Message:   "Test message body",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("contacts").InsertOne(ctx, msg); err != nil {
		f.t.Fatalf("failed to create test contact: %v", err)
	}
	return msg
}
