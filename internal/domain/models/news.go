// internal/domain/models/news.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News categories.
const (
	NewsCatAnnouncement = "announcement"
	NewsCatEvent        = "event"
	NewsCatPress        = "press"
	NewsCatStory        = "story"
	NewsCatUpdate       = "update"
)

// News is an article on the public site. Content is stored as sanitized
// HTML. PublishedAt is set once, the first time the article is published,
// and never reset by later unpublish/republish cycles.
type News struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Slug     string             `bson:"slug" json:"slug"`
	Content  string             `bson:"content" json:"content"`
	Excerpt  string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Category string             `bson:"category" json:"category"`
	CoverURL string             `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	Tags     []string           `bson:"tags,omitempty" json:"tags,omitempty"`

	Published   bool       `bson:"published" json:"published"`
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`

	Views int64                `bson:"views" json:"views"`
	Likes []primitive.ObjectID `bson:"likes,omitempty" json:"likes,omitempty"`

	RelatedProjectIDs []primitive.ObjectID `bson:"related_project_ids,omitempty" json:"related_project_ids,omitempty"`
	RelatedNewsIDs    []primitive.ObjectID `bson:"related_news_ids,omitempty" json:"related_news_ids,omitempty"`

	AuthorID primitive.ObjectID `bson:"author_id" json:"author_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidNewsCategory reports whether c is a known news category.
func ValidNewsCategory(c string) bool {
	switch c {
	case NewsCatAnnouncement, NewsCatEvent, NewsCatPress, NewsCatStory, NewsCatUpdate:
		return true
	}
	return false
}
