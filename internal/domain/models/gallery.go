// internal/domain/models/gallery.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media types for gallery items.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// MediaMeta holds technical metadata captured at upload time.
// Duration is seconds and only meaningful for videos.
type MediaMeta struct {
	Width    int     `bson:"width,omitempty" json:"width,omitempty"`
	Height   int     `bson:"height,omitempty" json:"height,omitempty"`
	Size     int64   `bson:"size,omitempty" json:"size,omitempty"`
	Duration float64 `bson:"duration,omitempty" json:"duration,omitempty"`
}

// GalleryItem is a single image or video in the media gallery.
type GalleryItem struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Type         string              `bson:"type" json:"type"` // image | video
	URL          string              `bson:"url" json:"url"`
	ThumbnailURL string              `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Album        string              `bson:"album,omitempty" json:"album,omitempty"`
	Tags         []string            `bson:"tags,omitempty" json:"tags,omitempty"`
	Meta         MediaMeta           `bson:"meta,omitempty" json:"meta"`
	ProjectID    *primitive.ObjectID `bson:"project_id,omitempty" json:"project_id,omitempty"`
	UploadedBy   primitive.ObjectID  `bson:"uploaded_by" json:"uploaded_by"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidMediaType reports whether t is "image" or "video".
func ValidMediaType(t string) bool {
	return t == MediaImage || t == MediaVideo
}
