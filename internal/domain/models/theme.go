// internal/domain/models/theme.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Theme is a set of color tokens the public site renders with. At most one
// theme is active at a time; the invariant is backed by a partial unique
// index on is_active (see internal/app/system/indexes).
type Theme struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Primary    string             `bson:"primary" json:"primary"`
	Secondary  string             `bson:"secondary" json:"secondary"`
	Accent     string             `bson:"accent,omitempty" json:"accent,omitempty"`
	Background string             `bson:"background,omitempty" json:"background,omitempty"`
	Text       string             `bson:"text,omitempty" json:"text,omitempty"`
	IsActive   bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
