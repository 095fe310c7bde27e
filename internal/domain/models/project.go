// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project lifecycle statuses.
const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
)

// Project categories shown on the public site.
const (
	ProjectCatEducation   = "education"
	ProjectCatHealth      = "health"
	ProjectCatEnvironment = "environment"
	ProjectCatAI          = "ai"
	ProjectCatCommunity   = "community"
)

// ProjectImage is one entry in a project's image gallery.
type ProjectImage struct {
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
	IsCover bool   `bson:"is_cover,omitempty" json:"is_cover,omitempty"`
}

// ProjectVideo is an embedded or hosted video reference.
type ProjectVideo struct {
	URL   string `bson:"url" json:"url"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
}

// TeamMember is a person listed on the project page.
type TeamMember struct {
	Name  string `bson:"name" json:"name"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// ImpactMetrics holds the headline numbers displayed for a project.
type ImpactMetrics struct {
	Beneficiaries int     `bson:"beneficiaries,omitempty" json:"beneficiaries,omitempty"`
	Volunteers    int     `bson:"volunteers,omitempty" json:"volunteers,omitempty"`
	FundsRaised   float64 `bson:"funds_raised,omitempty" json:"funds_raised,omitempty"`
}

// Project is a program of work the organization runs or has run.
// Slug is derived from Title at create time and is unique per collection.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"` // planning | active | completed | paused
	Featured    bool               `bson:"featured" json:"featured"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`

	StartDate *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`

	Impact ImpactMetrics  `bson:"impact,omitempty" json:"impact"`
	Images []ProjectImage `bson:"images,omitempty" json:"images,omitempty"`
	Videos []ProjectVideo `bson:"videos,omitempty" json:"videos,omitempty"`
	Team   []TeamMember   `bson:"team,omitempty" json:"team,omitempty"`

	PartnerIDs []primitive.ObjectID `bson:"partner_ids,omitempty" json:"partner_ids,omitempty"`
	CreatedBy  primitive.ObjectID   `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy  primitive.ObjectID   `bson:"updated_by,omitempty" json:"updated_by,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectCompleted, ProjectPaused:
		return true
	}
	return false
}

// ValidProjectCategory reports whether c is a known project category.
func ValidProjectCategory(c string) bool {
	switch c {
	case ProjectCatEducation, ProjectCatHealth, ProjectCatEnvironment, ProjectCatAI, ProjectCatCommunity:
		return true
	}
	return false
}
