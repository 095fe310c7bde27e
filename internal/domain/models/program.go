// internal/domain/models/program.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program statuses.
const (
	ProgramUpcoming = "upcoming"
	ProgramOngoing  = "ongoing"
	ProgramFinished = "finished"
)

// Program categories.
const (
	ProgramCatTraining   = "training"
	ProgramCatOutreach   = "outreach"
	ProgramCatResearch   = "research"
	ProgramCatMentorship = "mentorship"
)

// Program is a recurring offering (training, outreach, mentorship).
// Simpler than Project: no slug, no media arrays.
type Program struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Status        string             `bson:"status" json:"status"` // upcoming | ongoing | finished
	Beneficiaries int                `bson:"beneficiaries,omitempty" json:"beneficiaries,omitempty"`
	Features      []string           `bson:"features,omitempty" json:"features,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidProgramStatus reports whether s is a known program status.
func ValidProgramStatus(s string) bool {
	switch s {
	case ProgramUpcoming, ProgramOngoing, ProgramFinished:
		return true
	}
	return false
}

// ValidProgramCategory reports whether c is a known program category.
func ValidProgramCategory(c string) bool {
	switch c {
	case ProgramCatTraining, ProgramCatOutreach, ProgramCatResearch, ProgramCatMentorship:
		return true
	}
	return false
}
