// internal/domain/models/partner.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partnership levels, highest first.
const (
	PartnerPlatinum  = "platinum"
	PartnerGold      = "gold"
	PartnerSilver    = "silver"
	PartnerBronze    = "bronze"
	PartnerSupporter = "supporter"
)

// Partner categories.
const (
	PartnerCatCorporate  = "corporate"
	PartnerCatNGO        = "ngo"
	PartnerCatGovernment = "government"
	PartnerCatAcademic   = "academic"
	PartnerCatMedia      = "media"
)

// ContactPerson is the primary contact at a partner organization.
type ContactPerson struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
}

// Partner is an organization that supports or collaborates with us.
// The active window (StartDate/EndDate) bounds when the partnership is
// shown as current; an empty EndDate means open-ended.
type Partner struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	NameCI           string             `bson:"name_ci" json:"-"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	LogoURL          string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Website          string             `bson:"website,omitempty" json:"website,omitempty"`
	PartnershipLevel string             `bson:"partnership_level" json:"partnership_level"`
	Category         string             `bson:"category" json:"category"`
	Contact          ContactPerson      `bson:"contact,omitempty" json:"contact"`

	StartDate *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidPartnershipLevel reports whether l is a known partnership level.
func ValidPartnershipLevel(l string) bool {
	switch l {
	case PartnerPlatinum, PartnerGold, PartnerSilver, PartnerBronze, PartnerSupporter:
		return true
	}
	return false
}

// ValidPartnerCategory reports whether c is a known partner category.
func ValidPartnerCategory(c string) bool {
	switch c {
	case PartnerCatCorporate, PartnerCatNGO, PartnerCatGovernment, PartnerCatAcademic, PartnerCatMedia:
		return true
	}
	return false
}
