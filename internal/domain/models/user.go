// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold. Admins manage everything, editors manage content,
// viewers have read-only access to the admin dashboard.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Departments a user can belong to. Empty means unassigned.
const (
	DeptManagement     = "management"
	DeptProjects       = "projects"
	DeptAI             = "ai"
	DeptCommunications = "communications"
	DeptFinance        = "finance"
)

// User represents an account on the admin side of the site.
//
// NOTE:
//   - Users are never hard-deleted; accounts are disabled via IsActive.
//   - PasswordHash never leaves the API (json:"-").
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"` // admin | editor | viewer
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// ValidDepartment reports whether dept is a known department or empty.
func ValidDepartment(dept string) bool {
	switch dept {
	case "", DeptManagement, DeptProjects, DeptAI, DeptCommunications, DeptFinance:
		return true
	}
	return false
}
