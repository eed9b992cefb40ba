package role

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a role in the service layer. Description uses the
// value/valid pair convention so a missing description is distinguishable
// from an empty one.
type Role struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	DescriptionValid bool      `json:"-"`
	Deleted          bool      `json:"deleted"`
}

// RoleUser is a summary of a user assigned to a role
type RoleUser struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Enabled       bool      `json:"enabled"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoleList represents one page of roles plus the total match count
type RoleList struct {
	Roles []Role `json:"roles"`
	Total int64  `json:"total"`
}

// RoleUserList represents one page of users assigned to a role
type RoleUserList struct {
	Users []RoleUser `json:"users"`
	Total int64      `json:"total"`
}

// CreateRoleParams represents parameters for creating a role
type CreateRoleParams struct {
	Name             string
	Description      string
	DescriptionValid bool
}

// UpdateRoleParams represents parameters for updating a role row
type UpdateRoleParams struct {
	ID               uuid.UUID
	Name             string
	Description      string
	DescriptionValid bool
	Deleted          bool
}

// BulkRoleRef identifies a role acted upon by a bulk operation
type BulkRoleRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BulkSkippedRole records why a bulk operation did not act on an ID.
// Name is nil when the ID did not resolve to a role.
type BulkSkippedRole struct {
	ID     uuid.UUID `json:"id"`
	Name   *string   `json:"name"`
	Reason string    `json:"reason"`
}

// BulkDeleteResult reports the outcome of a bulk soft-delete.
// Requested counts the raw input including duplicates.
type BulkDeleteResult struct {
	Requested    int               `json:"requested"`
	Deleted      int               `json:"deleted"`
	DeletedRoles []BulkRoleRef     `json:"deletedRoles"`
	Skipped      []BulkSkippedRole `json:"skipped"`
}

// BulkRestoreResult reports the outcome of a bulk restore
type BulkRestoreResult struct {
	Requested     int               `json:"requested"`
	Restored      int               `json:"restored"`
	RestoredRoles []BulkRoleRef     `json:"restoredRoles"`
	Skipped       []BulkSkippedRole `json:"skipped"`
}
