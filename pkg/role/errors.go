package role

import (
	"errors"
	"fmt"
)

var (
	// ErrRoleNotFound is returned when a role id or name does not resolve to a role
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleInUse is returned when soft-deleting a role that is assigned to at least one user
	ErrRoleInUse = errors.New("role in use")
	// ErrRoleNotDeleted is returned when hard-deleting a role that has not been soft-deleted first
	ErrRoleNotDeleted = errors.New("role is not deleted")
	// ErrDescriptionTooLong is returned when a role description exceeds the column limit
	ErrDescriptionTooLong = errors.New("role description must be at most 200 characters")
)

// ErrInvalidRoleName is returned when a role name fails validation after normalization
type ErrInvalidRoleName struct {
	Name string
}

func (e ErrInvalidRoleName) Error() string {
	return fmt.Sprintf("invalid role name: %q (must match ROLE_ followed by capital letters, e.g. ROLE_EXAMPLE)", e.Name)
}

// ErrDuplicateRoleName is returned when the normalized name is already taken by another role
type ErrDuplicateRoleName struct {
	Name string
}

func (e ErrDuplicateRoleName) Error() string {
	return fmt.Sprintf("role already exists: %s", e.Name)
}
