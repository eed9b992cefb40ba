package role

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Role names are normalized (trimmed, uppercased) before validation and storage.
var roleNamePattern = regexp.MustCompile(`^ROLE_[A-Z_]+$`)

const (
	maxRoleNameLength        = 50
	maxRoleDescriptionLength = 200
)

// RoleService provides methods for role lifecycle management
type RoleService struct {
	repo     RoleRepository
	userRepo RoleUserRepository
}

// NewRoleService creates a new role service
func NewRoleService(repo RoleRepository, userRepo RoleUserRepository) *RoleService {
	return &RoleService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// NormalizeRoleName trims whitespace and uppercases a role name
func NormalizeRoleName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func validateRoleName(normalized string) error {
	if len(normalized) > maxRoleNameLength || !roleNamePattern.MatchString(normalized) {
		return ErrInvalidRoleName{Name: normalized}
	}
	return nil
}

func validateDescription(description string, valid bool) error {
	if valid && len(description) > maxRoleDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// An empty description is stored as no description at all.
func normalizeDescription(description string, valid bool) (string, bool) {
	if description == "" {
		return "", false
	}
	return description, valid
}

// FindRoles returns all roles
func (s *RoleService) FindRoles(ctx context.Context) ([]Role, error) {
	return s.repo.FindRoles(ctx)
}

// GetRole retrieves a role by ID
func (s *RoleService) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	return s.repo.GetRoleById(ctx, id)
}

// GetRoleByName retrieves a role by name
func (s *RoleService) GetRoleByName(ctx context.Context, name string) (Role, error) {
	return s.repo.GetRoleByName(ctx, name)
}

// ExistsByName reports whether a role with the given name exists
func (s *RoleService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, name)
}

// CountRoles returns the total number of roles
func (s *RoleService) CountRoles(ctx context.Context) (int64, error) {
	return s.repo.CountRoles(ctx)
}

// SearchRoles returns a page of roles whose name or description contains the
// query, case-insensitively. An empty query lists all roles in default order.
func (s *RoleService) SearchRoles(ctx context.Context, query string, limit, offset int32) (RoleList, error) {
	var (
		roles []Role
		total int64
		err   error
	)

	if strings.TrimSpace(query) == "" {
		roles, err = s.repo.ListRoles(ctx, limit, offset)
		if err != nil {
			return RoleList{}, err
		}
		total, err = s.repo.CountRoles(ctx)
	} else {
		roles, err = s.repo.SearchRoles(ctx, query, limit, offset)
		if err != nil {
			return RoleList{}, err
		}
		total, err = s.repo.CountSearchRoles(ctx, query)
	}
	if err != nil {
		return RoleList{}, err
	}

	if roles == nil {
		roles = []Role{}
	}
	return RoleList{Roles: roles, Total: total}, nil
}

// GetRoleUsers returns a page of users assigned to a role
func (s *RoleService) GetRoleUsers(ctx context.Context, roleID uuid.UUID, limit, offset int32) (RoleUserList, error) {
	if _, err := s.repo.GetRoleById(ctx, roleID); err != nil {
		return RoleUserList{}, err
	}

	users, err := s.userRepo.GetRoleUsers(ctx, roleID, limit, offset)
	if err != nil {
		return RoleUserList{}, err
	}
	total, err := s.userRepo.CountRoleUsers(ctx, roleID)
	if err != nil {
		return RoleUserList{}, err
	}

	if users == nil {
		users = []RoleUser{}
	}
	return RoleUserList{Users: users, Total: total}, nil
}

// CreateRole creates a new role with a normalized, unique name
func (s *RoleService) CreateRole(ctx context.Context, name, description string, descriptionValid bool) (Role, error) {
	normalized := NormalizeRoleName(name)
	if err := validateRoleName(normalized); err != nil {
		return Role{}, err
	}
	if err := validateDescription(description, descriptionValid); err != nil {
		return Role{}, err
	}
	description, descriptionValid = normalizeDescription(description, descriptionValid)

	exists, err := s.repo.ExistsByName(ctx, normalized)
	if err != nil {
		return Role{}, err
	}
	if exists {
		return Role{}, ErrDuplicateRoleName{Name: normalized}
	}

	return s.repo.CreateRole(ctx, CreateRoleParams{
		Name:             normalized,
		Description:      description,
		DescriptionValid: descriptionValid,
	})
}

// UpdateRole overwrites a role's name and description.
// Unlike RenameRole it performs no uniqueness check on the new name.
func (s *RoleService) UpdateRole(ctx context.Context, id uuid.UUID, name, description string, descriptionValid bool) (Role, error) {
	existing, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return Role{}, err
	}

	normalized := NormalizeRoleName(name)
	if err := validateRoleName(normalized); err != nil {
		return Role{}, err
	}
	if err := validateDescription(description, descriptionValid); err != nil {
		return Role{}, err
	}
	description, descriptionValid = normalizeDescription(description, descriptionValid)

	return s.repo.UpdateRole(ctx, UpdateRoleParams{
		ID:               existing.ID,
		Name:             normalized,
		Description:      description,
		DescriptionValid: descriptionValid,
		Deleted:          existing.Deleted,
	})
}

// RenameRole changes a role's name, keeping description and deleted state.
// Renaming a role to its current name is a no-op.
func (s *RoleService) RenameRole(ctx context.Context, id uuid.UUID, newName string) (Role, error) {
	existing, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return Role{}, err
	}

	normalized := NormalizeRoleName(newName)
	if err := validateRoleName(normalized); err != nil {
		return Role{}, err
	}

	if normalized == existing.Name {
		return existing, nil
	}

	exists, err := s.repo.ExistsByName(ctx, normalized)
	if err != nil {
		return Role{}, err
	}
	if exists {
		return Role{}, ErrDuplicateRoleName{Name: normalized}
	}

	return s.repo.UpdateRole(ctx, UpdateRoleParams{
		ID:               existing.ID,
		Name:             normalized,
		Description:      existing.Description,
		DescriptionValid: existing.DescriptionValid,
		Deleted:          existing.Deleted,
	})
}

// UpdateRoleDescription changes a role's description. Setting the same
// description again is a no-op. A role with no stored description never
// compares equal to a provided one, so the update always proceeds.
func (s *RoleService) UpdateRoleDescription(ctx context.Context, id uuid.UUID, description string) (Role, error) {
	existing, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return Role{}, err
	}

	if err := validateDescription(description, true); err != nil {
		return Role{}, err
	}

	if existing.DescriptionValid && existing.Description == description {
		return existing, nil
	}

	newDescription, newValid := normalizeDescription(description, true)
	return s.repo.UpdateRole(ctx, UpdateRoleParams{
		ID:               existing.ID,
		Name:             existing.Name,
		Description:      newDescription,
		DescriptionValid: newValid,
		Deleted:          existing.Deleted,
	})
}

// SoftDeleteRole marks a role deleted. Fails with ErrRoleInUse when the role
// is still assigned to at least one user. The usage check runs against
// separately owned assignment data, so a concurrent assignment can slip in
// between check and write; that window is accepted.
func (s *RoleService) SoftDeleteRole(ctx context.Context, id uuid.UUID) (Role, error) {
	existing, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return Role{}, err
	}

	hasUsers, err := s.userRepo.HasUsers(ctx, existing.ID)
	if err != nil {
		return Role{}, err
	}
	if hasUsers {
		return Role{}, ErrRoleInUse
	}

	return s.repo.UpdateRole(ctx, UpdateRoleParams{
		ID:               existing.ID,
		Name:             existing.Name,
		Description:      existing.Description,
		DescriptionValid: existing.DescriptionValid,
		Deleted:          true,
	})
}

// ListTrash returns all soft-deleted roles
func (s *RoleService) ListTrash(ctx context.Context) ([]Role, error) {
	return s.repo.FindRolesByDeleted(ctx, true)
}

// RestoreRole clears a role's deleted flag. Restoring an active role returns
// the role unchanged without a write.
func (s *RoleService) RestoreRole(ctx context.Context, id uuid.UUID) (Role, error) {
	existing, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return Role{}, err
	}

	if !existing.Deleted {
		return existing, nil
	}

	return s.repo.UpdateRole(ctx, UpdateRoleParams{
		ID:               existing.ID,
		Name:             existing.Name,
		Description:      existing.Description,
		DescriptionValid: existing.DescriptionValid,
		Deleted:          false,
	})
}

// HardDeleteRole permanently removes a role. Only soft-deleted roles may be
// hard-deleted.
func (s *RoleService) HardDeleteRole(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetRoleById(ctx, id)
	if err != nil {
		return err
	}

	if !existing.Deleted {
		return ErrRoleNotDeleted
	}

	return s.repo.DeleteRole(ctx, existing.ID)
}
