package role

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slices"
)

// InMemoryRoleRepository implements RoleRepository and RoleUserRepository
// using in-memory storage. Used by cmd/inmem and tests.
type InMemoryRoleRepository struct {
	mu        sync.RWMutex
	roles     map[uuid.UUID]Role
	roleUsers map[uuid.UUID][]RoleUser // roleID -> assigned users
}

// NewInMemoryRoleRepository creates a new in-memory role repository
func NewInMemoryRoleRepository() *InMemoryRoleRepository {
	return &InMemoryRoleRepository{
		roles:     make(map[uuid.UUID]Role),
		roleUsers: make(map[uuid.UUID][]RoleUser),
	}
}

func (r *InMemoryRoleRepository) sortedRoles() []Role {
	roles := make([]Role, 0, len(r.roles))
	for _, role := range r.roles {
		roles = append(roles, role)
	}
	slices.SortFunc(roles, func(a, b Role) int {
		return strings.Compare(a.Name, b.Name)
	})
	return roles
}

func (r *InMemoryRoleRepository) GetRoleById(ctx context.Context, id uuid.UUID) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[id]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return role, nil
}

func (r *InMemoryRoleRepository) GetRoleByName(ctx context.Context, name string) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return Role{}, ErrRoleNotFound
}

func (r *InMemoryRoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedRoles(), nil
}

func (r *InMemoryRoleRepository) FindRolesByDeleted(ctx context.Context, deleted bool) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Role{}
	for _, role := range r.sortedRoles() {
		if role.Deleted == deleted {
			matched = append(matched, role)
		}
	}
	return matched, nil
}

func (r *InMemoryRoleRepository) FindRolesByIds(ctx context.Context, ids []uuid.UUID) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Role{}
	for _, id := range ids {
		if role, ok := r.roles[id]; ok {
			matched = append(matched, role)
		}
	}
	return matched, nil
}

func (r *InMemoryRoleRepository) CountRoles(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.roles)), nil
}

func page(roles []Role, limit, offset int32) []Role {
	if offset >= int32(len(roles)) {
		return []Role{}
	}
	end := offset + limit
	if end > int32(len(roles)) {
		end = int32(len(roles))
	}
	return roles[offset:end]
}

func (r *InMemoryRoleRepository) ListRoles(ctx context.Context, limit, offset int32) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return page(r.sortedRoles(), limit, offset), nil
}

func matchesQuery(role Role, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(role.Name), q) {
		return true
	}
	return role.DescriptionValid && strings.Contains(strings.ToLower(role.Description), q)
}

func (r *InMemoryRoleRepository) SearchRoles(ctx context.Context, query string, limit, offset int32) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Role{}
	for _, role := range r.sortedRoles() {
		if matchesQuery(role, query) {
			matched = append(matched, role)
		}
	}
	return page(matched, limit, offset), nil
}

func (r *InMemoryRoleRepository) CountSearchRoles(ctx context.Context, query string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, role := range r.roles {
		if matchesQuery(role, query) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRoleRepository) CreateRole(ctx context.Context, arg CreateRoleParams) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	role := Role{
		ID:               uuid.New(),
		Name:             arg.Name,
		Description:      arg.Description,
		DescriptionValid: arg.DescriptionValid,
	}
	r.roles[role.ID] = role
	return role, nil
}

func (r *InMemoryRoleRepository) UpdateRole(ctx context.Context, arg UpdateRoleParams) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roles[arg.ID]; !ok {
		return Role{}, ErrRoleNotFound
	}
	role := Role{
		ID:               arg.ID,
		Name:             arg.Name,
		Description:      arg.Description,
		DescriptionValid: arg.DescriptionValid,
		Deleted:          arg.Deleted,
	}
	r.roles[arg.ID] = role
	return role, nil
}

func (r *InMemoryRoleRepository) SetDeletedByIds(ctx context.Context, ids []uuid.UUID, deleted bool) ([]Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := []Role{}
	for _, id := range ids {
		role, ok := r.roles[id]
		if !ok {
			continue
		}
		role.Deleted = deleted
		r.roles[id] = role
		updated = append(updated, role)
	}
	return updated, nil
}

func (r *InMemoryRoleRepository) DeleteRole(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.roles, id)
	delete(r.roleUsers, id)
	return nil
}

// WithPgxTx returns the same repository (no-op for in-memory)
func (r *InMemoryRoleRepository) WithPgxTx(tx pgx.Tx) RoleRepository {
	return r
}

// RoleUserRepository implementation

func (r *InMemoryRoleRepository) HasUsers(ctx context.Context, roleID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.roleUsers[roleID]) > 0, nil
}

func (r *InMemoryRoleRepository) RoleIdsInUse(ctx context.Context, roleIds []uuid.UUID) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inUse := []uuid.UUID{}
	for _, id := range roleIds {
		if len(r.roleUsers[id]) > 0 {
			inUse = append(inUse, id)
		}
	}
	return inUse, nil
}

func (r *InMemoryRoleRepository) GetRoleUsers(ctx context.Context, roleID uuid.UUID, limit, offset int32) ([]RoleUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := append([]RoleUser{}, r.roleUsers[roleID]...)
	slices.SortFunc(users, func(a, b RoleUser) int {
		return strings.Compare(a.Username, b.Username)
	})
	if offset >= int32(len(users)) {
		return []RoleUser{}, nil
	}
	end := offset + limit
	if end > int32(len(users)) {
		end = int32(len(users))
	}
	return users[offset:end], nil
}

func (r *InMemoryRoleRepository) CountRoleUsers(ctx context.Context, roleID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.roleUsers[roleID])), nil
}

// SeedRole adds a role directly (for testing/initialization)
func (r *InMemoryRoleRepository) SeedRole(role Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	r.roles[role.ID] = role
}

// SeedRoleUser assigns a user to a role directly (for testing/initialization)
func (r *InMemoryRoleRepository) SeedRoleUser(roleID uuid.UUID, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.roleUsers[roleID] = append(r.roleUsers[roleID], RoleUser{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@example.com",
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
