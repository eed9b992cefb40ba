package iam

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slices"
)

// InMemoryIamRepository implements IamRepository using in-memory storage.
// Used by cmd/inmem and tests.
type InMemoryIamRepository struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]User
	userRoles map[uuid.UUID]map[uuid.UUID]struct{} // userID -> assigned role ids

	// RoleNameFunc resolves a role id to its name for FindUserRoles.
	// Set at wiring time; assignments resolve to an empty name without it.
	RoleNameFunc func(roleID uuid.UUID) string
}

// NewInMemoryIamRepository creates a new in-memory IAM repository
func NewInMemoryIamRepository() *InMemoryIamRepository {
	return &InMemoryIamRepository{
		users:     make(map[uuid.UUID]User),
		userRoles: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

func (r *InMemoryIamRepository) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	user := User{
		ID:            uuid.New(),
		Username:      arg.Username,
		Email:         arg.Email,
		Enabled:       arg.Enabled,
		EmailVerified: arg.EmailVerified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *InMemoryIamRepository) GetUserById(ctx context.Context, id uuid.UUID) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryIamRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *InMemoryIamRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryIamRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryIamRepository) FindUsers(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	slices.SortFunc(users, func(a, b User) int {
		return strings.Compare(a.Username, b.Username)
	})
	return users, nil
}

func (r *InMemoryIamRepository) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[arg.ID]
	if !ok {
		return User{}, ErrUserNotFound
	}
	existing.Username = arg.Username
	existing.Email = arg.Email
	existing.Enabled = arg.Enabled
	existing.EmailVerified = arg.EmailVerified
	existing.UpdatedAt = time.Now()
	r.users[arg.ID] = existing
	return existing, nil
}

func (r *InMemoryIamRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	delete(r.userRoles, id)
	return nil
}

func (r *InMemoryIamRepository) AddUserRole(ctx context.Context, userID, roleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.userRoles[userID] == nil {
		r.userRoles[userID] = make(map[uuid.UUID]struct{})
	}
	r.userRoles[userID][roleID] = struct{}{}
	return nil
}

func (r *InMemoryIamRepository) RemoveUserRole(ctx context.Context, userID, roleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.userRoles[userID], roleID)
	return nil
}

func (r *InMemoryIamRepository) RemoveUserRoles(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.userRoles, userID)
	return nil
}

func (r *InMemoryIamRepository) FindUserRoles(ctx context.Context, userID uuid.UUID) ([]RoleSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := []RoleSummary{}
	for roleID := range r.userRoles[userID] {
		name := ""
		if r.RoleNameFunc != nil {
			name = r.RoleNameFunc(roleID)
		}
		roles = append(roles, RoleSummary{ID: roleID, Name: name})
	}
	slices.SortFunc(roles, func(a, b RoleSummary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return roles, nil
}

// FindRoleUsers returns the users holding the given role, ordered by username
func (r *InMemoryIamRepository) FindRoleUsers(ctx context.Context, roleID uuid.UUID) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []User{}
	for userID, roles := range r.userRoles {
		if _, ok := roles[roleID]; ok {
			users = append(users, r.users[userID])
		}
	}
	slices.SortFunc(users, func(a, b User) int {
		return strings.Compare(a.Username, b.Username)
	})
	return users, nil
}

// WithPgxTx returns the same repository (no-op for in-memory)
func (r *InMemoryIamRepository) WithPgxTx(tx pgx.Tx) IamRepository {
	return r
}
