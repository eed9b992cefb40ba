package role

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Create PostgreSQL container
	dbName := "facts_db"
	dbUser := "facts"
	dbPassword := "pwd"

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithInitScripts(filepath.Join("../../migrations", "facts_db.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err)
	if err != nil {
		slog.Error("Failed to start container:", "err", err)
	}

	// Generate the connection string
	connString, err := container.ConnectionString(ctx)
	fmt.Println("Connection string:", connString)
	require.NoError(t, err)

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connString)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

func newTestService() (*RoleService, *InMemoryRoleRepository) {
	repo := NewInMemoryRoleRepository()
	return NewRoleService(repo, repo), repo
}

func TestCreateRole(t *testing.T) {
	ctx := context.Background()

	// Test cases
	tests := []struct {
		name        string
		roleName    string
		description string
		hasDesc     bool
		wantName    string
		wantErr     error
	}{
		{
			name:     "valid role",
			roleName: "ROLE_ADMIN",
			wantName: "ROLE_ADMIN",
		},
		{
			name:     "lowercase name is normalized",
			roleName: "role_editor",
			wantName: "ROLE_EDITOR",
		},
		{
			name:     "surrounding whitespace is trimmed",
			roleName: "  ROLE_VIEWER  ",
			wantName: "ROLE_VIEWER",
		},
		{
			name:        "description is stored",
			roleName:    "ROLE_AUDITOR",
			description: "Read-only access",
			hasDesc:     true,
			wantName:    "ROLE_AUDITOR",
		},
		{
			name:     "empty name",
			roleName: "",
			wantErr:  ErrInvalidRoleName{Name: ""},
		},
		{
			name:     "missing prefix",
			roleName: "ADMIN",
			wantErr:  ErrInvalidRoleName{Name: "ADMIN"},
		},
		{
			name:     "digits not allowed",
			roleName: "ROLE_ADMIN2",
			wantErr:  ErrInvalidRoleName{Name: "ROLE_ADMIN2"},
		},
		{
			name:     "name too long",
			roleName: "ROLE_" + strings51(),
			wantErr:  ErrInvalidRoleName{Name: "ROLE_" + strings51()},
		},
		{
			name:        "description too long",
			roleName:    "ROLE_LONG_DESC",
			description: stringsN(201),
			hasDesc:     true,
			wantErr:     ErrDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService()

			role, err := service.CreateRole(ctx, tt.roleName, tt.description, tt.hasDesc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, role.ID)
			assert.Equal(t, tt.wantName, role.Name)
			assert.False(t, role.Deleted)
			if tt.hasDesc {
				assert.True(t, role.DescriptionValid)
				assert.Equal(t, tt.description, role.Description)
			} else {
				assert.False(t, role.DescriptionValid)
			}

			// Verify role was created
			stored, err := service.GetRole(ctx, role.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, stored.Name)
		})
	}
}

// stringsN builds a string of n underscores, valid inside a role name
func stringsN(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '_'
	}
	return string(b)
}

func strings51() string {
	// 46 underscores after "ROLE_" puts the name at 51 characters
	return stringsN(46)
}

func TestCreateRoleDuplicate(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	// Exact duplicate
	_, err = service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	assert.ErrorIs(t, err, ErrDuplicateRoleName{Name: "ROLE_ADMIN"})

	// Duplicate after normalization
	_, err = service.CreateRole(ctx, "  role_admin ", "", false)
	assert.ErrorIs(t, err, ErrDuplicateRoleName{Name: "ROLE_ADMIN"})
}

func TestCreateRoleDuplicateOfTrashed(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	_, err = service.SoftDeleteRole(ctx, created.ID)
	require.NoError(t, err)

	// Uniqueness covers soft-deleted roles too
	_, err = service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	assert.ErrorIs(t, err, ErrDuplicateRoleName{Name: "ROLE_ADMIN"})
}

func TestFindRoles(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	// Create test roles (expected alphabetical order)
	testRoles := []string{
		"ROLE_ADMIN",
		"ROLE_GUEST",
		"ROLE_USER",
	}

	for _, roleName := range testRoles {
		_, err := service.CreateRole(ctx, roleName, "", false)
		require.NoError(t, err)
	}

	roles, err := service.FindRoles(ctx)
	assert.NoError(t, err)
	assert.Len(t, roles, len(testRoles))

	// Verify roles are returned in alphabetical order
	for i, role := range roles {
		assert.Equal(t, testRoles[i], role.Name)
	}
}

func TestGetRole(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	role, err := service.GetRole(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, role.ID)
	assert.Equal(t, "ROLE_ADMIN", role.Name)

	_, err = service.GetRole(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestGetRoleByName(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	role, err := service.GetRoleByName(ctx, "ROLE_ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, role.ID)

	_, err = service.GetRoleByName(ctx, "ROLE_MISSING")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_INITIAL", "first", true)
	require.NoError(t, err)

	updated, err := service.UpdateRole(ctx, created.ID, "role_updated", "second", true)
	assert.NoError(t, err)
	assert.Equal(t, "ROLE_UPDATED", updated.Name)
	assert.Equal(t, "second", updated.Description)

	// Invalid name is rejected
	_, err = service.UpdateRole(ctx, created.ID, "updated", "", false)
	assert.ErrorIs(t, err, ErrInvalidRoleName{Name: "UPDATED"})

	// Unknown role
	_, err = service.UpdateRole(ctx, uuid.New(), "ROLE_X", "", false)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestUpdateRoleAllowsDuplicateName(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)
	other, err := service.CreateRole(ctx, "ROLE_USER", "", false)
	require.NoError(t, err)

	// UpdateRole performs no uniqueness check, so it can overwrite a role
	// with a name another role already has. RenameRole is the guarded path.
	updated, err := service.UpdateRole(ctx, other.ID, "ROLE_ADMIN", "", false)
	assert.NoError(t, err)
	assert.Equal(t, "ROLE_ADMIN", updated.Name)
}

func TestRenameRole(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_INITIAL", "keep me", true)
	require.NoError(t, err)
	_, err = service.CreateRole(ctx, "ROLE_TAKEN", "", false)
	require.NoError(t, err)

	// Valid rename keeps the description
	renamed, err := service.RenameRole(ctx, created.ID, "role_renamed")
	assert.NoError(t, err)
	assert.Equal(t, "ROLE_RENAMED", renamed.Name)
	assert.Equal(t, "keep me", renamed.Description)
	assert.True(t, renamed.DescriptionValid)

	// Renaming to the current name is a no-op, even when another role
	// with the same name would normally conflict
	same, err := service.RenameRole(ctx, created.ID, "  role_renamed ")
	assert.NoError(t, err)
	assert.Equal(t, "ROLE_RENAMED", same.Name)

	// Renaming to a taken name fails
	_, err = service.RenameRole(ctx, created.ID, "ROLE_TAKEN")
	assert.ErrorIs(t, err, ErrDuplicateRoleName{Name: "ROLE_TAKEN"})

	// Invalid name fails
	_, err = service.RenameRole(ctx, created.ID, "renamed")
	assert.ErrorIs(t, err, ErrInvalidRoleName{Name: "RENAMED"})

	// Unknown role
	_, err = service.RenameRole(ctx, uuid.New(), "ROLE_NEW")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestUpdateRoleDescription(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	// Empty means no description
	updated, err := service.UpdateRoleDescription(ctx, created.ID, "")
	assert.NoError(t, err)
	assert.False(t, updated.DescriptionValid)

	updated, err = service.UpdateRoleDescription(ctx, created.ID, "Administrators")
	assert.NoError(t, err)
	assert.Equal(t, "Administrators", updated.Description)

	// Same description again is a no-op
	same, err := service.UpdateRoleDescription(ctx, created.ID, "Administrators")
	assert.NoError(t, err)
	assert.Equal(t, updated, same)

	// Clearing it again
	cleared, err := service.UpdateRoleDescription(ctx, created.ID, "")
	assert.NoError(t, err)
	assert.False(t, cleared.DescriptionValid)

	// Too long
	_, err = service.UpdateRoleDescription(ctx, created.ID, stringsN(201))
	assert.ErrorIs(t, err, ErrDescriptionTooLong)

	// Unknown role
	_, err = service.UpdateRoleDescription(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestSoftDeleteRole(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	free, err := service.CreateRole(ctx, "ROLE_FREE", "", false)
	require.NoError(t, err)
	held, err := service.CreateRole(ctx, "ROLE_HELD", "", false)
	require.NoError(t, err)
	repo.SeedRoleUser(held.ID, "alice")

	// Unassigned role deletes fine
	deleted, err := service.SoftDeleteRole(ctx, free.ID)
	assert.NoError(t, err)
	assert.True(t, deleted.Deleted)

	// Role with users cannot be deleted
	_, err = service.SoftDeleteRole(ctx, held.ID)
	assert.ErrorIs(t, err, ErrRoleInUse)

	// Unknown role
	_, err = service.SoftDeleteRole(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestListTrash(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	active, err := service.CreateRole(ctx, "ROLE_ACTIVE", "", false)
	require.NoError(t, err)
	trashed, err := service.CreateRole(ctx, "ROLE_TRASHED", "", false)
	require.NoError(t, err)
	_, err = service.SoftDeleteRole(ctx, trashed.ID)
	require.NoError(t, err)

	trash, err := service.ListTrash(ctx)
	assert.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, trashed.ID, trash[0].ID)

	// Active roles are still listed normally
	roles, err := service.FindRoles(ctx)
	assert.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.Equal(t, active.ID, roles[0].ID)
}

func TestRestoreRole(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)
	_, err = service.SoftDeleteRole(ctx, created.ID)
	require.NoError(t, err)

	restored, err := service.RestoreRole(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, restored.Deleted)

	// Restoring an active role is a no-op
	again, err := service.RestoreRole(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, again.Deleted)

	// Unknown role
	_, err = service.RestoreRole(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestHardDeleteRole(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	// Active roles cannot be hard-deleted
	err = service.HardDeleteRole(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRoleNotDeleted)

	_, err = service.SoftDeleteRole(ctx, created.ID)
	require.NoError(t, err)

	err = service.HardDeleteRole(ctx, created.ID)
	assert.NoError(t, err)

	_, err = service.GetRole(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRoleNotFound)

	// Unknown role
	err = service.HardDeleteRole(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestSearchRoles(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	seed := []struct {
		name        string
		description string
	}{
		{"ROLE_ADMIN", "Full system access"},
		{"ROLE_EDITOR", "Can edit content"},
		{"ROLE_VIEWER", "Read-only access"},
	}
	for _, s := range seed {
		_, err := service.CreateRole(ctx, s.name, s.description, true)
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		query     string
		limit     int32
		offset    int32
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "empty query lists all",
			query:     "",
			limit:     10,
			wantNames: []string{"ROLE_ADMIN", "ROLE_EDITOR", "ROLE_VIEWER"},
			wantTotal: 3,
		},
		{
			name:      "match by name",
			query:     "editor",
			limit:     10,
			wantNames: []string{"ROLE_EDITOR"},
			wantTotal: 1,
		},
		{
			name:      "match by description",
			query:     "access",
			limit:     10,
			wantNames: []string{"ROLE_ADMIN", "ROLE_VIEWER"},
			wantTotal: 2,
		},
		{
			name:      "pagination",
			query:     "",
			limit:     1,
			offset:    1,
			wantNames: []string{"ROLE_EDITOR"},
			wantTotal: 3,
		},
		{
			name:      "no matches",
			query:     "missing",
			limit:     10,
			wantNames: []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := service.SearchRoles(ctx, tt.query, tt.limit, tt.offset)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, list.Total)

			names := make([]string, len(list.Roles))
			for i, role := range list.Roles {
				names[i] = role.Name
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestGetRoleUsers(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)
	repo.SeedRoleUser(created.ID, "alice")
	repo.SeedRoleUser(created.ID, "bob")

	list, err := service.GetRoleUsers(ctx, created.ID, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	require.Len(t, list.Users, 2)
	assert.Equal(t, "alice", list.Users[0].Username)
	assert.Equal(t, "bob", list.Users[1].Username)

	// Pagination
	page, err := service.GetRoleUsers(ctx, created.ID, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "bob", page.Users[0].Username)

	// Unknown role
	_, err = service.GetRoleUsers(ctx, uuid.New(), 10, 0)
	assert.ErrorIs(t, err, ErrRoleNotFound)
}
