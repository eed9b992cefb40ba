package role

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRoleRepository counts repository calls on top of the in-memory store
type spyRoleRepository struct {
	*InMemoryRoleRepository
	findByIdsCalls  int
	setDeletedCalls int
}

func (s *spyRoleRepository) FindRolesByIds(ctx context.Context, ids []uuid.UUID) ([]Role, error) {
	s.findByIdsCalls++
	return s.InMemoryRoleRepository.FindRolesByIds(ctx, ids)
}

func (s *spyRoleRepository) SetDeletedByIds(ctx context.Context, ids []uuid.UUID, deleted bool) ([]Role, error) {
	s.setDeletedCalls++
	return s.InMemoryRoleRepository.SetDeletedByIds(ctx, ids, deleted)
}

func TestBulkDeleteRoles(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	active, err := service.CreateRole(ctx, "ROLE_ACTIVE", "", false)
	require.NoError(t, err)
	trashed, err := service.CreateRole(ctx, "ROLE_TRASHED", "", false)
	require.NoError(t, err)
	_, err = service.SoftDeleteRole(ctx, trashed.ID)
	require.NoError(t, err)
	held, err := service.CreateRole(ctx, "ROLE_HELD", "", false)
	require.NoError(t, err)
	repo.SeedRoleUser(held.ID, "alice")
	missing := uuid.New()

	result, err := service.BulkDeleteRoles(ctx, []uuid.UUID{active.ID, trashed.ID, held.ID, missing})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Requested)
	assert.Equal(t, 1, result.Deleted)
	require.Len(t, result.DeletedRoles, 1)
	assert.Equal(t, active.ID, result.DeletedRoles[0].ID)
	assert.Equal(t, "ROLE_ACTIVE", result.DeletedRoles[0].Name)

	// Skips come out in check order: not found, already deleted, in use
	require.Len(t, result.Skipped, 3)

	assert.Equal(t, missing, result.Skipped[0].ID)
	assert.Nil(t, result.Skipped[0].Name)
	assert.Equal(t, "Role not found", result.Skipped[0].Reason)

	assert.Equal(t, trashed.ID, result.Skipped[1].ID)
	require.NotNil(t, result.Skipped[1].Name)
	assert.Equal(t, "ROLE_TRASHED", *result.Skipped[1].Name)
	assert.Equal(t, "Rol already deleted", result.Skipped[1].Reason)

	assert.Equal(t, held.ID, result.Skipped[2].ID)
	require.NotNil(t, result.Skipped[2].Name)
	assert.Equal(t, "ROLE_HELD", *result.Skipped[2].Name)
	assert.Equal(t, "Role in use", result.Skipped[2].Reason)

	// The delete actually landed
	stored, err := service.GetRole(ctx, active.ID)
	require.NoError(t, err)
	assert.True(t, stored.Deleted)
}

func TestBulkDeleteRolesDuplicates(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	created, err := service.CreateRole(ctx, "ROLE_ADMIN", "", false)
	require.NoError(t, err)

	// Duplicate ids collapse to one outcome, but the requested count
	// reflects the raw input
	result, err := service.BulkDeleteRoles(ctx, []uuid.UUID{created.ID, created.ID, created.ID})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 1, result.Deleted)
	assert.Len(t, result.DeletedRoles, 1)
	assert.Empty(t, result.Skipped)
}

func TestBulkDeleteRolesEmptyInput(t *testing.T) {
	ctx := context.Background()
	spy := &spyRoleRepository{InMemoryRoleRepository: NewInMemoryRoleRepository()}
	service := NewRoleService(spy, spy)

	result, err := service.BulkDeleteRoles(ctx, []uuid.UUID{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Requested)
	assert.Equal(t, 0, result.Deleted)
	assert.Empty(t, result.DeletedRoles)
	assert.Empty(t, result.Skipped)

	// Empty input never touches the store
	assert.Equal(t, 0, spy.findByIdsCalls)
	assert.Equal(t, 0, spy.setDeletedCalls)

	result, err = service.BulkDeleteRoles(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Requested)
	assert.Equal(t, 0, spy.findByIdsCalls)
}

func TestBulkDeleteRolesNoWriteWhenAllSkipped(t *testing.T) {
	ctx := context.Background()
	spy := &spyRoleRepository{InMemoryRoleRepository: NewInMemoryRoleRepository()}
	service := NewRoleService(spy, spy)

	result, err := service.BulkDeleteRoles(ctx, []uuid.UUID{uuid.New(), uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 0, result.Deleted)
	assert.Len(t, result.Skipped, 2)
	assert.Equal(t, 1, spy.findByIdsCalls)
	assert.Equal(t, 0, spy.setDeletedCalls)
}

func TestBulkRestoreRoles(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	trashed, err := service.CreateRole(ctx, "ROLE_TRASHED", "", false)
	require.NoError(t, err)
	_, err = service.SoftDeleteRole(ctx, trashed.ID)
	require.NoError(t, err)
	active, err := service.CreateRole(ctx, "ROLE_ACTIVE", "", false)
	require.NoError(t, err)
	missing := uuid.New()

	result, err := service.BulkRestoreRoles(ctx, []uuid.UUID{trashed.ID, active.ID, missing})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 1, result.Restored)
	require.Len(t, result.RestoredRoles, 1)
	assert.Equal(t, trashed.ID, result.RestoredRoles[0].ID)
	assert.Equal(t, "ROLE_TRASHED", result.RestoredRoles[0].Name)

	require.Len(t, result.Skipped, 2)

	assert.Equal(t, missing, result.Skipped[0].ID)
	assert.Nil(t, result.Skipped[0].Name)
	assert.Equal(t, "Role not found", result.Skipped[0].Reason)

	assert.Equal(t, active.ID, result.Skipped[1].ID)
	require.NotNil(t, result.Skipped[1].Name)
	assert.Equal(t, "ROLE_ACTIVE", *result.Skipped[1].Name)
	assert.Equal(t, "Role not deleted", result.Skipped[1].Reason)

	stored, err := service.GetRole(ctx, trashed.ID)
	require.NoError(t, err)
	assert.False(t, stored.Deleted)
}

func TestBulkRestoreRolesIgnoresAssignments(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService()

	trashed, err := service.CreateRole(ctx, "ROLE_TRASHED", "", false)
	require.NoError(t, err)
	_, err = service.SoftDeleteRole(ctx, trashed.ID)
	require.NoError(t, err)

	// Assignments only gate deletion, never restore
	repo.SeedRoleUser(trashed.ID, "alice")

	result, err := service.BulkRestoreRoles(ctx, []uuid.UUID{trashed.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Restored)
	assert.Empty(t, result.Skipped)
}

func TestBulkRestoreRolesEmptyInput(t *testing.T) {
	ctx := context.Background()
	spy := &spyRoleRepository{InMemoryRoleRepository: NewInMemoryRoleRepository()}
	service := NewRoleService(spy, spy)

	result, err := service.BulkRestoreRoles(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Requested)
	assert.Equal(t, 0, result.Restored)
	assert.Empty(t, result.RestoredRoles)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 0, spy.findByIdsCalls)
	assert.Equal(t, 0, spy.setDeletedCalls)
}
