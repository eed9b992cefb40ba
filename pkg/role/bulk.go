package role

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Bulk skip reasons. The "Rol already deleted" spelling is kept for
// compatibility with existing API consumers.
const (
	skipReasonNotFound       = "Role not found"
	skipReasonAlreadyDeleted = "Rol already deleted"
	skipReasonInUse          = "Role in use"
	skipReasonNotDeleted     = "Role not deleted"
)

// dedupIds drops duplicate ids, preserving first-occurrence order
func dedupIds(ids []uuid.UUID) []uuid.UUID {
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	return unique
}

// BulkDeleteRoles soft-deletes a set of roles. Every requested id ends up in
// exactly one bucket: deleted, or skipped with a reason. Skips are reported
// in check order (not found, already deleted, in use), not input order.
// Duplicate ids collapse to a single outcome; the requested count still
// reflects the raw input.
func (s *RoleService) BulkDeleteRoles(ctx context.Context, ids []uuid.UUID) (BulkDeleteResult, error) {
	result := BulkDeleteResult{
		Requested:    len(ids),
		DeletedRoles: []BulkRoleRef{},
		Skipped:      []BulkSkippedRole{},
	}

	uniqueIds := dedupIds(ids)
	if len(uniqueIds) == 0 {
		result.Requested = 0
		return result, nil
	}

	fetched, err := s.repo.FindRolesByIds(ctx, uniqueIds)
	if err != nil {
		return BulkDeleteResult{}, err
	}
	rolesById := make(map[uuid.UUID]Role, len(fetched))
	for _, r := range fetched {
		rolesById[r.ID] = r
	}

	for _, id := range uniqueIds {
		if _, ok := rolesById[id]; !ok {
			result.Skipped = append(result.Skipped, BulkSkippedRole{
				ID:     id,
				Reason: skipReasonNotFound,
			})
		}
	}

	var activeRoles []Role
	for _, id := range uniqueIds {
		r, ok := rolesById[id]
		if !ok {
			continue
		}
		if r.Deleted {
			name := r.Name
			result.Skipped = append(result.Skipped, BulkSkippedRole{
				ID:     r.ID,
				Name:   &name,
				Reason: skipReasonAlreadyDeleted,
			})
			continue
		}
		activeRoles = append(activeRoles, r)
	}

	inUse := map[uuid.UUID]bool{}
	if len(activeRoles) > 0 {
		activeIds := make([]uuid.UUID, len(activeRoles))
		for i, r := range activeRoles {
			activeIds[i] = r.ID
		}
		inUseIds, err := s.userRepo.RoleIdsInUse(ctx, activeIds)
		if err != nil {
			return BulkDeleteResult{}, err
		}
		for _, id := range inUseIds {
			inUse[id] = true
		}
	}

	var toDelete []Role
	for _, r := range activeRoles {
		if inUse[r.ID] {
			name := r.Name
			result.Skipped = append(result.Skipped, BulkSkippedRole{
				ID:     r.ID,
				Name:   &name,
				Reason: skipReasonInUse,
			})
			continue
		}
		toDelete = append(toDelete, r)
	}

	if len(toDelete) > 0 {
		deleteIds := make([]uuid.UUID, len(toDelete))
		for i, r := range toDelete {
			deleteIds[i] = r.ID
		}
		if _, err := s.repo.SetDeletedByIds(ctx, deleteIds, true); err != nil {
			return BulkDeleteResult{}, err
		}
		for _, r := range toDelete {
			result.DeletedRoles = append(result.DeletedRoles, BulkRoleRef{ID: r.ID, Name: r.Name})
		}
	}

	result.Deleted = len(result.DeletedRoles)
	return result, nil
}

// BulkRestoreRoles restores a set of soft-deleted roles. Mirrors
// BulkDeleteRoles, except deleted roles are restored unconditionally (no
// usage check applies to restore).
func (s *RoleService) BulkRestoreRoles(ctx context.Context, ids []uuid.UUID) (BulkRestoreResult, error) {
	result := BulkRestoreResult{
		Requested:     len(ids),
		RestoredRoles: []BulkRoleRef{},
		Skipped:       []BulkSkippedRole{},
	}

	uniqueIds := dedupIds(ids)
	if len(uniqueIds) == 0 {
		result.Requested = 0
		return result, nil
	}

	fetched, err := s.repo.FindRolesByIds(ctx, uniqueIds)
	if err != nil {
		return BulkRestoreResult{}, err
	}
	rolesById := make(map[uuid.UUID]Role, len(fetched))
	for _, r := range fetched {
		rolesById[r.ID] = r
	}

	for _, id := range uniqueIds {
		if _, ok := rolesById[id]; !ok {
			result.Skipped = append(result.Skipped, BulkSkippedRole{
				ID:     id,
				Reason: skipReasonNotFound,
			})
		}
	}

	var toRestore []Role
	for _, id := range uniqueIds {
		r, ok := rolesById[id]
		if !ok {
			continue
		}
		if !r.Deleted {
			name := r.Name
			result.Skipped = append(result.Skipped, BulkSkippedRole{
				ID:     r.ID,
				Name:   &name,
				Reason: skipReasonNotDeleted,
			})
			continue
		}
		toRestore = append(toRestore, r)
	}

	if len(toRestore) > 0 {
		restoreIds := make([]uuid.UUID, len(toRestore))
		for i, r := range toRestore {
			restoreIds[i] = r.ID
		}
		if _, err := s.repo.SetDeletedByIds(ctx, restoreIds, false); err != nil {
			return BulkRestoreResult{}, err
		}
		for _, r := range toRestore {
			result.RestoredRoles = append(result.RestoredRoles, BulkRoleRef{ID: r.ID, Name: r.Name})
		}
	}

	result.Restored = len(result.RestoredRoles)
	return result, nil
}
