// Package role provides role lifecycle management for simple-facts.
//
// This package manages role records with a soft-delete trash model and
// supports PostgreSQL and in-memory storage backends through repository
// interfaces.
//
// # Overview
//
// The role package provides:
//   - Role lifecycle management (create, update, rename, describe)
//   - Soft delete, restore, and permanent delete with a trash view
//   - Bulk delete and restore with per-role skip reporting
//   - Name normalization and format validation
//   - Usage checks against user assignments before deletion
//   - Repository pattern for database abstraction
//
// # Basic Usage
//
//	import "github.com/tendant/simple-facts/pkg/role"
//
//	// Create service
//	repo := role.NewPostgresRoleRepository(queries)
//	userRepo := role.NewPostgresRoleUserRepository(queries)
//	service := role.NewRoleService(repo, userRepo)
//
//	// Create a role (names are trimmed, uppercased, and validated)
//	created, err := service.CreateRole(ctx, "role_editor", "Editors", true)
//
//	// Rename it
//	renamed, err := service.RenameRole(ctx, created.ID, "ROLE_SENIOR_EDITOR")
//
// # Lifecycle
//
//	// Soft delete moves the role to the trash; it fails while users
//	// still hold the role.
//	_, err := service.SoftDeleteRole(ctx, roleID)
//
//	// List trashed roles and bring one back
//	trashed, err := service.ListTrash(ctx)
//	restored, err := service.RestoreRole(ctx, roleID)
//
//	// Permanent removal is only allowed from the trash
//	err = service.HardDeleteRole(ctx, roleID)
//
// # Bulk Operations
//
//	// Bulk calls never fail part-way: roles that cannot be processed
//	// are reported in Skipped with a reason.
//	result, err := service.BulkDeleteRoles(ctx, ids)
//	for _, s := range result.Skipped {
//		fmt.Printf("skipped %s: %s\n", s.ID, s.Reason)
//	}
//
// # Related Packages
//
//   - pkg/iam - User management and role assignments
//   - pkg/errors - Error codes and HTTP status mapping
package role
