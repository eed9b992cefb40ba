package role

import (
	"context"

	"github.com/google/uuid"

	"github.com/tendant/simple-facts/pkg/role/roledb"
)

// RoleUserRepository answers whether roles are assigned to users and lists
// the users holding a role. User-role assignments are owned by the user side
// of the system, so this is a separate capability from RoleRepository.
type RoleUserRepository interface {
	HasUsers(ctx context.Context, roleID uuid.UUID) (bool, error)
	// RoleIdsInUse returns the subset of the given ids that are assigned
	// to at least one user.
	RoleIdsInUse(ctx context.Context, roleIds []uuid.UUID) ([]uuid.UUID, error)
	GetRoleUsers(ctx context.Context, roleID uuid.UUID, limit, offset int32) ([]RoleUser, error)
	CountRoleUsers(ctx context.Context, roleID uuid.UUID) (int64, error)
}

// PostgresRoleUserRepository implements RoleUserRepository using roledb.Queries
type PostgresRoleUserRepository struct {
	queries *roledb.Queries
}

// NewPostgresRoleUserRepository creates a new PostgreSQL-based role-user repository
func NewPostgresRoleUserRepository(queries *roledb.Queries) *PostgresRoleUserRepository {
	return &PostgresRoleUserRepository{
		queries: queries,
	}
}

func (r *PostgresRoleUserRepository) HasUsers(ctx context.Context, roleID uuid.UUID) (bool, error) {
	return r.queries.HasUsersWithRole(ctx, roleID)
}

func (r *PostgresRoleUserRepository) RoleIdsInUse(ctx context.Context, roleIds []uuid.UUID) ([]uuid.UUID, error) {
	return r.queries.FindRoleIdsInUse(ctx, roleIds)
}

func (r *PostgresRoleUserRepository) GetRoleUsers(ctx context.Context, roleID uuid.UUID, limit, offset int32) ([]RoleUser, error) {
	dbUsers, err := r.queries.FindRoleUsers(ctx, roledb.FindRoleUsersParams{
		RoleID: roleID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	users := make([]RoleUser, len(dbUsers))
	for i, dbUser := range dbUsers {
		users[i] = RoleUser{
			ID:            dbUser.ID,
			Username:      dbUser.Username,
			Email:         dbUser.Email,
			Enabled:       dbUser.Enabled,
			EmailVerified: dbUser.EmailVerified,
			CreatedAt:     dbUser.CreatedAt,
			UpdatedAt:     dbUser.UpdatedAt,
		}
	}
	return users, nil
}

func (r *PostgresRoleUserRepository) CountRoleUsers(ctx context.Context, roleID uuid.UUID) (int64, error) {
	return r.queries.CountRoleUsers(ctx, roleID)
}
