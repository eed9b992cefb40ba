package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tendant/simple-facts/pkg/role/roledb"
	"github.com/tendant/simple-facts/pkg/utils"
)

// RoleRepository defines the interface for role persistence.
// Implementations report a missing row as ErrRoleNotFound.
type RoleRepository interface {
	GetRoleById(ctx context.Context, id uuid.UUID) (Role, error)
	GetRoleByName(ctx context.Context, name string) (Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindRoles(ctx context.Context) ([]Role, error)
	FindRolesByDeleted(ctx context.Context, deleted bool) ([]Role, error)
	FindRolesByIds(ctx context.Context, ids []uuid.UUID) ([]Role, error)
	CountRoles(ctx context.Context) (int64, error)
	ListRoles(ctx context.Context, limit, offset int32) ([]Role, error)
	SearchRoles(ctx context.Context, query string, limit, offset int32) ([]Role, error)
	CountSearchRoles(ctx context.Context, query string) (int64, error)
	CreateRole(ctx context.Context, arg CreateRoleParams) (Role, error)
	UpdateRole(ctx context.Context, arg UpdateRoleParams) (Role, error)
	// SetDeletedByIds flips the deleted flag for the whole id set in one
	// statement, so a bulk operation's write is all-or-nothing.
	SetDeletedByIds(ctx context.Context, ids []uuid.UUID, deleted bool) ([]Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error

	// Transaction support
	WithPgxTx(tx pgx.Tx) RoleRepository
}

// PostgresRoleRepository implements RoleRepository using roledb.Queries
type PostgresRoleRepository struct {
	queries *roledb.Queries
}

// NewPostgresRoleRepository creates a new PostgreSQL-based role repository
func NewPostgresRoleRepository(queries *roledb.Queries) *PostgresRoleRepository {
	return &PostgresRoleRepository{
		queries: queries,
	}
}

func (r *PostgresRoleRepository) GetRoleById(ctx context.Context, id uuid.UUID) (Role, error) {
	dbRole, err := r.queries.GetRoleById(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return toRole(dbRole), nil
}

func (r *PostgresRoleRepository) GetRoleByName(ctx context.Context, name string) (Role, error) {
	dbRole, err := r.queries.GetRoleByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return toRole(dbRole), nil
}

func (r *PostgresRoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.queries.ExistsRoleByName(ctx, name)
}

func (r *PostgresRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	dbRoles, err := r.queries.FindRoles(ctx)
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

func (r *PostgresRoleRepository) FindRolesByDeleted(ctx context.Context, deleted bool) ([]Role, error) {
	dbRoles, err := r.queries.FindRolesByDeleted(ctx, deleted)
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

func (r *PostgresRoleRepository) FindRolesByIds(ctx context.Context, ids []uuid.UUID) ([]Role, error) {
	dbRoles, err := r.queries.FindRolesByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

func (r *PostgresRoleRepository) CountRoles(ctx context.Context) (int64, error) {
	return r.queries.CountRoles(ctx)
}

func (r *PostgresRoleRepository) ListRoles(ctx context.Context, limit, offset int32) ([]Role, error) {
	dbRoles, err := r.queries.ListRoles(ctx, roledb.ListRolesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

func (r *PostgresRoleRepository) SearchRoles(ctx context.Context, query string, limit, offset int32) ([]Role, error) {
	dbRoles, err := r.queries.SearchRoles(ctx, roledb.SearchRolesParams{
		Query:  query,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

func (r *PostgresRoleRepository) CountSearchRoles(ctx context.Context, query string) (int64, error) {
	return r.queries.CountSearchRoles(ctx, query)
}

func (r *PostgresRoleRepository) CreateRole(ctx context.Context, arg CreateRoleParams) (Role, error) {
	description := arg.Description
	if !arg.DescriptionValid {
		description = ""
	}
	dbRole, err := r.queries.CreateRole(ctx, roledb.CreateRoleParams{
		Name:        arg.Name,
		Description: utils.ToNullString(description),
	})
	if err != nil {
		return Role{}, err
	}
	return toRole(dbRole), nil
}

func (r *PostgresRoleRepository) UpdateRole(ctx context.Context, arg UpdateRoleParams) (Role, error) {
	description := arg.Description
	if !arg.DescriptionValid {
		description = ""
	}
	dbRole, err := r.queries.UpdateRole(ctx, roledb.UpdateRoleParams{
		ID:          arg.ID,
		Name:        arg.Name,
		Description: utils.ToNullString(description),
		Deleted:     arg.Deleted,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return toRole(dbRole), nil
}

func (r *PostgresRoleRepository) SetDeletedByIds(ctx context.Context, ids []uuid.UUID, deleted bool) ([]Role, error) {
	dbRoles, err := r.queries.SetRolesDeletedByIds(ctx, roledb.SetRolesDeletedByIdsParams{
		Deleted: deleted,
		Ids:     ids,
	})
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

func (r *PostgresRoleRepository) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteRole(ctx, id)
}

// WithPgxTx returns a repository bound to the given transaction
func (r *PostgresRoleRepository) WithPgxTx(tx pgx.Tx) RoleRepository {
	return &PostgresRoleRepository{
		queries: r.queries.WithTx(tx),
	}
}

func toRole(dbRole roledb.Role) Role {
	return Role{
		ID:               dbRole.ID,
		Name:             dbRole.Name,
		Description:      dbRole.Description.String,
		DescriptionValid: dbRole.Description.Valid,
		Deleted:          dbRole.Deleted,
	}
}

func toRoles(dbRoles []roledb.Role) []Role {
	roles := make([]Role, len(dbRoles))
	for i, dbRole := range dbRoles {
		roles[i] = toRole(dbRole)
	}
	return roles
}
