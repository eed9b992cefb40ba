package iam

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tendant/simple-facts/pkg/iam/iamdb"
)

// IamRepository defines the interface for user storage operations
type IamRepository interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	AddUserRole(ctx context.Context, userID, roleID uuid.UUID) error
	RemoveUserRole(ctx context.Context, userID, roleID uuid.UUID) error
	RemoveUserRoles(ctx context.Context, userID uuid.UUID) error
	FindUserRoles(ctx context.Context, userID uuid.UUID) ([]RoleSummary, error)

	WithPgxTx(tx pgx.Tx) IamRepository
}

// PostgresIamRepository implements IamRepository using iamdb.Queries
type PostgresIamRepository struct {
	queries *iamdb.Queries
}

// NewPostgresIamRepository creates a new PostgreSQL-based IAM repository
func NewPostgresIamRepository(queries *iamdb.Queries) *PostgresIamRepository {
	return &PostgresIamRepository{
		queries: queries,
	}
}

func toUser(u iamdb.User) User {
	return User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Enabled:       u.Enabled,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toUsers(dbUsers []iamdb.User) []User {
	users := make([]User, len(dbUsers))
	for i, u := range dbUsers {
		users[i] = toUser(u)
	}
	return users
}

func (r *PostgresIamRepository) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	u, err := r.queries.CreateUser(ctx, iamdb.CreateUserParams{
		Username:      arg.Username,
		Email:         arg.Email,
		Enabled:       arg.Enabled,
		EmailVerified: arg.EmailVerified,
	})
	if err != nil {
		return User{}, err
	}
	return toUser(u), nil
}

func (r *PostgresIamRepository) GetUserById(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := r.queries.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return toUser(u), nil
}

func (r *PostgresIamRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	u, err := r.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return toUser(u), nil
}

func (r *PostgresIamRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.queries.ExistsUserByUsername(ctx, username)
}

func (r *PostgresIamRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.queries.ExistsUserByEmail(ctx, email)
}

func (r *PostgresIamRepository) FindUsers(ctx context.Context) ([]User, error) {
	dbUsers, err := r.queries.FindUsers(ctx)
	if err != nil {
		return nil, err
	}
	return toUsers(dbUsers), nil
}

func (r *PostgresIamRepository) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	u, err := r.queries.UpdateUser(ctx, iamdb.UpdateUserParams{
		ID:            arg.ID,
		Username:      arg.Username,
		Email:         arg.Email,
		Enabled:       arg.Enabled,
		EmailVerified: arg.EmailVerified,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return toUser(u), nil
}

func (r *PostgresIamRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteUser(ctx, id)
}

func (r *PostgresIamRepository) AddUserRole(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.queries.CreateUserRole(ctx, iamdb.CreateUserRoleParams{
		UserID: userID,
		RoleID: roleID,
	})
}

func (r *PostgresIamRepository) RemoveUserRole(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.queries.DeleteUserRole(ctx, iamdb.DeleteUserRoleParams{
		UserID: userID,
		RoleID: roleID,
	})
}

func (r *PostgresIamRepository) RemoveUserRoles(ctx context.Context, userID uuid.UUID) error {
	return r.queries.DeleteUserRoles(ctx, userID)
}

func (r *PostgresIamRepository) FindUserRoles(ctx context.Context, userID uuid.UUID) ([]RoleSummary, error) {
	dbRoles, err := r.queries.FindUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles := make([]RoleSummary, len(dbRoles))
	for i, dbRole := range dbRoles {
		roles[i] = RoleSummary{ID: dbRole.ID, Name: dbRole.Name}
	}
	return roles, nil
}

// WithPgxTx returns a repository bound to the given transaction
func (r *PostgresIamRepository) WithPgxTx(tx pgx.Tx) IamRepository {
	return &PostgresIamRepository{queries: r.queries.WithTx(tx)}
}
