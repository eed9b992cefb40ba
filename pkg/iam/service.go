package iam

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IamService provides user management operations
type IamService struct {
	repo IamRepository
}

// NewIamService creates a new IAM service
func NewIamService(repo IamRepository) *IamService {
	return &IamService{
		repo: repo,
	}
}

func validateUser(username, email string) error {
	if strings.TrimSpace(username) == "" {
		return ErrInvalidUser{Reason: "username is required"}
	}
	if strings.TrimSpace(email) == "" {
		return ErrInvalidUser{Reason: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidUser{Reason: fmt.Sprintf("malformed email: %s", email)}
	}
	return nil
}

// CreateUser creates a new user with a unique username and email
func (s *IamService) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	if err := validateUser(arg.Username, arg.Email); err != nil {
		return User{}, err
	}

	taken, err := s.repo.ExistsByUsername(ctx, arg.Username)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrUsernameAlreadyExists{Username: arg.Username}
	}

	taken, err = s.repo.ExistsByEmail(ctx, arg.Email)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrEmailAlreadyExists{Email: arg.Email}
	}

	return s.repo.CreateUser(ctx, arg)
}

// GetUser retrieves a user by ID
func (s *IamService) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetUserById(ctx, id)
}

// GetUserByUsername retrieves a user by username
func (s *IamService) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

// FindUsers returns all users ordered by username
func (s *IamService) FindUsers(ctx context.Context) ([]User, error) {
	return s.repo.FindUsers(ctx)
}

// GetUserWithRoles retrieves a user along with their assigned roles
func (s *IamService) GetUserWithRoles(ctx context.Context, id uuid.UUID) (UserWithRoles, error) {
	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		return UserWithRoles{}, err
	}

	roles, err := s.repo.FindUserRoles(ctx, id)
	if err != nil {
		return UserWithRoles{}, err
	}
	if roles == nil {
		roles = []RoleSummary{}
	}

	return UserWithRoles{User: user, Roles: roles}, nil
}

// UpdateUser updates a user's profile fields
func (s *IamService) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	if err := validateUser(arg.Username, arg.Email); err != nil {
		return User{}, err
	}

	existing, err := s.repo.GetUserById(ctx, arg.ID)
	if err != nil {
		return User{}, err
	}

	if arg.Username != existing.Username {
		taken, err := s.repo.ExistsByUsername(ctx, arg.Username)
		if err != nil {
			return User{}, err
		}
		if taken {
			return User{}, ErrUsernameAlreadyExists{Username: arg.Username}
		}
	}
	if arg.Email != existing.Email {
		taken, err := s.repo.ExistsByEmail(ctx, arg.Email)
		if err != nil {
			return User{}, err
		}
		if taken {
			return User{}, ErrEmailAlreadyExists{Email: arg.Email}
		}
	}

	return s.repo.UpdateUser(ctx, arg)
}

// DeleteUser removes a user and their role assignments
func (s *IamService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetUserById(ctx, id); err != nil {
		return err
	}

	if err := s.repo.RemoveUserRoles(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, id)
}

// AddUserToRole assigns a role to a user. Assigning an already held role is
// a no-op.
func (s *IamService) AddUserToRole(ctx context.Context, userID, roleID uuid.UUID) error {
	if _, err := s.repo.GetUserById(ctx, userID); err != nil {
		return err
	}
	return s.repo.AddUserRole(ctx, userID, roleID)
}

// RemoveUserFromRole removes a role assignment from a user. Removing an
// assignment that does not exist is a no-op.
func (s *IamService) RemoveUserFromRole(ctx context.Context, userID, roleID uuid.UUID) error {
	if _, err := s.repo.GetUserById(ctx, userID); err != nil {
		return err
	}
	return s.repo.RemoveUserRole(ctx, userID, roleID)
}
