package iam

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *IamService {
	return NewIamService(NewInMemoryIamRepository())
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		params  CreateUserParams
		wantErr bool
	}{
		{
			name: "valid user",
			params: CreateUserParams{
				Username: "alice",
				Email:    "alice@example.com",
				Enabled:  true,
			},
		},
		{
			name: "missing username",
			params: CreateUserParams{
				Email: "alice@example.com",
			},
			wantErr: true,
		},
		{
			name: "missing email",
			params: CreateUserParams{
				Username: "alice",
			},
			wantErr: true,
		},
		{
			name: "malformed email",
			params: CreateUserParams{
				Username: "alice",
				Email:    "not-an-email",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()

			user, err := service.CreateUser(ctx, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.params.Username, user.Username)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.CreateUser(ctx, CreateUserParams{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, CreateUserParams{
		Username: "alice",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists{Username: "alice"})

	_, err = service.CreateUser(ctx, CreateUserParams{
		Username: "alice2",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists{Email: "alice@example.com"})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	created, err := service.CreateUser(ctx, CreateUserParams{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	_, err = service.CreateUser(ctx, CreateUserParams{
		Username: "bob",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)

	// Keeping your own username is not a conflict
	updated, err := service.UpdateUser(ctx, UpdateUserParams{
		ID:       created.ID,
		Username: "alice",
		Email:    "alice@example.com",
		Enabled:  true,
	})
	assert.NoError(t, err)
	assert.True(t, updated.Enabled)

	// Taking someone else's username is
	_, err = service.UpdateUser(ctx, UpdateUserParams{
		ID:       created.ID,
		Username: "bob",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists{Username: "bob"})

	// Unknown user
	_, err = service.UpdateUser(ctx, UpdateUserParams{
		ID:       uuid.New(),
		Username: "carol",
		Email:    "carol@example.com",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	created, err := service.CreateUser(ctx, CreateUserParams{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	err = service.DeleteUser(ctx, created.ID)
	assert.NoError(t, err)

	_, err = service.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = service.DeleteUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRoleAssignments(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	created, err := service.CreateUser(ctx, CreateUserParams{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	roleID := uuid.New()

	err = service.AddUserToRole(ctx, created.ID, roleID)
	assert.NoError(t, err)

	withRoles, err := service.GetUserWithRoles(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, withRoles.Roles, 1)
	assert.Equal(t, roleID, withRoles.Roles[0].ID)

	// Assigning again is a no-op
	err = service.AddUserToRole(ctx, created.ID, roleID)
	assert.NoError(t, err)
	withRoles, err = service.GetUserWithRoles(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, withRoles.Roles, 1)

	err = service.RemoveUserFromRole(ctx, created.ID, roleID)
	assert.NoError(t, err)
	withRoles, err = service.GetUserWithRoles(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, withRoles.Roles)

	// Unknown user
	err = service.AddUserToRole(ctx, uuid.New(), roleID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUsers(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	for _, u := range []string{"carol", "alice", "bob"} {
		_, err := service.CreateUser(ctx, CreateUserParams{
			Username: u,
			Email:    u + "@example.com",
		})
		require.NoError(t, err)
	}

	users, err := service.FindUsers(ctx)
	assert.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)
}
