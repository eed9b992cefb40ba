package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/tendant/chi-demo/app"

	"github.com/tendant/simple-facts/pkg/iam"
	iamapi "github.com/tendant/simple-facts/pkg/iam/api"
	"github.com/tendant/simple-facts/pkg/role"
	roleapi "github.com/tendant/simple-facts/pkg/role/api"
)

// iamUsageOracle answers role-usage questions from the in-memory IAM store,
// so assignments made through the user API gate role deletion.
type iamUsageOracle struct {
	repo *iam.InMemoryIamRepository
}

func (o *iamUsageOracle) HasUsers(ctx context.Context, roleID uuid.UUID) (bool, error) {
	users, err := o.repo.FindRoleUsers(ctx, roleID)
	if err != nil {
		return false, err
	}
	return len(users) > 0, nil
}

func (o *iamUsageOracle) RoleIdsInUse(ctx context.Context, roleIds []uuid.UUID) ([]uuid.UUID, error) {
	inUse := []uuid.UUID{}
	for _, id := range roleIds {
		users, err := o.repo.FindRoleUsers(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(users) > 0 {
			inUse = append(inUse, id)
		}
	}
	return inUse, nil
}

func (o *iamUsageOracle) GetRoleUsers(ctx context.Context, roleID uuid.UUID, limit, offset int32) ([]role.RoleUser, error) {
	users, err := o.repo.FindRoleUsers(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if offset >= int32(len(users)) {
		return []role.RoleUser{}, nil
	}
	end := offset + limit
	if end > int32(len(users)) {
		end = int32(len(users))
	}

	page := make([]role.RoleUser, 0, end-offset)
	for _, u := range users[offset:end] {
		page = append(page, role.RoleUser{
			ID:            u.ID,
			Username:      u.Username,
			Email:         u.Email,
			Enabled:       u.Enabled,
			EmailVerified: u.EmailVerified,
			CreatedAt:     u.CreatedAt,
			UpdatedAt:     u.UpdatedAt,
		})
	}
	return page, nil
}

func (o *iamUsageOracle) CountRoleUsers(ctx context.Context, roleID uuid.UUID) (int64, error) {
	users, err := o.repo.FindRoleUsers(ctx, roleID)
	if err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

func seed(ctx context.Context, roleService *role.RoleService, iamService *iam.IamService) {
	admin, err := roleService.CreateRole(ctx, "ROLE_ADMIN", "Full access", true)
	if err != nil {
		slog.Error("Failed seeding roles", "error", err)
		return
	}
	if _, err := roleService.CreateRole(ctx, "ROLE_VIEWER", "Read-only access", true); err != nil {
		slog.Error("Failed seeding roles", "error", err)
		return
	}

	alice, err := iamService.CreateUser(ctx, iam.CreateUserParams{
		Username: "alice",
		Email:    "alice@example.com",
		Enabled:  true,
	})
	if err != nil {
		slog.Error("Failed seeding users", "error", err)
		return
	}
	if err := iamService.AddUserToRole(ctx, alice.ID, admin.ID); err != nil {
		slog.Error("Failed seeding assignments", "error", err)
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	roleRepo := role.NewInMemoryRoleRepository()
	iamRepo := iam.NewInMemoryIamRepository()
	iamRepo.RoleNameFunc = func(roleID uuid.UUID) string {
		r, err := roleRepo.GetRoleById(context.Background(), roleID)
		if err != nil {
			return ""
		}
		return r.Name
	}

	roleService := role.NewRoleService(roleRepo, &iamUsageOracle{repo: iamRepo})
	iamService := iam.NewIamService(iamRepo)

	seed(context.Background(), roleService, iamService)

	roleapi.NewHandle(roleService).RegisterRoutes(server.R)
	iamapi.NewHandle(iamService).RegisterRoutes(server.R)

	server.Run()
}
