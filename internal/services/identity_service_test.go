package services

import (
	"context"
	"errors"
	"testing"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"
)

func TestRegisterAssignsDefaultRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "new@example.com")
	if user.ID == "" {
		t.Fatal("expected a generated user id")
	}
	if user.PasswordHash == "" || user.PasswordHash == "secret-password" {
		t.Error("password was not hashed")
	}

	roles, err := env.identity.RolesOf(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(roles) != 1 || roles[0] != constants.RoleUser.String() {
		t.Errorf("roles = %v, want [User]", roles)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "dup@example.com")

	err := env.identity.Register(context.Background(), &entities.User{Email: "dup@example.com"}, "pw")
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAddRoleIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "user@example.com")

	if err := env.identity.AddRole(ctx, user.ID, constants.RoleUser.String()); err != nil {
		t.Fatal(err)
	}
	roles, _ := env.identity.RolesOf(ctx, user.ID)
	if len(roles) != 1 {
		t.Errorf("roles = %v, want a single User binding", roles)
	}
}

func TestAddRoleRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")

	err := env.identity.AddRole(context.Background(), user.ID, "Overlord")
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPromoteSwapsRoleAndRunsCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "user@example.com")
	ad := env.createAd(t, env.playerCatalog, user.ID)

	if err := env.identity.Promote(ctx, user.ID); err != nil {
		t.Fatal(err)
	}

	roles, _ := env.identity.RolesOf(ctx, user.ID)
	if len(roles) != 1 || roles[0] != constants.RoleAdmin.String() {
		t.Errorf("roles = %v, want [Admin]", roles)
	}

	// The user row survives a role swap
	if _, err := env.identity.Get(ctx, user.ID); err != nil {
		t.Errorf("user gone after promote: %v", err)
	}

	// The cascade repointed their advertisement to the sentinel and closed it
	got, err := env.playerCatalog.Get(ctx, ad.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != env.sentinelID {
		t.Errorf("advertisement publisher = %s, want sentinel", got.UserID)
	}
	if got.IsActive(env.clock.Now().Add(1)) {
		t.Error("advertisement still active after promote cascade")
	}
}

func TestDemoteReturnsUserRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "admin@example.com")
	if err := env.identity.Promote(ctx, user.ID); err != nil {
		t.Fatal(err)
	}

	if err := env.identity.Demote(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	roles, _ := env.identity.RolesOf(ctx, user.ID)
	if len(roles) != 1 || roles[0] != constants.RoleUser.String() {
		t.Errorf("roles = %v, want [User]", roles)
	}
}

func TestDeleteUserRemovesAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "leaver@example.com")

	if err := env.identity.DeleteUser(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.identity.Get(ctx, user.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	roles, _ := env.identity.RolesOf(ctx, user.ID)
	if len(roles) != 0 {
		t.Errorf("role bindings survived delete: %v", roles)
	}
}

func TestDeleteSentinelIsRejected(t *testing.T) {
	env := newTestEnv(t)
	err := env.identity.DeleteUser(context.Background(), env.sentinelID)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSentinelMissingIsConfigurationError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Remove the sentinel out from under the engine
	if err := env.store.Users().Delete(ctx, env.sentinelID); err != nil {
		t.Fatal(err)
	}

	_, err := env.identity.Sentinel(ctx)
	if !errors.Is(err, apperrors.ErrConfigurationMissing) {
		t.Errorf("expected ErrConfigurationMissing, got %v", err)
	}
	if !apperrors.IsFatal(err) {
		t.Error("missing sentinel should be fatal")
	}

	// And the cascade refuses to start
	user := env.registerUser(t, "user@example.com")
	err = env.identity.DeleteUser(ctx, user.ID)
	if !errors.Is(err, apperrors.ErrConfigurationMissing) {
		t.Errorf("expected ErrConfigurationMissing from cascade, got %v", err)
	}
}

func TestUsersWithRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.registerUser(t, "a@example.com")
	b := env.registerUser(t, "b@example.com")
	if err := env.identity.Promote(ctx, b.ID); err != nil {
		t.Fatal(err)
	}

	users, err := env.identity.UsersWithRole(ctx, constants.RoleUser.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].ID != a.ID {
		t.Errorf("Users with role User = %d, want just %s", len(users), a.ID)
	}

	if _, err := env.identity.UsersWithRole(ctx, "Overlord"); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
