package services

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/models/entities"

	"github.com/google/uuid"
)

// IdentityService owns users, roles and the user-role association. Role
// promotion and demotion run the full reassignment cascade before the
// swap: an account that changes sides of the Admin boundary can no
// longer be the subject of advertisements or offers.
type IdentityService struct {
	users     repositories.UserStore
	roles     repositories.RoleStore
	userRoles repositories.UserRoleStore
	alloc     db.SequenceAllocator
	cascade   *ReassignmentService
	hasher    PasswordHasher
	now       func() time.Time
}

func NewIdentityService(
	users repositories.UserStore,
	roles repositories.RoleStore,
	userRoles repositories.UserRoleStore,
	alloc db.SequenceAllocator,
	cascade *ReassignmentService,
	hasher PasswordHasher,
	now func() time.Time,
) *IdentityService {
	if now == nil {
		now = time.Now
	}
	return &IdentityService{
		users:     users,
		roles:     roles,
		userRoles: userRoles,
		alloc:     alloc,
		cascade:   cascade,
		hasher:    hasher,
		now:       now,
	}
}

// Register creates a user with a freshly hashed password and the default
// User role. A duplicate email is an invalid argument, not a conflict:
// the caller supplied it.
func (s *IdentityService) Register(ctx context.Context, user *entities.User, password string) error {
	if user.Email == "" {
		return fmt.Errorf("email is required: %w", apperrors.ErrInvalidArgument)
	}

	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%s: %w", constants.MsgDuplicateEmail, apperrors.ErrInvalidArgument)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user.ID = uuid.NewString()
	user.PasswordHash = hash
	user.CreationDate = s.now()

	if err := s.users.Insert(ctx, user); err != nil {
		return err
	}

	if err := s.AddRole(ctx, user.ID, constants.RoleUser.String()); err != nil {
		return err
	}

	logging.Info("User registered", "user_id", user.ID)
	return nil
}

// FindByEmail returns nil without error when no user matches
func (s *IdentityService) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *IdentityService) Get(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return user, nil
}

// RolesOf returns the role names bound to a user
func (s *IdentityService) RolesOf(ctx context.Context, userID string) ([]string, error) {
	bindings, err := s.userRoles.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		role, err := s.roles.FindByID(ctx, b.RoleID)
		if err != nil {
			return nil, err
		}
		if role != nil {
			names = append(names, role.Name)
		}
	}
	return names, nil
}

// UsersWithRole fails with InvalidArgument when the role name is unknown
func (s *IdentityService) UsersWithRole(ctx context.Context, roleName string) ([]entities.User, error) {
	role, err := s.lookupRole(ctx, roleName)
	if err != nil {
		return nil, err
	}

	bindings, err := s.userRoles.ListByRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(bindings))
	for _, b := range bindings {
		user, err := s.users.FindByID(ctx, b.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			users = append(users, *user)
		}
	}
	return users, nil
}

// AddRole binds a role to a user. A binding that already exists is left
// alone, so at most one row exists per (user, role) pair.
func (s *IdentityService) AddRole(ctx context.Context, userID, roleName string) error {
	role, err := s.lookupRole(ctx, roleName)
	if err != nil {
		return err
	}

	existing, err := s.userRoles.Find(ctx, userID, role.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	id, err := s.alloc.NextID(ctx, constants.CollUserRoles)
	if err != nil {
		return err
	}

	return s.userRoles.Insert(ctx, &entities.UserRole{
		ID:     id,
		UserID: userID,
		RoleID: role.ID,
	})
}

// RemoveRole is a no-op when no binding matches
func (s *IdentityService) RemoveRole(ctx context.Context, userID, roleName string) error {
	role, err := s.lookupRole(ctx, roleName)
	if err != nil {
		return err
	}
	return s.userRoles.DeleteByUserAndRole(ctx, userID, role.ID)
}

// Promote raises a user to Admin. The reassignment cascade runs first:
// an Admin can no longer be the subject of advertisements or offers.
func (s *IdentityService) Promote(ctx context.Context, userID string) error {
	return s.swapRole(ctx, userID, constants.RoleUser, constants.RoleAdmin)
}

// Demote returns an Admin to the User role, with the same cascade
func (s *IdentityService) Demote(ctx context.Context, userID string) error {
	return s.swapRole(ctx, userID, constants.RoleAdmin, constants.RoleUser)
}

func (s *IdentityService) swapRole(ctx context.Context, userID string, from, to constants.Role) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}

	return s.cascade.Reassign(ctx, userID, entities.CascadeRoleSwap, func(ctx context.Context) error {
		if err := s.RemoveRole(ctx, userID, from.String()); err != nil {
			return err
		}
		return s.AddRole(ctx, userID, to.String())
	})
}

// Sentinel resolves the permanent reassignment-target account. Its
// absence means the seed never ran; that is fatal, not recoverable.
func (s *IdentityService) Sentinel(ctx context.Context) (*entities.User, error) {
	user, err := s.users.FindByEmail(ctx, constants.SentinelEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgSentinelMissing, apperrors.ErrConfigurationMissing)
	}
	return user, nil
}

// DeleteUser removes an account after running the full reassignment
// cascade. The sentinel user is never deletable.
func (s *IdentityService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	if user.Email == constants.SentinelEmail {
		return fmt.Errorf("%s: %w", constants.MsgSentinelUndeletable, apperrors.ErrInvalidArgument)
	}

	return s.cascade.Reassign(ctx, userID, entities.CascadeDelete, nil)
}

func (s *IdentityService) lookupRole(ctx context.Context, roleName string) (*entities.Role, error) {
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%s %q: %w", constants.MsgUnknownRole, roleName, apperrors.ErrInvalidArgument)
	}
	return role, nil
}
