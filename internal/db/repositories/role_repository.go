package repositories

import (
	"context"
	"fmt"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoleStore interface {
	FindByID(ctx context.Context, id int64) (*entities.Role, error)
	FindByName(ctx context.Context, name string) (*entities.Role, error)
	ListAll(ctx context.Context) ([]entities.Role, error)
	Insert(ctx context.Context, role *entities.Role) error
}

// UserRoleStore manages the user-to-role join rows
type UserRoleStore interface {
	ListByUser(ctx context.Context, userID string) ([]entities.UserRole, error)
	ListByRole(ctx context.Context, roleID int64) ([]entities.UserRole, error)
	Find(ctx context.Context, userID string, roleID int64) (*entities.UserRole, error)
	Insert(ctx context.Context, binding *entities.UserRole) error
	DeleteByUserAndRole(ctx context.Context, userID string, roleID int64) error
	DeleteByUser(ctx context.Context, userID string) error
}

type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(constants.CollRoles)}
}

var _ RoleStore = (*RoleRepository)(nil)

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*entities.Role, error) {
	var role entities.Role
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&role)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*entities.Role, error) {
	var role entities.Role
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role by name: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) ListAll(ctx context.Context) ([]entities.Role, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	var roles []entities.Role
	if err := cur.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("failed to decode roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) Insert(ctx context.Context, role *entities.Role) error {
	if _, err := r.coll.InsertOne(ctx, role); err != nil {
		return fmt.Errorf("failed to insert role: %w", err)
	}
	return nil
}

type UserRoleRepository struct {
	coll *mongo.Collection
}

func NewUserRoleRepository(db *mongo.Database) *UserRoleRepository {
	return &UserRoleRepository{coll: db.Collection(constants.CollUserRoles)}
}

var _ UserRoleStore = (*UserRoleRepository)(nil)

func (r *UserRoleRepository) ListByUser(ctx context.Context, userID string) ([]entities.UserRole, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	var bindings []entities.UserRole
	if err := cur.All(ctx, &bindings); err != nil {
		return nil, fmt.Errorf("failed to decode user roles: %w", err)
	}
	return bindings, nil
}

func (r *UserRoleRepository) ListByRole(ctx context.Context, roleID int64) ([]entities.UserRole, error) {
	cur, err := r.coll.Find(ctx, bson.M{"role_id": roleID})
	if err != nil {
		return nil, fmt.Errorf("failed to list role bindings: %w", err)
	}
	var bindings []entities.UserRole
	if err := cur.All(ctx, &bindings); err != nil {
		return nil, fmt.Errorf("failed to decode role bindings: %w", err)
	}
	return bindings, nil
}

func (r *UserRoleRepository) Find(ctx context.Context, userID string, roleID int64) (*entities.UserRole, error) {
	var binding entities.UserRole
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "role_id": roleID}).Decode(&binding)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user role binding: %w", err)
	}
	return &binding, nil
}

func (r *UserRoleRepository) Insert(ctx context.Context, binding *entities.UserRole) error {
	if _, err := r.coll.InsertOne(ctx, binding); err != nil {
		return fmt.Errorf("failed to insert user role binding: %w", err)
	}
	return nil
}

// DeleteByUserAndRole is a no-op when no binding matches
func (r *UserRoleRepository) DeleteByUserAndRole(ctx context.Context, userID string, roleID int64) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID, "role_id": roleID})
	if err != nil {
		return fmt.Errorf("failed to delete user role binding: %w", err)
	}
	return nil
}

func (r *UserRoleRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete user role bindings: %w", err)
	}
	return nil
}
