package memstore

import (
	"context"
	"fmt"
	"sort"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

type Users struct{ s *Store }

func (s *Store) Users() *Users { return &Users{s: s} }

var _ repositories.UserStore = (*Users)(nil)

func (u *Users) FindByID(_ context.Context, id string) (*entities.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if user, ok := u.s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, user := range u.s.users {
		if user.Email == email {
			user := user
			return &user, nil
		}
	}
	return nil, nil
}

func (u *Users) ListAll(_ context.Context) ([]entities.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	out := make([]entities.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreationDate.After(out[j].CreationDate)
	})
	return out, nil
}

func (u *Users) Insert(_ context.Context, user *entities.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	u.s.users[user.ID] = *user
	return nil
}

func (u *Users) Replace(_ context.Context, user *entities.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return fmt.Errorf("user %s: %w", user.ID, apperrors.ErrNotFound)
	}
	u.s.users[user.ID] = *user
	return nil
}

func (u *Users) Delete(_ context.Context, id string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	delete(u.s.users, id)
	return nil
}

type Roles struct{ s *Store }

func (s *Store) Roles() *Roles { return &Roles{s: s} }

var _ repositories.RoleStore = (*Roles)(nil)

func (r *Roles) FindByID(_ context.Context, id int64) (*entities.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if role, ok := r.s.roles[id]; ok {
		return &role, nil
	}
	return nil, nil
}

func (r *Roles) FindByName(_ context.Context, name string) (*entities.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.Name == name {
			role := role
			return &role, nil
		}
	}
	return nil, nil
}

func (r *Roles) ListAll(_ context.Context) ([]entities.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Role, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Roles) Insert(_ context.Context, role *entities.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roles[role.ID] = *role
	return nil
}

type UserRoles struct{ s *Store }

func (s *Store) UserRoles() *UserRoles { return &UserRoles{s: s} }

var _ repositories.UserRoleStore = (*UserRoles)(nil)

func (r *UserRoles) ListByUser(_ context.Context, userID string) ([]entities.UserRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.UserRole
	for _, b := range r.s.userRoles {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRoles) ListByRole(_ context.Context, roleID int64) ([]entities.UserRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.UserRole
	for _, b := range r.s.userRoles {
		if b.RoleID == roleID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRoles) Find(_ context.Context, userID string, roleID int64) (*entities.UserRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.userRoles {
		if b.UserID == userID && b.RoleID == roleID {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (r *UserRoles) Insert(_ context.Context, binding *entities.UserRole) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.userRoles[binding.ID] = *binding
	return nil
}

func (r *UserRoles) DeleteByUserAndRole(_ context.Context, userID string, roleID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.userRoles {
		if b.UserID == userID && b.RoleID == roleID {
			delete(r.s.userRoles, id)
		}
	}
	return nil
}

func (r *UserRoles) DeleteByUser(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.userRoles {
		if b.UserID == userID {
			delete(r.s.userRoles, id)
		}
	}
	return nil
}
