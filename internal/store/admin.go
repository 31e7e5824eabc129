package store

import (
	"context"

	"agrovet-rest-api/internal/model"
)

// Admins returns all registered admin accounts.
func (s *Store) Admins(ctx context.Context) ([]model.Admin, error) {
	return load[model.Admin](ctx, s, adminsKey)
}

// AdminByUsername returns the admin with the given username, or
// model.ErrNotFound.
func (s *Store) AdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admins, err := s.Admins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Username == username {
			return &admins[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// AddAdmin appends a new admin account. Returns model.ErrConflict when
// the username is already taken.
func (s *Store) AddAdmin(ctx context.Context, admin model.Admin) error {
	admins, err := s.Admins(ctx)
	if err != nil {
		return err
	}
	for _, a := range admins {
		if a.Username == admin.Username {
			return model.ErrConflict
		}
	}
	admins = append(admins, admin)
	return save(ctx, s, adminsKey, admins)
}
