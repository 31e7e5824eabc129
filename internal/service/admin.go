package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/store"
	"agrovet-rest-api/pkg/apierror"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted admin password length.
const MinPasswordLength = 6

// AdminService handles admin registration and login against the
// store's admins collection.
type AdminService struct {
	store *store.Store
}

// NewAdminService creates a new admin service.
func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// Register creates a new admin account with a bcrypt password hash.
func (s *AdminService) Register(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apierror.ValidationError("username is required",
			apierror.FieldError{Field: "username", Message: "must not be empty"})
	}
	if len(password) < MinPasswordLength {
		return nil, apierror.ValidationError("password too short",
			apierror.FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength)})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := model.Admin{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.AddAdmin(ctx, admin); err != nil {
		if err == model.ErrConflict {
			return nil, apierror.Conflict("username already taken")
		}
		return nil, err
	}

	log.Printf("[AdminService] Registered admin %s", username)
	return &admin, nil
}

// Login verifies credentials and returns the matching admin. Wrong
// username and wrong password are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.store.AdminByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if err == model.ErrNotFound {
			return nil, apierror.Unauthorized("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apierror.Unauthorized("invalid username or password")
	}

	return admin, nil
}
