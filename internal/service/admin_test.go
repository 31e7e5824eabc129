package service

import (
	"context"
	"net/http"
	"testing"

	"agrovet-rest-api/internal/storage"
	"agrovet-rest-api/internal/store"
	"agrovet-rest-api/pkg/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdmins() *AdminService {
	return NewAdminService(store.New(storage.NewMemoryStorage()))
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	admins := newTestAdmins()

	admin, err := admins.Register(ctx, "manager", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "manager", admin.Username)
	// Only the bcrypt hash is stored.
	assert.NotContains(t, admin.PasswordHash, "s3cret-pass")

	got, err := admins.Login(ctx, "manager", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "manager", got.Username)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	admins := newTestAdmins()

	_, err := admins.Register(ctx, "", "s3cret-pass")
	requireAPIError(t, err, http.StatusBadRequest)

	_, err = admins.Register(ctx, "manager", "short")
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	admins := newTestAdmins()

	_, err := admins.Register(ctx, "manager", "s3cret-pass")
	require.NoError(t, err)

	_, err = admins.Register(ctx, "manager", "another-pass")
	requireAPIError(t, err, http.StatusConflict)
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	admins := newTestAdmins()

	_, err := admins.Register(ctx, "manager", "s3cret-pass")
	require.NoError(t, err)

	_, err = admins.Login(ctx, "manager", "wrong-pass")
	requireAPIError(t, err, http.StatusUnauthorized)

	_, err = admins.Login(ctx, "nobody", "s3cret-pass")
	requireAPIError(t, err, http.StatusUnauthorized)
}

func requireAPIError(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apierror.Error)
	require.True(t, ok, "expected *apierror.Error, got %T", err)
	assert.Equal(t, status, apiErr.StatusCode)
}
