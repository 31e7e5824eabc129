package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"agrovet-rest-api/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T) *SessionService {
	t.Helper()
	c := cache.NewMemoryCache()
	t.Cleanup(func() { c.Close() })
	return NewSessionService(c, time.Minute)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions(t)

	token, session, err := sessions.Create(ctx, "manager")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, TokenPrefix))
	assert.Equal(t, "manager", session.Username)

	validated, err := sessions.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "manager", validated.Username)

	require.NoError(t, sessions.Revoke(ctx, token))
	_, err = sessions.Validate(ctx, token)
	assert.Error(t, err)
}

func TestSessionValidateRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions(t)

	_, err := sessions.Validate(ctx, "")
	assert.Error(t, err)

	_, err = sessions.Validate(ctx, "not-a-token")
	assert.Error(t, err)

	_, err = sessions.Validate(ctx, TokenPrefix+"deadbeef")
	assert.Error(t, err)
}

func TestSessionRefreshExtendsExpiry(t *testing.T) {
	ctx := context.Background()
	sessions := newTestSessions(t)

	token, session, err := sessions.Create(ctx, "manager")
	require.NoError(t, err)

	refreshed, err := sessions.Refresh(ctx, token)
	require.NoError(t, err)
	assert.False(t, refreshed.ExpiresAt.Before(session.ExpiresAt))

	_, err = sessions.Refresh(ctx, TokenPrefix+"deadbeef")
	assert.Error(t, err)
}
