package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"agrovet-rest-api/internal/cache"
	"agrovet-rest-api/internal/model"
)

const (
	// TokenPrefix is the prefix for all session tokens
	TokenPrefix = "agt_"

	// DefaultSessionTTL is the default session lifetime
	DefaultSessionTTL = 1 * time.Hour

	// sessionKeyPrefix namespaces session entries in the cache
	sessionKeyPrefix = "session:"
)

// SessionService mints and validates opaque session tokens. Session
// payloads live in the cache port, so they are redis-backed in shared
// deployments and memory-backed otherwise.
type SessionService struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewSessionService creates a session service. A non-positive ttl
// falls back to DefaultSessionTTL.
func NewSessionService(c cache.Cache, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{cache: c, ttl: ttl}
}

// Create generates a new session token for the given admin.
func (s *SessionService) Create(ctx context.Context, username string) (string, *model.Session, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	token := TokenPrefix + hex.EncodeToString(tokenBytes)

	now := time.Now()
	session := model.Session{
		Username:  username,
		LoginTime: now,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := s.cache.Set(ctx, sessionKeyPrefix+token, payload, s.ttl); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("[SessionService] Created session for %s, expires=%v", username, session.ExpiresAt)
	return token, &session, nil
}

// Validate checks a token and returns its session data.
func (s *SessionService) Validate(ctx context.Context, token string) (*model.Session, error) {
	if len(token) < len(TokenPrefix) || token[:len(TokenPrefix)] != TokenPrefix {
		return nil, fmt.Errorf("invalid token format")
	}

	payload, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err == cache.ErrCacheMiss {
		return nil, fmt.Errorf("session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.cache.Delete(ctx, sessionKeyPrefix+token)
		return nil, fmt.Errorf("session expired")
	}

	return &session, nil
}

// Revoke deletes a session token.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

// Refresh extends the lifetime of an existing session.
func (s *SessionService) Refresh(ctx context.Context, token string) (*model.Session, error) {
	session, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	session.ExpiresAt = time.Now().Add(s.ttl)

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, payload, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}
