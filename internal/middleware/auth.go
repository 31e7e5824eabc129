package middleware

import (
	"context"
	"net/http"
	"strings"

	"agrovet-rest-api/internal/model"
	"agrovet-rest-api/internal/service"
	"agrovet-rest-api/pkg/apierror"
)

// SessionKey is the key for storing session data in request context.
const SessionKey contextKey = "session"

// NewAuth creates a session authentication middleware. Tokens are
// accepted from the X-Token header or an Authorization Bearer value.
// The router decides which routes this applies to; the middleware
// itself has no path exceptions.
func NewAuth(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Token")
			if token == "" {
				auth := r.Header.Get("Authorization")
				if strings.HasPrefix(auth, "Bearer ") {
					token = strings.TrimPrefix(auth, "Bearer ")
				}
			}

			if token == "" {
				writeError(w, apierror.Unauthorized("Authentication required. Use the X-Token header."))
				return
			}

			session, err := sessions.Validate(r.Context(), token)
			if err != nil {
				writeError(w, apierror.Unauthorized("Invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}

// GetSession retrieves the session from request context.
func GetSession(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(SessionKey).(*model.Session); ok {
		return session
	}
	return nil
}
