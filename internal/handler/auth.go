package handler

import (
	"net/http"
	"strings"

	"agrovet-rest-api/internal/service"
	"agrovet-rest-api/pkg/apierror"
	"agrovet-rest-api/pkg/response"
)

// AuthHandler handles admin registration and session HTTP requests.
type AuthHandler struct {
	admins   *service.AdminService
	sessions *service.SessionService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(admins *service.AdminService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{admins: admins, sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	admin, err := h.admins.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"username":   admin.Username,
		"created_at": admin.CreatedAt,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	admin, err := h.admins.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	token, session, err := h.sessions.Create(r.Context(), admin.Username)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"token":      token,
		"username":   session.Username,
		"login_time": session.LoginTime,
		"expires_at": session.ExpiresAt,
	})
}

// tokenFromRequest pulls the session token from X-Token or a Bearer
// Authorization header.
func tokenFromRequest(r *http.Request) string {
	token := r.Header.Get("X-Token")
	if token == "" {
		auth := r.Header.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)
	if token == "" {
		response.Error(w, apierror.BadRequest("no session token supplied"))
		return
	}

	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)
	if token == "" {
		response.Error(w, apierror.BadRequest("no session token supplied"))
		return
	}

	session, err := h.sessions.Refresh(r.Context(), token)
	if err != nil {
		response.Error(w, apierror.Unauthorized("Invalid or expired session"))
		return
	}

	response.OK(w, map[string]interface{}{
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
	})
}
