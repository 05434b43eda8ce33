// Auth HTTP handlers.
//
// This file exposes the session lifecycle endpoints backed by the embedded
// auth backend:
//   - POST /auth/signin    (public; mints a session token)
//   - POST /auth/refresh   (extends the presented token's session)
//   - POST /auth/signout   (invalidates the presented token)
//
// Refresh and signout read the bearer token directly instead of going
// through the auth middleware, so an expired token can still be signed out
// without spinning up a session controller.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/session"
)

// SessionAuthority is the token-minting surface of the auth backend,
// beyond what the gateway.Auth contract offers to session controllers.
type SessionAuthority interface {
	// SignIn authenticates by company email and mints a session token.
	SignIn(ctx context.Context, email, fullName string) (*gateway.Session, error)
	// Refresh extends the session behind token and emits TOKEN_REFRESHED.
	Refresh(ctx context.Context, token string) (*gateway.Session, error)
	// SignOut invalidates the session behind token and emits SIGNED_OUT.
	SignOut(ctx context.Context, token string) error
}

// AuthHandlers groups the session lifecycle endpoints.
type AuthHandlers struct {
	auth SessionAuthority
	reg  *session.Registry
}

// NewAuth constructs AuthHandlers bound to the auth backend and the
// session registry.
func NewAuth(auth SessionAuthority, reg *session.Registry) *AuthHandlers {
	return &AuthHandlers{auth: auth, reg: reg}
}

// SignInRequest is the JSON payload for signing in.
type SignInRequest struct {
	// Email is the company email address; required.
	Email string `json:"email" binding:"required" example:"dana.rossi@example.com"`
	// FullName optionally seeds the profile name on first sign-in.
	FullName string `json:"full_name,omitempty" example:"Dana Rossi"`
}

// SessionResponse describes a minted or refreshed session.
type SessionResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func sessionResponse(s *gateway.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		UserID:    s.UserID,
		Email:     s.Email,
		ExpiresAt: s.ExpiresAt,
	}
}

// SignIn godoc
// @ID          signIn
// @Summary     Sign in
// @Description Authenticates by company email and returns a bearer session token. The profile row is created lazily on the first authenticated request.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SignInRequest  true  "Sign-in payload"
//
// @Success     200  {object}  handlers.SessionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/signin [post]
func (h *AuthHandlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "a valid email is required")
		return
	}

	sess, err := h.auth.SignIn(c.Request.Context(), email, strings.TrimSpace(req.FullName))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSignInFailed, "could not sign in")
		return
	}
	ok(c, http.StatusOK, sessionResponse(sess))
}

// Refresh godoc
// @ID          refreshSession
// @Summary     Refresh the session
// @Description Extends the lifetime of the presented bearer token. A live session controller re-fetches the profile only; cached collections are untouched.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.SessionResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /auth/refresh [post]
func (h *AuthHandlers) Refresh(c *gin.Context) {
	token := bearerFromHeader(c)
	if token == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "missing bearer token")
		return
	}
	sess, err := h.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "session is no longer valid")
		return
	}
	ok(c, http.StatusOK, sessionResponse(sess))
}

// SignOut godoc
// @ID          signOut
// @Summary     Sign out
// @Description Invalidates the presented bearer token. The session controller clears the user, ideas, votes, and notifications; the signed-out state is entered immediately.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /auth/signout [post]
func (h *AuthHandlers) SignOut(c *gin.Context) {
	token := bearerFromHeader(c)
	if token == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "missing bearer token")
		return
	}
	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "session is no longer valid")
		return
	}
	h.reg.Evict(token)
	noContent(c)
}

// bearerFromHeader extracts the token from the Authorization header.
func bearerFromHeader(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
