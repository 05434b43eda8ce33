// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements Auth, the middleware that turns a bearer token into
// a live session. The first request with a fresh token spins up that
// session's controller (profile load plus parallel bootstrap of the cached
// collections); later requests reuse it. Handlers downstream read the
// resolved identity and session cache from the Gin context.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ideabox/go-ideabox-backend/internal/session"
)

const (
	// CtxUserKey is the Gin context key holding the signed-in *domain.Profile.
	CtxUserKey = "user"
	// CtxStoreKey is the Gin context key holding the session's *store.Store.
	CtxStoreKey = "store"
	// ctxUserIDKey mirrors the profile ID for log enrichment and rate keys.
	ctxUserIDKey = "userID"
)

// Auth returns a Gin middleware that authenticates requests with a bearer
// session token.
//
// Behavior:
//   - Missing or malformed Authorization header: 401 "unauthenticated".
//   - Token that resolves to no live session (expired, signed out, or the
//     backend rejected it): 401 "session_expired". Clients treat both as a
//     redirect to the sign-in screen.
//   - Otherwise the controller's cache and profile are stored in the Gin
//     context under CtxStoreKey / CtxUserKey, and "userID" is set for the
//     access log and rate-limit keying.
//
// Resolving blocks until the session finishes its initial profile load and
// bootstrap, so handlers always see a settled cache.
func Auth(reg *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, "unauthenticated", "missing bearer token")
			return
		}

		ctrl, err := reg.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				unauthorized(c, "session_expired", "session is no longer valid")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "internal_error",
				"message":    "internal server error",
			})
			return
		}
		SetActiveSessions(reg.Len())

		st := ctrl.Store()
		user := st.User()
		if user == nil {
			// Authenticated state always carries a profile; treat a miss as
			// a dead session.
			reg.Evict(token)
			unauthorized(c, "session_expired", "session is no longer valid")
			return
		}

		c.Set(CtxStoreKey, st)
		c.Set(CtxUserKey, user)
		c.Set(ctxUserIDKey, user.ID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, code, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       code,
		"message":    msg,
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <t>" value.
// Scheme matching is case-insensitive; an empty or non-bearer value yields "".
func bearerToken(h string) string {
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
