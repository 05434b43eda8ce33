// Profile HTTP handlers.
//
// This file exposes:
//   - GET /me   (current profile with the unread badge count)
//   - PUT /me   (edit full name and department)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/services"
)

// MeResponse wraps the current profile with derived session counters.
type MeResponse struct {
	User        domain.Profile `json:"user"`
	UnreadCount int            `json:"unread_count"`
}

// UpdateProfileRequest is the JSON payload for editing the profile.
type UpdateProfileRequest struct {
	// FullName is the display name; required, must not be blank.
	FullName string `json:"full_name" binding:"required" example:"Dana Rossi"`
	// Department is optional; a non-nil empty string clears it.
	Department *string `json:"department,omitempty" example:"Customer Support"`
}

// Me godoc
// @ID          me
// @Summary     Current user
// @Description Returns the signed-in user's profile and unread notification count.
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.MeResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /me [get]
func (h *Handlers) Me(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	ok(c, http.StatusOK, MeResponse{User: *user, UnreadCount: st.UnreadCount()})
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Edit the current profile
// @Description Updates full name and department; role flags and email are not editable.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.UpdateProfileRequest  true  "Profile payload"
//
// @Success     200  {object}  domain.Profile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /me [put]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.profileSvc.Update(c.Request.Context(), st, user, services.ProfileUpdateInput{
		FullName:   req.FullName,
		Department: req.Department,
	})
	if err != nil {
		if err == services.ErrEmptyFullName {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update profile")
		return
	}
	ok(c, http.StatusOK, updated)
}
