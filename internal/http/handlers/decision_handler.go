// Direction decision HTTP handlers.
//
// This file exposes:
//   - POST /ideas/{id}/decision   (approve or reject an idea)
//
// Only direction members may decide. The decision write is atomic; the
// author notification that follows is best-effort.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideabox/go-ideabox-backend/internal/services"
)

// DecisionRequest is the JSON payload for a direction decision.
type DecisionRequest struct {
	// Verdict is "approved" or "rejected".
	Verdict string `json:"verdict" binding:"required" example:"approved"`
	// Motivation explains the decision to the author; required.
	Motivation string `json:"motivation" binding:"required" example:"Strong scores and low cost, scheduling for next quarter."`
	// ScheduledQuarter optionally plans an approved idea, e.g. "Q2 2026".
	// Ignored for rejections.
	ScheduledQuarter string `json:"scheduled_quarter,omitempty" example:"Q2 2026"`
}

// Decide godoc
// @ID          decideIdea
// @Summary     Record a direction decision
// @Description Approves or rejects an idea with a motivation, then notifies the author. Requires the direction role.
// @Tags        Direction
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Idea ID (UUID)"  format(uuid)
// @Param       body  body  handlers.DecisionRequest  true  "Decision payload"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Direction role required"
// @Failure     404  {object}  handlers.ErrorResponse  "Idea not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ideas/{id}/decision [post]
func (h *Handlers) Decide(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	ideaID := c.Param("id")
	if _, err := uuid.Parse(ideaID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "idea id must be a UUID")
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	err := h.decisionSvc.Decide(c.Request.Context(), st, user, services.DecisionInput{
		IdeaID:           ideaID,
		Verdict:          req.Verdict,
		Motivation:       req.Motivation,
		ScheduledQuarter: req.ScheduledQuarter,
	})
	if err != nil {
		switch err {
		case services.ErrNotDirection:
			fail(c, http.StatusForbidden, ErrCodeDirectionRequired, err.Error())
		case services.ErrEmptyMotivation, services.ErrInvalidVerdict:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrIdeaNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "idea not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not record decision")
		}
		return
	}
	noContent(c)
}
