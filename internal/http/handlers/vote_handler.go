// Vote HTTP handlers.
//
// This file exposes:
//   - POST /ideas/{id}/votes   (cast or update a rating on one axis)
//   - GET  /votes              (the current user's votes, keyed by idea)
//
// A user holds at most one vote row per idea; the row carries both rating
// axes. Casting on an axis the user already rated updates that axis only.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/services"
)

// CastVoteRequest is the JSON payload for casting a vote.
type CastVoteRequest struct {
	// Axis is the rating dimension: "quality" or "priority".
	Axis string `json:"axis" binding:"required" example:"quality"`
	// Rating is the star value, 1 to 5.
	Rating int `json:"rating" binding:"required" example:"4"`
}

// CastVoteResponse returns the stored vote row and, when the refetch
// succeeded, the idea's refreshed aggregate scores.
type CastVoteResponse struct {
	Vote       domain.Vote            `json:"vote"`
	Aggregates *domain.IdeaAggregates `json:"aggregates,omitempty"`
}

// CastVote godoc
// @ID          castVote
// @Summary     Cast or update a vote
// @Description Records a 1-5 rating on the quality or priority axis of an idea. Scores in the response come from the backend, never computed locally.
// @Tags        Votes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Idea ID (UUID)"  format(uuid)
// @Param       body  body  handlers.CastVoteRequest  true  "Vote payload"
//
// @Success     200  {object}  handlers.CastVoteResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     409  {object}  handlers.ErrorResponse  "Vote already in flight"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ideas/{id}/votes [post]
func (h *Handlers) CastVote(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	ideaID := c.Param("id")
	if _, err := uuid.Parse(ideaID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "idea id must be a UUID")
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	vote, agg, err := h.voteSvc.Cast(c.Request.Context(), st, user, ideaID, services.VoteAxis(req.Axis), req.Rating)
	if err != nil {
		switch err {
		case services.ErrInvalidRating, services.ErrInvalidAxis:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrVoteInFlight:
			fail(c, http.StatusConflict, ErrCodeVoteInFlight, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not record vote")
		}
		return
	}
	ok(c, http.StatusOK, CastVoteResponse{Vote: *vote, Aggregates: agg})
}

// MyVotes godoc
// @ID          myVotes
// @Summary     List the current user's votes
// @Description Returns the signed-in user's cached votes keyed by idea ID.
// @Tags        Votes
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  map[string]domain.Vote
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /votes [get]
func (h *Handlers) MyVotes(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	votes := st.UserVotes()
	if votes == nil {
		votes = map[string]domain.Vote{}
	}
	ok(c, http.StatusOK, votes)
}
