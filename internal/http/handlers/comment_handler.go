// Comment HTTP handlers.
//
// This file exposes:
//   - POST /ideas/{id}/comments   (post a comment)
//
// Comments are append-only; edits and deletions are not offered.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideabox/go-ideabox-backend/internal/services"
)

// PostCommentRequest is the JSON payload for posting a comment.
type PostCommentRequest struct {
	// Content is the comment body; required.
	Content string `json:"content" binding:"required" example:"We tried this in the Milan office, worked well."`
	// IsAnonymous hides the author's name in shared views.
	IsAnonymous bool `json:"is_anonymous"`
}

// PostComment godoc
// @ID          postComment
// @Summary     Comment on an idea
// @Description Posts a comment by the current user. Comments from a direction member are flagged as direction replies.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Idea ID (UUID)"  format(uuid)
// @Param       body  body  handlers.PostCommentRequest  true  "Comment payload"
//
// @Success     201  {object}  domain.Comment
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ideas/{id}/comments [post]
func (h *Handlers) PostComment(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	ideaID := c.Param("id")
	if _, err := uuid.Parse(ideaID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "idea id must be a UUID")
		return
	}

	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	comment, err := h.commentSvc.Post(c.Request.Context(), st, user, ideaID, req.Content, req.IsAnonymous)
	if err != nil {
		if err == services.ErrEmptyComment {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not post comment")
		return
	}
	ok(c, http.StatusCreated, comment)
}
