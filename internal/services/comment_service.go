// Package services – CommentService
//
// Comments are append-only from the client's perspective. The idea's
// comments_count is a server-maintained column; the +1 applied to the
// cached idea after a successful post is a best-effort display hint that
// the next full reload reconciles.
package services

import (
	"context"
	"strings"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// CommentService posts comments on ideas.
type CommentService struct {
	GW gateway.Gateway
}

// NewCommentService builds a CommentService over the given backend handle.
func NewCommentService(gw gateway.Gateway) *CommentService {
	return &CommentService{GW: gw}
}

// Post inserts a comment by the signed-in user. Comments written by a
// direction member are flagged as direction replies so views can highlight
// them. On success the cached idea's comments_count is optimistically
// incremented by exactly one; on failure the cache is untouched.
func (s *CommentService) Post(ctx context.Context, st *store.Store, user *domain.Profile, ideaID, content string, isAnonymous bool) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	authorID := user.ID
	c, err := s.GW.InsertComment(ctx, gateway.CommentInsert{
		IdeaID:           ideaID,
		AuthorID:         &authorID,
		Content:          content,
		IsAnonymous:      isAnonymous,
		IsDirectionReply: user.IsDirection,
	})
	if err != nil {
		return nil, err
	}

	if idea, ok := st.Idea(ideaID); ok {
		n := idea.CommentsCount + 1
		st.UpdateIdea(ideaID, store.IdeaPatch{CommentsCount: &n})
	}
	return c, nil
}
