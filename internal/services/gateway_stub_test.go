package services

import (
	"context"
	"errors"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
)

// stubGateway implements gateway.Gateway with overridable behavior per
// method. Calls without an override fail the flow loudly so tests catch
// unexpected backend traffic.
type stubGateway struct {
	createIdeaFn    func(ctx context.Context, in gateway.IdeaInsert) (*domain.Idea, error)
	getIdeaFn       func(ctx context.Context, id string) (*domain.Idea, error)
	listCommentsFn  func(ctx context.Context, ideaID string) ([]domain.Comment, error)
	insertVoteFn    func(ctx context.Context, in gateway.VoteInsert) (*domain.Vote, error)
	updateVoteFn    func(ctx context.Context, voteID string, upd gateway.VoteRatingUpdate) (*domain.Vote, error)
	aggregatesFn    func(ctx context.Context, id string) (*domain.IdeaAggregates, error)
	insertCommentFn func(ctx context.Context, in gateway.CommentInsert) (*domain.Comment, error)
	applyDecisionFn func(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error
	insertNotifFn   func(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error)
	markReadFn      func(ctx context.Context, id, userID string) error
	markAllReadFn   func(ctx context.Context, userID string) error
	updateProfileFn func(ctx context.Context, id string, upd gateway.ProfileUpdate) (*domain.Profile, error)
}

var errUnexpectedCall = errors.New("stub: unexpected gateway call")

func (g *stubGateway) Session(ctx context.Context, token string) (*gateway.Session, error) {
	return nil, errUnexpectedCall
}
func (g *stubGateway) SignOut(ctx context.Context, token string) error { return errUnexpectedCall }
func (g *stubGateway) Subscribe() (<-chan gateway.AuthEvent, func()) {
	ch := make(chan gateway.AuthEvent)
	return ch, func() { close(ch) }
}

func (g *stubGateway) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return nil, errUnexpectedCall
}

func (g *stubGateway) CreateProfile(ctx context.Context, in gateway.ProfileInsert) (*domain.Profile, error) {
	return nil, errUnexpectedCall
}

func (g *stubGateway) UpdateProfile(ctx context.Context, id string, upd gateway.ProfileUpdate) (*domain.Profile, error) {
	if g.updateProfileFn == nil {
		return nil, errUnexpectedCall
	}
	return g.updateProfileFn(ctx, id, upd)
}

func (g *stubGateway) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, errUnexpectedCall
}

func (g *stubGateway) ListIdeas(ctx context.Context) ([]domain.Idea, error) {
	return nil, errUnexpectedCall
}

func (g *stubGateway) GetIdea(ctx context.Context, id string) (*domain.Idea, error) {
	if g.getIdeaFn == nil {
		return nil, errUnexpectedCall
	}
	return g.getIdeaFn(ctx, id)
}

func (g *stubGateway) GetIdeaAggregates(ctx context.Context, id string) (*domain.IdeaAggregates, error) {
	if g.aggregatesFn == nil {
		return nil, errUnexpectedCall
	}
	return g.aggregatesFn(ctx, id)
}

func (g *stubGateway) CreateIdea(ctx context.Context, in gateway.IdeaInsert) (*domain.Idea, error) {
	if g.createIdeaFn == nil {
		return nil, errUnexpectedCall
	}
	return g.createIdeaFn(ctx, in)
}

func (g *stubGateway) ApplyDecision(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
	if g.applyDecisionFn == nil {
		return errUnexpectedCall
	}
	return g.applyDecisionFn(ctx, ideaID, upd)
}

func (g *stubGateway) ListVotesByUser(ctx context.Context, userID string) ([]domain.Vote, error) {
	return nil, errUnexpectedCall
}

func (g *stubGateway) InsertVote(ctx context.Context, in gateway.VoteInsert) (*domain.Vote, error) {
	if g.insertVoteFn == nil {
		return nil, errUnexpectedCall
	}
	return g.insertVoteFn(ctx, in)
}

func (g *stubGateway) UpdateVoteRating(ctx context.Context, voteID string, upd gateway.VoteRatingUpdate) (*domain.Vote, error) {
	if g.updateVoteFn == nil {
		return nil, errUnexpectedCall
	}
	return g.updateVoteFn(ctx, voteID, upd)
}

func (g *stubGateway) InsertComment(ctx context.Context, in gateway.CommentInsert) (*domain.Comment, error) {
	if g.insertCommentFn == nil {
		return nil, errUnexpectedCall
	}
	return g.insertCommentFn(ctx, in)
}

func (g *stubGateway) ListComments(ctx context.Context, ideaID string) ([]domain.Comment, error) {
	if g.listCommentsFn == nil {
		return nil, errUnexpectedCall
	}
	return g.listCommentsFn(ctx, ideaID)
}

func (g *stubGateway) ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	return nil, errUnexpectedCall
}

func (g *stubGateway) InsertNotification(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error) {
	if g.insertNotifFn == nil {
		return nil, errUnexpectedCall
	}
	return g.insertNotifFn(ctx, in)
}

func (g *stubGateway) MarkNotificationRead(ctx context.Context, id, userID string) error {
	if g.markReadFn == nil {
		return errUnexpectedCall
	}
	return g.markReadFn(ctx, id, userID)
}

func (g *stubGateway) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if g.markAllReadFn == nil {
		return errUnexpectedCall
	}
	return g.markAllReadFn(ctx, userID)
}

func (g *stubGateway) LatestReviewCycle(ctx context.Context) (*domain.ReviewCycle, error) {
	return nil, errUnexpectedCall
}

var _ gateway.Gateway = (*stubGateway)(nil)
