// Package gateway defines the contract to the external data backend: a
// table-oriented query interface plus the authentication/session API. All
// reads, writes and auth calls made by the application go through a
// Gateway handle; no other layer knows how rows are stored or sessions
// issued.
//
// Payloads are the backend's native row shapes (see internal/domain); the
// insert/update structs below mirror the columns each operation is allowed
// to touch, nothing more.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
)

// ErrNotFound is returned when a query expecting a single row matches
// nothing. Callers that treat absence as a creation trigger (lazy profile
// setup) must check for it with errors.Is.
var ErrNotFound = errors.New("gateway: row not found")

// ErrNoSession is returned by Session when the presented token does not
// map to a live session (missing, expired, or signed out).
var ErrNoSession = errors.New("gateway: no session")

// ErrDuplicateVote is returned when an insert would violate the one vote
// per (idea, user) constraint enforced by the backend.
var ErrDuplicateVote = errors.New("gateway: vote already exists")

// AuthEventType identifies an auth-state change pushed by the backend.
type AuthEventType string

// Auth-state change events.
const (
	EventSignedIn       AuthEventType = "SIGNED_IN"
	EventSignedOut      AuthEventType = "SIGNED_OUT"
	EventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
)

// Session describes an authenticated backend session. FullName carries the
// sign-up metadata used to derive a default profile name; it may be empty.
type Session struct {
	UserID    string
	Email     string
	FullName  string
	Token     string
	ExpiresAt time.Time
}

// AuthEvent is a single auth-state change. For SIGNED_OUT the Session
// field carries the session that just ended, so listeners bound to one
// token can tell whether the event concerns them.
type AuthEvent struct {
	Type    AuthEventType
	Session *Session
}

// ProfileInsert carries the columns written on lazy profile creation.
type ProfileInsert struct {
	ID       string
	Email    string
	FullName string
}

// ProfileUpdate carries the columns the profile-edit view may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FullName   *string
	Department *string
}

// IdeaInsert carries the columns written on idea submission. Status is set
// by the service layer, not by client input.
type IdeaInsert struct {
	AuthorID    *string
	IsAnonymous bool
	Title       string
	Description string
	CategoryID  *string
	Status      domain.IdeaStatus
}

// DecisionUpdate is the atomic write applied to an idea when the direction
// role decides on it. ScheduledQuarter is only set for approvals.
type DecisionUpdate struct {
	Status              domain.IdeaStatus
	DirectionVerdict    string
	DirectionMotivation string
	DirectionReviewedBy string
	DirectionReviewedAt time.Time
	ScheduledQuarter    *string
	ReviewCycle         *int
}

// VoteInsert carries the columns written when a user votes on an idea for
// the first time. Exactly one of the rating fields is set.
type VoteInsert struct {
	IdeaID         string
	UserID         string
	QualityRating  *int
	PriorityRating *int
}

// VoteRatingUpdate updates a single rating axis on an existing vote; the
// unset axis is left untouched.
type VoteRatingUpdate struct {
	QualityRating  *int
	PriorityRating *int
}

// CommentInsert carries the columns written when posting a comment.
type CommentInsert struct {
	IdeaID           string
	AuthorID         *string
	Content          string
	IsAnonymous      bool
	IsDirectionReply bool
}

// NotificationInsert carries the columns written when a direction decision
// notifies the idea's author.
type NotificationInsert struct {
	UserID  string
	Type    string
	Title   string
	Message *string
	IdeaID  *string
}

// Auth is the session half of the backend contract.
type Auth interface {
	// Session resolves an access token to a live session, or ErrNoSession.
	Session(ctx context.Context, token string) (*Session, error)

	// SignOut invalidates the session for token and emits SIGNED_OUT.
	SignOut(ctx context.Context, token string) error

	// Subscribe registers an auth-state change listener. The returned stop
	// function detaches the listener and closes the channel; it must be
	// called exactly once when the subscriber shuts down.
	Subscribe() (<-chan AuthEvent, func())
}

// Tables is the table-oriented half of the backend contract. Single-row
// reads return ErrNotFound when nothing matches.
type Tables interface {
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, in ProfileInsert) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.Profile, error)

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListIdeas returns all non-draft ideas joined with author and
	// category, ordered by creation time descending.
	ListIdeas(ctx context.Context) ([]domain.Idea, error)

	// GetIdea returns a single idea joined with author and category.
	GetIdea(ctx context.Context, id string) (*domain.Idea, error)

	// GetIdeaAggregates refetches the server-maintained score and count
	// columns for an idea.
	GetIdeaAggregates(ctx context.Context, id string) (*domain.IdeaAggregates, error)

	CreateIdea(ctx context.Context, in IdeaInsert) (*domain.Idea, error)

	// ApplyDecision writes the decision columns of an idea in one update.
	ApplyDecision(ctx context.Context, ideaID string, upd DecisionUpdate) error

	ListVotesByUser(ctx context.Context, userID string) ([]domain.Vote, error)
	InsertVote(ctx context.Context, in VoteInsert) (*domain.Vote, error)
	UpdateVoteRating(ctx context.Context, voteID string, upd VoteRatingUpdate) (*domain.Vote, error)

	InsertComment(ctx context.Context, in CommentInsert) (*domain.Comment, error)

	// ListComments returns an idea's comments joined with their authors,
	// ordered by creation time ascending.
	ListComments(ctx context.Context, ideaID string) ([]domain.Comment, error)

	// ListNotifications returns the newest limit notifications for a user,
	// most recent first.
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	InsertNotification(ctx context.Context, in NotificationInsert) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	// LatestReviewCycle returns the cycle with the highest cycle_number,
	// or ErrNotFound when none exist.
	LatestReviewCycle(ctx context.Context) (*domain.ReviewCycle, error)
}

// Gateway is the full backend handle used across the application.
type Gateway interface {
	Auth
	Tables
}
