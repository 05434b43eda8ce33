// Package services – VoteService
//
// This file implements vote casting. A vote is a star rating on one of two
// independent axes (quality, priority); a user holds at most one Vote row
// per idea and the row accumulates both axes. The service decides between
// insert and update from the session cache, patches the cache by merging
// (so concurrent ratings on different axes never clobber each other), and
// then refetches the idea's server-maintained aggregates. Averages are
// never computed here: vote weighting lives in the backend and may change
// without a client release.
package services

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// VoteAxis names the rating axis a vote applies to.
type VoteAxis string

// The two rating axes.
const (
	AxisQuality  VoteAxis = "quality"
	AxisPriority VoteAxis = "priority"
)

// VoteService casts and updates votes. Double submissions for the same
// (user, idea) pair are suppressed with an in-flight guard rather than
// transport-level de-duplication; the guard is released on every exit path
// so an error can never leave a pair permanently locked.
type VoteService struct {
	GW gateway.Gateway

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewVoteService builds a VoteService over the given backend handle.
func NewVoteService(gw gateway.Gateway) *VoteService {
	return &VoteService{GW: gw, inflight: make(map[string]struct{})}
}

// acquire marks (userID, ideaID) as in flight. It reports false when a
// vote for the pair is already being processed.
func (s *VoteService) acquire(userID, ideaID string) bool {
	key := userID + "\x00" + ideaID
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *VoteService) release(userID, ideaID string) {
	key := userID + "\x00" + ideaID
	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
}

// Cast records a rating on one axis of an idea for the signed-in user.
//
// Flow:
//  1. look up the cached vote for (idea, user); update the single rating
//     column when present, insert a fresh row otherwise
//  2. merge the returned row into the session cache (the row carries both
//     axes, so the untouched axis survives)
//  3. strictly afterwards, refetch the idea's four aggregate columns and
//     patch the cached idea with the server's values
//
// On any error the cache is left unchanged.
func (s *VoteService) Cast(ctx context.Context, st *store.Store, user *domain.Profile, ideaID string, axis VoteAxis, rating int) (*domain.Vote, *domain.IdeaAggregates, error) {
	tr := otel.Tracer("services/VoteService")
	ctx, span := tr.Start(ctx, "Cast",
		trace.WithAttributes(
			attribute.String("idea.id", ideaID),
			attribute.String("vote.axis", string(axis)),
			attribute.Int("vote.rating", rating),
		),
	)
	defer span.End()

	if rating < 1 || rating > 5 {
		return nil, nil, ErrInvalidRating
	}
	if axis != AxisQuality && axis != AxisPriority {
		return nil, nil, ErrInvalidAxis
	}

	if !s.acquire(user.ID, ideaID) {
		return nil, nil, ErrVoteInFlight
	}
	defer s.release(user.ID, ideaID)

	var (
		vote *domain.Vote
		err  error
	)
	if cached, ok := st.VoteFor(ideaID); ok {
		upd := gateway.VoteRatingUpdate{}
		if axis == AxisQuality {
			upd.QualityRating = &rating
		} else {
			upd.PriorityRating = &rating
		}
		vote, err = s.GW.UpdateVoteRating(ctx, cached.ID, upd)
	} else {
		in := gateway.VoteInsert{IdeaID: ideaID, UserID: user.ID}
		if axis == AxisQuality {
			in.QualityRating = &rating
		} else {
			in.PriorityRating = &rating
		}
		vote, err = s.GW.InsertVote(ctx, in)
	}
	if err != nil {
		return nil, nil, err
	}
	st.SetVote(ideaID, *vote)

	// Sequential dependency: the aggregate refetch happens only after the
	// vote write has settled.
	agg, err := s.GW.GetIdeaAggregates(ctx, ideaID)
	if err != nil {
		// The vote itself succeeded; the cached idea keeps its stale
		// scores until the next reload.
		return vote, nil, nil
	}
	st.UpdateIdea(ideaID, store.IdeaPatch{
		QualityScore:       &agg.QualityScore,
		PriorityScore:      &agg.PriorityScore,
		QualityVotesCount:  &agg.QualityVotesCount,
		PriorityVotesCount: &agg.PriorityVotesCount,
	})
	return vote, agg, nil
}
