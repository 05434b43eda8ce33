package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/services"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

func TestCastVote_OK(t *testing.T) {
	ideaID := uuid.NewString()
	h := testHandlers(t, func(h *Handlers) {
		h.voteSvc = &fakeVoteSvc{
			castFn: func(ctx context.Context, st *store.Store, user *domain.Profile, gotIdea string, axis services.VoteAxis, rating int) (*domain.Vote, *domain.IdeaAggregates, error) {
				if gotIdea != ideaID || axis != services.AxisQuality || rating != 4 {
					t.Fatalf("unexpected cast: %s %s %d", gotIdea, axis, rating)
				}
				return &domain.Vote{ID: "v1", IdeaID: gotIdea},
					&domain.IdeaAggregates{QualityScore: 4, QualityVotesCount: 1}, nil
			},
		}
	})
	r := newAuthedRouter(h, store.New(), authedUser())

	w := doJSON(t, r, http.MethodPost, "/ideas/"+ideaID+"/votes", CastVoteRequest{Axis: "quality", Rating: 4})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp CastVoteResponse
	decodeBody(t, w, &resp)
	if resp.Vote.ID != "v1" || resp.Aggregates == nil || resp.Aggregates.QualityScore != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCastVote_AggregatesOmittedWhenUnavailable(t *testing.T) {
	h := testHandlers(t, func(h *Handlers) {
		h.voteSvc = &fakeVoteSvc{
			castFn: func(ctx context.Context, st *store.Store, user *domain.Profile, ideaID string, axis services.VoteAxis, rating int) (*domain.Vote, *domain.IdeaAggregates, error) {
				return &domain.Vote{ID: "v1"}, nil, nil
			},
		}
	})
	r := newAuthedRouter(h, store.New(), authedUser())

	w := doJSON(t, r, http.MethodPost, "/ideas/"+uuid.NewString()+"/votes", CastVoteRequest{Axis: "quality", Rating: 4})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var raw map[string]any
	decodeBody(t, w, &raw)
	if _, present := raw["aggregates"]; present {
		t.Fatalf("aggregates must be omitted when nil: %s", w.Body.String())
	}
}

func TestCastVote_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"invalid rating", services.ErrInvalidRating, http.StatusBadRequest, ErrCodeBadRequest},
		{"invalid axis", services.ErrInvalidAxis, http.StatusBadRequest, ErrCodeBadRequest},
		{"in flight", services.ErrVoteInFlight, http.StatusConflict, ErrCodeVoteInFlight},
		{"backend failure", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := testHandlers(t, func(h *Handlers) {
				h.voteSvc = &fakeVoteSvc{
					castFn: func(ctx context.Context, st *store.Store, user *domain.Profile, ideaID string, axis services.VoteAxis, rating int) (*domain.Vote, *domain.IdeaAggregates, error) {
						return nil, nil, tc.err
					},
				}
			})
			r := newAuthedRouter(h, store.New(), authedUser())
			w := doJSON(t, r, http.MethodPost, "/ideas/"+uuid.NewString()+"/votes", CastVoteRequest{Axis: "quality", Rating: 3})
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if got := errorCode(t, w); got != tc.wantCode {
				t.Fatalf("code = %s, want %s", got, tc.wantCode)
			}
		})
	}
}

func TestCastVote_BadIdeaID(t *testing.T) {
	h := testHandlers(t)
	r := newAuthedRouter(h, store.New(), authedUser())
	w := doJSON(t, r, http.MethodPost, "/ideas/nope/votes", CastVoteRequest{Axis: "quality", Rating: 3})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMyVotes(t *testing.T) {
	h := testHandlers(t)
	st := store.New()
	one := 1
	st.SetUserVotes([]domain.Vote{{ID: "v1", IdeaID: "i1", QualityRating: &one}})
	r := newAuthedRouter(h, st, authedUser())

	w := doJSON(t, r, http.MethodGet, "/votes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var votes map[string]domain.Vote
	decodeBody(t, w, &votes)
	if len(votes) != 1 || votes["i1"].ID != "v1" {
		t.Fatalf("unexpected votes: %+v", votes)
	}
}

func TestMyVotes_EmptyIsObjectNotNull(t *testing.T) {
	h := testHandlers(t)
	r := newAuthedRouter(h, store.New(), authedUser())
	w := doJSON(t, r, http.MethodGet, "/votes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body == "null" || body == "null\n" {
		t.Fatalf("empty votes must serialize as {}, got %q", body)
	}
}
