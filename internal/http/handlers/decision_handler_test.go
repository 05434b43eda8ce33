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

func TestDecide_NoContentOnSuccess(t *testing.T) {
	ideaID := uuid.NewString()
	var got services.DecisionInput
	h := testHandlers(t, func(h *Handlers) {
		h.decisionSvc = &fakeDecisionSvc{
			decideFn: func(ctx context.Context, st *store.Store, user *domain.Profile, in services.DecisionInput) error {
				got = in
				return nil
			},
		}
	})
	r := newAuthedRouter(h, store.New(), directionUser())

	w := doJSON(t, r, http.MethodPost, "/ideas/"+ideaID+"/decision", DecisionRequest{
		Verdict:          "approved",
		Motivation:       "solid scores",
		ScheduledQuarter: "Q2 2026",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got.IdeaID != ideaID || got.Verdict != "approved" || got.Motivation != "solid scores" || got.ScheduledQuarter != "Q2 2026" {
		t.Fatalf("input not passed through: %+v", got)
	}
}

func TestDecide_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"not direction", services.ErrNotDirection, http.StatusForbidden, ErrCodeDirectionRequired},
		{"empty motivation", services.ErrEmptyMotivation, http.StatusBadRequest, ErrCodeBadRequest},
		{"invalid verdict", services.ErrInvalidVerdict, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown idea", services.ErrIdeaNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"backend failure", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := testHandlers(t, func(h *Handlers) {
				h.decisionSvc = &fakeDecisionSvc{
					decideFn: func(ctx context.Context, st *store.Store, user *domain.Profile, in services.DecisionInput) error {
						return tc.err
					},
				}
			})
			r := newAuthedRouter(h, store.New(), directionUser())
			w := doJSON(t, r, http.MethodPost, "/ideas/"+uuid.NewString()+"/decision", DecisionRequest{Verdict: "approved", Motivation: "m"})
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if got := errorCode(t, w); got != tc.wantCode {
				t.Fatalf("code = %s, want %s", got, tc.wantCode)
			}
		})
	}
}

func TestDecide_BadIDAndBadBody(t *testing.T) {
	h := testHandlers(t)
	r := newAuthedRouter(h, store.New(), directionUser())

	if w := doJSON(t, r, http.MethodPost, "/ideas/nope/decision", DecisionRequest{Verdict: "approved", Motivation: "m"}); w.Code != http.StatusBadRequest {
		t.Fatalf("non-uuid id: status = %d, want 400", w.Code)
	}
	// Missing required verdict fails binding before the service is reached.
	if w := doJSON(t, r, http.MethodPost, "/ideas/"+uuid.NewString()+"/decision", map[string]any{"motivation": "m"}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing verdict: status = %d, want 400", w.Code)
	}
}
