package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

func director() *domain.Profile {
	return &domain.Profile{ID: "dir-1", Email: "dir@example.com", FullName: "Director", IsDirection: true}
}

func TestDecide_Validation(t *testing.T) {
	s := NewDecisionService(&stubGateway{})
	st := store.New()

	err := s.Decide(context.Background(), st, testUser(), DecisionInput{
		IdeaID: "i1", Verdict: domain.VerdictApproved, Motivation: "m",
	})
	if !errors.Is(err, ErrNotDirection) {
		t.Fatalf("expected ErrNotDirection, got %v", err)
	}

	err = s.Decide(context.Background(), st, director(), DecisionInput{
		IdeaID: "i1", Verdict: domain.VerdictApproved, Motivation: "   ",
	})
	if !errors.Is(err, ErrEmptyMotivation) {
		t.Fatalf("expected ErrEmptyMotivation, got %v", err)
	}

	err = s.Decide(context.Background(), st, director(), DecisionInput{
		IdeaID: "i1", Verdict: "maybe", Motivation: "m",
	})
	if !errors.Is(err, ErrInvalidVerdict) {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
}

func TestDecide_ApproveWritesAndNotifies(t *testing.T) {
	author := "author-1"
	var decided gateway.DecisionUpdate
	var decidedID string
	var notif gateway.NotificationInsert
	gw := &stubGateway{
		applyDecisionFn: func(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
			decidedID, decided = ideaID, upd
			return nil
		},
		insertNotifFn: func(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error) {
			notif = in
			return &domain.Notification{ID: "n1"}, nil
		},
	}
	s := NewDecisionService(gw)
	when := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return when }

	st := store.New()
	st.SetIdeas([]domain.Idea{{ID: "i1", AuthorID: &author, Title: "standing desks", Status: domain.StatusSubmitted}})
	st.SetCurrentCycle(&domain.ReviewCycle{CycleNumber: 4})

	err := s.Decide(context.Background(), st, director(), DecisionInput{
		IdeaID:           "i1",
		Verdict:          domain.VerdictApproved,
		Motivation:       "  strong support  ",
		ScheduledQuarter: "Q3 2026",
	})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}

	if decidedID != "i1" || decided.Status != domain.StatusApproved {
		t.Fatalf("unexpected decision write: %s %+v", decidedID, decided)
	}
	if decided.DirectionMotivation != "strong support" {
		t.Fatalf("motivation not trimmed: %q", decided.DirectionMotivation)
	}
	if decided.DirectionReviewedBy != "dir-1" || !decided.DirectionReviewedAt.Equal(when) {
		t.Fatalf("reviewer columns wrong: %+v", decided)
	}
	if decided.ScheduledQuarter == nil || *decided.ScheduledQuarter != "Q3 2026" {
		t.Fatalf("scheduled quarter missing: %+v", decided)
	}
	if decided.ReviewCycle == nil || *decided.ReviewCycle != 4 {
		t.Fatalf("review cycle not taken from cache: %+v", decided)
	}

	// Cache patched with the same columns.
	idea, _ := st.Idea("i1")
	if idea.Status != domain.StatusApproved || idea.DirectionVerdict == nil || *idea.DirectionVerdict != domain.VerdictApproved {
		t.Fatalf("cache not patched: %+v", idea)
	}

	if notif.UserID != author || notif.Type != domain.NotificationIdeaApproved {
		t.Fatalf("author notification wrong: %+v", notif)
	}
	if notif.IdeaID == nil || *notif.IdeaID != "i1" || notif.Message == nil {
		t.Fatalf("notification payload incomplete: %+v", notif)
	}
}

func TestDecide_RejectDropsScheduledQuarter(t *testing.T) {
	author := "author-1"
	var decided gateway.DecisionUpdate
	var notif gateway.NotificationInsert
	gw := &stubGateway{
		applyDecisionFn: func(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
			decided = upd
			return nil
		},
		insertNotifFn: func(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error) {
			notif = in
			return &domain.Notification{ID: "n1"}, nil
		},
	}
	s := NewDecisionService(gw)
	st := store.New()
	st.SetIdeas([]domain.Idea{{ID: "i1", AuthorID: &author, Title: "t"}})

	err := s.Decide(context.Background(), st, director(), DecisionInput{
		IdeaID:           "i1",
		Verdict:          domain.VerdictRejected,
		Motivation:       "not now",
		ScheduledQuarter: "Q3 2026", // ignored for rejections
	})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.Status != domain.StatusRejected || decided.ScheduledQuarter != nil {
		t.Fatalf("rejection must not carry a quarter: %+v", decided)
	}
	if notif.Type != domain.NotificationIdeaRejected {
		t.Fatalf("notification type = %s", notif.Type)
	}
}

func TestDecide_NotificationFailureIsAccepted(t *testing.T) {
	author := "author-1"
	gw := &stubGateway{
		applyDecisionFn: func(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
			return nil
		},
		insertNotifFn: func(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error) {
			return nil, errors.New("notification backend down")
		},
	}
	s := NewDecisionService(gw)
	st := store.New()
	st.SetIdeas([]domain.Idea{{ID: "i1", AuthorID: &author, Title: "t"}})

	err := s.Decide(context.Background(), st, director(), DecisionInput{
		IdeaID: "i1", Verdict: domain.VerdictApproved, Motivation: "m",
	})
	if err != nil {
		t.Fatalf("decision must succeed when only the notification fails, got %v", err)
	}
	if idea, _ := st.Idea("i1"); idea.Status != domain.StatusApproved {
		t.Fatalf("cache not patched: %+v", idea)
	}
}

func TestDecide_AnonymousAuthorSkipsNotification(t *testing.T) {
	gw := &stubGateway{
		applyDecisionFn: func(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
			return nil
		},
		// no insertNotifFn: a call would error the stub
	}
	s := NewDecisionService(gw)
	st := store.New()
	st.SetIdeas([]domain.Idea{{ID: "i1", Title: "no author"}})

	err := s.Decide(context.Background(), st, director(), DecisionInput{
		IdeaID: "i1", Verdict: domain.VerdictRejected, Motivation: "m",
	})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
}

func TestDecide_UncachedIdeaIsFetched(t *testing.T) {
	author := "author-1"
	gw := &stubGateway{
		getIdeaFn: func(ctx context.Context, id string) (*domain.Idea, error) {
			return &domain.Idea{ID: id, AuthorID: &author, Title: "fetched"}, nil
		},
		applyDecisionFn: func(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
			return nil
		},
		insertNotifFn: func(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error) {
			if in.UserID != author {
				t.Fatalf("notification for wrong user: %+v", in)
			}
			return &domain.Notification{ID: "n1"}, nil
		},
	}
	s := NewDecisionService(gw)

	err := s.Decide(context.Background(), store.New(), director(), DecisionInput{
		IdeaID: "i1", Verdict: domain.VerdictApproved, Motivation: "m",
	})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
}

func TestDecide_UnknownIdea(t *testing.T) {
	gw := &stubGateway{
		getIdeaFn: func(ctx context.Context, id string) (*domain.Idea, error) {
			return nil, gateway.ErrNotFound
		},
	}
	s := NewDecisionService(gw)
	err := s.Decide(context.Background(), store.New(), director(), DecisionInput{
		IdeaID: "missing", Verdict: domain.VerdictApproved, Motivation: "m",
	})
	if !errors.Is(err, ErrIdeaNotFound) {
		t.Fatalf("expected ErrIdeaNotFound, got %v", err)
	}
}
