// Package services – DecisionService
//
// This file implements the direction panel's decision flow. A decision is
// two independent writes: the atomic idea update (status, verdict,
// motivation, reviewer, timestamp, scheduled quarter for approvals) and a
// follow-up notification insert addressed to the idea's author. The two
// are deliberately not transactional: when the notification insert fails
// after the idea update succeeded, the failure is logged and accepted —
// the status change, which is the primary write, is already durable.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// DecisionInput is a direction verdict on one idea.
type DecisionInput struct {
	IdeaID           string
	Verdict          string // approved | rejected
	Motivation       string
	ScheduledQuarter string // only meaningful for approvals, e.g. "Q2 2025"
}

// DecisionService applies direction decisions. Role checks here are the
// UX gate; the backend's row policies are the security boundary.
type DecisionService struct {
	GW gateway.Gateway

	// Now is the clock used for the review timestamp; defaults to
	// time.Now when nil.
	Now func() time.Time
}

// NewDecisionService builds a DecisionService over the given backend
// handle.
func NewDecisionService(gw gateway.Gateway) *DecisionService {
	return &DecisionService{GW: gw}
}

// Decide records the verdict on an idea, patches the session cache, and
// then notifies the idea's author best-effort.
//
// Validation happens before any request is issued: the caller must hold
// the direction role, the motivation must be non-empty, and the verdict
// must be approved or rejected. The scheduled quarter is persisted only on
// approvals.
func (s *DecisionService) Decide(ctx context.Context, st *store.Store, user *domain.Profile, in DecisionInput) error {
	tr := otel.Tracer("services/DecisionService")
	ctx, span := tr.Start(ctx, "Decide",
		trace.WithAttributes(
			attribute.String("idea.id", in.IdeaID),
			attribute.String("decision.verdict", in.Verdict),
		),
	)
	defer span.End()

	if user == nil || !user.IsDirection {
		return ErrNotDirection
	}
	motivation := strings.TrimSpace(in.Motivation)
	if motivation == "" {
		return ErrEmptyMotivation
	}

	var status domain.IdeaStatus
	switch in.Verdict {
	case domain.VerdictApproved:
		status = domain.StatusApproved
	case domain.VerdictRejected:
		status = domain.StatusRejected
	default:
		return ErrInvalidVerdict
	}

	idea, ok := st.Idea(in.IdeaID)
	if !ok {
		fetched, err := s.GW.GetIdea(ctx, in.IdeaID)
		if err != nil {
			return ErrIdeaNotFound
		}
		idea = *fetched
	}

	now := s.now()
	upd := gateway.DecisionUpdate{
		Status:              status,
		DirectionVerdict:    in.Verdict,
		DirectionMotivation: motivation,
		DirectionReviewedBy: user.ID,
		DirectionReviewedAt: now,
	}
	if status == domain.StatusApproved {
		if q := strings.TrimSpace(in.ScheduledQuarter); q != "" {
			upd.ScheduledQuarter = &q
		}
	}
	if rc := st.CurrentCycle(); rc != nil {
		n := rc.CycleNumber
		upd.ReviewCycle = &n
	}

	if err := s.GW.ApplyDecision(ctx, in.IdeaID, upd); err != nil {
		return err
	}

	reviewedAt := now
	st.UpdateIdea(in.IdeaID, store.IdeaPatch{
		Status:              &status,
		DirectionVerdict:    &upd.DirectionVerdict,
		DirectionMotivation: &upd.DirectionMotivation,
		DirectionReviewedBy: &upd.DirectionReviewedBy,
		DirectionReviewedAt: &reviewedAt,
		ScheduledQuarter:    upd.ScheduledQuarter,
		ReviewCycle:         upd.ReviewCycle,
	})

	// Second, non-transactional step: tell the author. A failure here
	// leaves the idea decided without a notification, which is accepted.
	if idea.AuthorID != nil {
		title, message := decisionNotification(status, idea.Title)
		_, err := s.GW.InsertNotification(ctx, gateway.NotificationInsert{
			UserID:  *idea.AuthorID,
			Type:    notificationType(status),
			Title:   title,
			Message: &message,
			IdeaID:  &in.IdeaID,
		})
		if err != nil {
			log.Warn().Err(err).
				Str("idea_id", in.IdeaID).
				Str("author_id", *idea.AuthorID).
				Msg("decision recorded but author notification failed")
		}
	}
	return nil
}

func (s *DecisionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func notificationType(status domain.IdeaStatus) string {
	if status == domain.StatusApproved {
		return domain.NotificationIdeaApproved
	}
	return domain.NotificationIdeaRejected
}

func decisionNotification(status domain.IdeaStatus, ideaTitle string) (title, message string) {
	if status == domain.StatusApproved {
		return "🎉 Your idea was approved!",
			fmt.Sprintf("%q was approved by the direction!", ideaTitle)
	}
	return "📋 An update on your idea",
		fmt.Sprintf("%q was not approved this time. Read the motivation.", ideaTitle)
}
