package store

import (
	"testing"
	"time"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
)

func idea(id string) domain.Idea {
	return domain.Idea{
		ID:          id,
		Title:       "idea " + id,
		Description: "desc " + id,
		Status:      domain.StatusSubmitted,
	}
}

func TestAddIdea_Prepends(t *testing.T) {
	s := New()
	s.SetIdeas([]domain.Idea{idea("a"), idea("b")})

	s.AddIdea(idea("c"))

	got := s.Ideas()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("order = %s,%s,%s; want c,a,b", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestUpdateIdea_MergePatch(t *testing.T) {
	s := New()
	base := idea("a")
	base.QualityScore = 3.5
	base.PriorityScore = 2.0
	base.CommentsCount = 4
	s.SetIdeas([]domain.Idea{base, idea("b")})

	q := 4.25
	qc := 9
	s.UpdateIdea("a", IdeaPatch{QualityScore: &q, QualityVotesCount: &qc})

	got, found := s.Idea("a")
	if !found {
		t.Fatalf("idea a missing")
	}
	if got.QualityScore != 4.25 || got.QualityVotesCount != 9 {
		t.Fatalf("patched fields not applied: %+v", got)
	}
	// Unset fields keep cached values.
	if got.PriorityScore != 2.0 || got.CommentsCount != 4 {
		t.Fatalf("unset fields clobbered: %+v", got)
	}
	// Other ideas untouched.
	other, _ := s.Idea("b")
	if other.QualityScore != 0 {
		t.Fatalf("idea b modified: %+v", other)
	}
}

func TestUpdateIdea_UnknownID_NoOp(t *testing.T) {
	s := New()
	s.SetIdeas([]domain.Idea{idea("a")})
	n := 7
	s.UpdateIdea("nope", IdeaPatch{CommentsCount: &n})
	got, _ := s.Idea("a")
	if got.CommentsCount != 0 {
		t.Fatalf("no-op patch leaked: %+v", got)
	}
}

func TestUpdateIdea_DecisionFields(t *testing.T) {
	s := New()
	s.SetIdeas([]domain.Idea{idea("a")})

	status := domain.StatusApproved
	verdict := domain.VerdictApproved
	motivation := "solid plan"
	reviewer := "dir-1"
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	quarter := "Q2 2026"
	cycle := 3
	s.UpdateIdea("a", IdeaPatch{
		Status:              &status,
		DirectionVerdict:    &verdict,
		DirectionMotivation: &motivation,
		DirectionReviewedBy: &reviewer,
		DirectionReviewedAt: &at,
		ScheduledQuarter:    &quarter,
		ReviewCycle:         &cycle,
	})

	got, _ := s.Idea("a")
	if got.Status != domain.StatusApproved {
		t.Fatalf("status = %s", got.Status)
	}
	if got.DirectionVerdict == nil || *got.DirectionVerdict != verdict {
		t.Fatalf("verdict not set: %+v", got)
	}
	if got.DirectionReviewedAt == nil || !got.DirectionReviewedAt.Equal(at) {
		t.Fatalf("reviewed_at not set: %+v", got)
	}
	if got.ScheduledQuarter == nil || *got.ScheduledQuarter != quarter {
		t.Fatalf("scheduled_quarter not set: %+v", got)
	}
	if got.ReviewCycle == nil || *got.ReviewCycle != 3 {
		t.Fatalf("review_cycle not set: %+v", got)
	}
}

func TestNotifications_UnreadCounting(t *testing.T) {
	s := New()
	s.SetNotifications([]domain.Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: true},
		{ID: "n3", IsRead: false},
	})
	if s.UnreadCount() != 2 {
		t.Fatalf("unread = %d, want 2", s.UnreadCount())
	}

	// Marking a read notification again must not change the count.
	s.MarkAsRead("n2")
	if s.UnreadCount() != 2 {
		t.Fatalf("unread after re-read = %d, want 2", s.UnreadCount())
	}

	s.MarkAsRead("n1")
	if s.UnreadCount() != 1 {
		t.Fatalf("unread = %d, want 1", s.UnreadCount())
	}
	// Idempotent: marking the same one twice.
	s.MarkAsRead("n1")
	if s.UnreadCount() != 1 {
		t.Fatalf("unread after duplicate mark = %d, want 1", s.UnreadCount())
	}

	s.MarkAllAsRead()
	if s.UnreadCount() != 0 {
		t.Fatalf("unread after mark-all = %d, want 0", s.UnreadCount())
	}
	for _, n := range s.Notifications() {
		if !n.IsRead {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
}

func TestAddNotification_PrependsAndBumpsUnread(t *testing.T) {
	s := New()
	s.SetNotifications([]domain.Notification{{ID: "n1", IsRead: true}})

	s.AddNotification(domain.Notification{ID: "n2", IsRead: false})

	got := s.Notifications()
	if got[0].ID != "n2" {
		t.Fatalf("expected prepend, got %s first", got[0].ID)
	}
	if s.UnreadCount() != 1 {
		t.Fatalf("unread = %d, want 1", s.UnreadCount())
	}
}

func TestVotes_UpsertAndLookup(t *testing.T) {
	s := New()
	one := 1
	s.SetUserVotes([]domain.Vote{
		{ID: "v1", IdeaID: "a", QualityRating: &one},
	})

	if _, found := s.VoteFor("missing"); found {
		t.Fatalf("unexpected vote for missing idea")
	}
	v, found := s.VoteFor("a")
	if !found || v.ID != "v1" {
		t.Fatalf("vote lookup failed: %+v found=%v", v, found)
	}

	five := 5
	s.SetVote("a", domain.Vote{ID: "v1", IdeaID: "a", QualityRating: &one, PriorityRating: &five})
	v, _ = s.VoteFor("a")
	if v.PriorityRating == nil || *v.PriorityRating != 5 {
		t.Fatalf("upsert lost priority rating: %+v", v)
	}
	if v.QualityRating == nil || *v.QualityRating != 1 {
		t.Fatalf("upsert lost quality rating: %+v", v)
	}
}

func TestClear_DropsUserOwnedStateOnly(t *testing.T) {
	s := New()
	s.SetUser(&domain.Profile{ID: "u1", Email: "u1@example.com"})
	s.SetIdeas([]domain.Idea{idea("a")})
	s.SetCategories([]domain.Category{{ID: "c1", Name: "Process"}})
	s.SetNotifications([]domain.Notification{{ID: "n1"}})
	s.SetUserVotes([]domain.Vote{{ID: "v1", IdeaID: "a"}})
	s.SetCurrentCycle(&domain.ReviewCycle{CycleNumber: 2})

	s.Clear()

	if s.User() != nil {
		t.Fatalf("user not cleared")
	}
	if len(s.Ideas()) != 0 {
		t.Fatalf("ideas not cleared")
	}
	if len(s.Notifications()) != 0 || s.UnreadCount() != 0 {
		t.Fatalf("notifications not cleared")
	}
	if len(s.UserVotes()) != 0 {
		t.Fatalf("votes not cleared")
	}
	// Non user-scoped state survives.
	if len(s.Categories()) != 1 {
		t.Fatalf("categories should survive sign-out")
	}
	if s.CurrentCycle() == nil || s.CurrentCycle().CycleNumber != 2 {
		t.Fatalf("review cycle should survive sign-out")
	}
}

func TestUserCopySemantics(t *testing.T) {
	s := New()
	p := &domain.Profile{ID: "u1", FullName: "Dana"}
	s.SetUser(p)
	p.FullName = "changed outside"

	got := s.User()
	if got.FullName != "Dana" {
		t.Fatalf("store aliased caller memory: %q", got.FullName)
	}
	got.FullName = "changed on copy"
	if s.User().FullName != "Dana" {
		t.Fatalf("returned copy aliased store memory")
	}
}
