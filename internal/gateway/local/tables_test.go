package local

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
)

// newTestDB opens a throwaway in-memory database with the full schema.
// cache=shared keeps the data alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	return New(newTestDB(t))
}

func mustProfile(t *testing.T, b *Backend, email, name string) *domain.Profile {
	t.Helper()
	p, err := b.CreateProfile(context.Background(), gateway.ProfileInsert{
		ID:       uuid.NewString(),
		Email:    email,
		FullName: name,
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}

func mustIdea(t *testing.T, b *Backend, authorID string, title string) *domain.Idea {
	t.Helper()
	i, err := b.CreateIdea(context.Background(), gateway.IdeaInsert{
		AuthorID:    &authorID,
		Title:       title,
		Description: "a description",
		Status:      domain.StatusSubmitted,
	})
	if err != nil {
		t.Fatalf("create idea: %v", err)
	}
	return i
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	if err := Seed(db, now); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(db, now); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var cats int64
	if err := db.Model(&domain.Category{}).Count(&cats).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if cats != 4 {
		t.Fatalf("categories = %d, want 4", cats)
	}
	var cycles int64
	if err := db.Model(&domain.ReviewCycle{}).Count(&cycles).Error; err != nil {
		t.Fatalf("count cycles: %v", err)
	}
	if cycles != 1 {
		t.Fatalf("cycles = %d, want 1", cycles)
	}
}

func TestProfiles_CreateGetUpdate(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	if _, err := b.GetProfile(ctx, uuid.NewString()); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p := mustProfile(t, b, "dana@example.com", "Dana")
	got, err := b.GetProfile(ctx, p.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Email != "dana@example.com" || got.FullName != "Dana" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	name := "Dana R."
	dept := "Engineering"
	upd, err := b.UpdateProfile(ctx, p.ID, gateway.ProfileUpdate{FullName: &name, Department: &dept})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if upd.FullName != "Dana R." || upd.Department == nil || *upd.Department != "Engineering" {
		t.Fatalf("update not applied: %+v", upd)
	}

	if _, err := b.UpdateProfile(ctx, uuid.NewString(), gateway.ProfileUpdate{FullName: &name}); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestListIdeas_ExcludesDrafts_NewestFirst(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	author := mustProfile(t, b, "a@example.com", "A")

	// Advance the clock between inserts so created_at ordering is stable.
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	tick := 0
	b.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }

	older := mustIdea(t, b, author.ID, "older")
	newer := mustIdea(t, b, author.ID, "newer")

	// A draft row never surfaces in the shared list.
	draft := domain.Idea{
		ID: uuid.NewString(), AuthorID: &author.ID,
		Title: "hidden", Description: "d", Status: domain.StatusDraft,
	}
	if err := b.db.Create(&draft).Error; err != nil {
		t.Fatalf("insert draft: %v", err)
	}

	out, err := b.ListIdeas(ctx)
	if err != nil {
		t.Fatalf("list ideas: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (draft excluded)", len(out))
	}
	if out[0].ID != newer.ID || out[1].ID != older.ID {
		t.Fatalf("order wrong: got %s then %s", out[0].Title, out[1].Title)
	}
	if out[0].Author == nil || out[0].Author.FullName != "A" {
		t.Fatalf("author not preloaded: %+v", out[0].Author)
	}
}

func TestVotes_AggregatesAndDuplicates(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	author := mustProfile(t, b, "a@example.com", "A")
	u1 := mustProfile(t, b, "u1@example.com", "U1")
	u2 := mustProfile(t, b, "u2@example.com", "U2")
	idea := mustIdea(t, b, author.ID, "rate me")

	four, two := 4, 2
	v1, err := b.InsertVote(ctx, gateway.VoteInsert{IdeaID: idea.ID, UserID: u1.ID, QualityRating: &four})
	if err != nil {
		t.Fatalf("insert vote 1: %v", err)
	}
	if _, err := b.InsertVote(ctx, gateway.VoteInsert{IdeaID: idea.ID, UserID: u2.ID, QualityRating: &two}); err != nil {
		t.Fatalf("insert vote 2: %v", err)
	}

	agg, err := b.GetIdeaAggregates(ctx, idea.ID)
	if err != nil {
		t.Fatalf("get aggregates: %v", err)
	}
	if agg.QualityScore != 3.0 || agg.QualityVotesCount != 2 {
		t.Fatalf("quality agg = %.2f/%d, want 3.00/2", agg.QualityScore, agg.QualityVotesCount)
	}
	if agg.PriorityScore != 0 || agg.PriorityVotesCount != 0 {
		t.Fatalf("priority agg should be empty: %+v", agg)
	}

	// One vote row per (idea, user).
	if _, err := b.InsertVote(ctx, gateway.VoteInsert{IdeaID: idea.ID, UserID: u1.ID, QualityRating: &two}); !errors.Is(err, gateway.ErrDuplicateVote) {
		t.Fatalf("expected ErrDuplicateVote, got %v", err)
	}

	// Updating the priority axis must not clear quality.
	five := 5
	upd, err := b.UpdateVoteRating(ctx, v1.ID, gateway.VoteRatingUpdate{PriorityRating: &five})
	if err != nil {
		t.Fatalf("update vote: %v", err)
	}
	if upd.QualityRating == nil || *upd.QualityRating != 4 {
		t.Fatalf("quality rating lost: %+v", upd)
	}
	if upd.PriorityRating == nil || *upd.PriorityRating != 5 {
		t.Fatalf("priority rating not set: %+v", upd)
	}

	agg, err = b.GetIdeaAggregates(ctx, idea.ID)
	if err != nil {
		t.Fatalf("get aggregates after update: %v", err)
	}
	if agg.PriorityScore != 5.0 || agg.PriorityVotesCount != 1 {
		t.Fatalf("priority agg = %.2f/%d, want 5.00/1", agg.PriorityScore, agg.PriorityVotesCount)
	}
	if agg.QualityScore != 3.0 || agg.QualityVotesCount != 2 {
		t.Fatalf("quality agg changed: %+v", agg)
	}

	if _, err := b.UpdateVoteRating(ctx, uuid.NewString(), gateway.VoteRatingUpdate{QualityRating: &five}); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown vote, got %v", err)
	}

	votes, err := b.ListVotesByUser(ctx, u1.ID)
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 1 || votes[0].IdeaID != idea.ID {
		t.Fatalf("unexpected votes: %+v", votes)
	}
}

func TestInsertComment_BumpsCount(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	author := mustProfile(t, b, "a@example.com", "A")
	idea := mustIdea(t, b, author.ID, "discuss")

	c, err := b.InsertComment(ctx, gateway.CommentInsert{
		IdeaID:   idea.ID,
		AuthorID: &author.ID,
		Content:  "first",
	})
	if err != nil {
		t.Fatalf("insert comment: %v", err)
	}
	if c.Author == nil || c.Author.ID != author.ID {
		t.Fatalf("comment author not joined: %+v", c)
	}
	if _, err := b.InsertComment(ctx, gateway.CommentInsert{IdeaID: idea.ID, Content: "anon", IsAnonymous: true}); err != nil {
		t.Fatalf("insert anonymous comment: %v", err)
	}

	got, err := b.GetIdea(ctx, idea.ID)
	if err != nil {
		t.Fatalf("get idea: %v", err)
	}
	if got.CommentsCount != 2 {
		t.Fatalf("comments_count = %d, want 2", got.CommentsCount)
	}

	list, err := b.ListComments(ctx, idea.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(list) != 2 || list[0].Content != "first" {
		t.Fatalf("unexpected comments: %+v", list)
	}
}

func TestApplyDecision(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	author := mustProfile(t, b, "a@example.com", "A")
	director := mustProfile(t, b, "dir@example.com", "Dir")
	idea := mustIdea(t, b, author.ID, "decide me")

	quarter := "Q2 2026"
	cycle := 1
	when := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	err := b.ApplyDecision(ctx, idea.ID, gateway.DecisionUpdate{
		Status:              domain.StatusApproved,
		DirectionVerdict:    domain.VerdictApproved,
		DirectionMotivation: "clear value",
		DirectionReviewedBy: director.ID,
		DirectionReviewedAt: when,
		ScheduledQuarter:    &quarter,
		ReviewCycle:         &cycle,
	})
	if err != nil {
		t.Fatalf("apply decision: %v", err)
	}

	got, err := b.GetIdea(ctx, idea.ID)
	if err != nil {
		t.Fatalf("get idea: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("status = %s", got.Status)
	}
	if got.DirectionVerdict == nil || *got.DirectionVerdict != domain.VerdictApproved {
		t.Fatalf("verdict missing: %+v", got)
	}
	if got.DirectionMotivation == nil || *got.DirectionMotivation != "clear value" {
		t.Fatalf("motivation missing: %+v", got)
	}
	if got.ScheduledQuarter == nil || *got.ScheduledQuarter != quarter {
		t.Fatalf("scheduled quarter missing: %+v", got)
	}

	if err := b.ApplyDecision(ctx, uuid.NewString(), gateway.DecisionUpdate{Status: domain.StatusRejected}); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNotifications_ListMarkRead(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	u := mustProfile(t, b, "u@example.com", "U")
	other := mustProfile(t, b, "o@example.com", "O")

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	b.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }

	n1, err := b.InsertNotification(ctx, gateway.NotificationInsert{
		UserID: u.ID, Type: domain.NotificationIdeaApproved, Title: "approved",
	})
	if err != nil {
		t.Fatalf("insert notification: %v", err)
	}
	if _, err := b.InsertNotification(ctx, gateway.NotificationInsert{
		UserID: u.ID, Type: domain.NotificationIdeaRejected, Title: "rejected",
	}); err != nil {
		t.Fatalf("insert notification 2: %v", err)
	}

	list, err := b.ListNotifications(ctx, u.ID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Title != "rejected" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	if got, err := b.ListNotifications(ctx, u.ID, 1); err != nil || len(got) != 1 {
		t.Fatalf("limit not applied: %v %d", err, len(got))
	}

	// Ownership enforced: another user cannot mark it read.
	if err := b.MarkNotificationRead(ctx, n1.ID, other.ID); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
	if err := b.MarkNotificationRead(ctx, n1.ID, u.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := b.MarkAllNotificationsRead(ctx, u.ID); err != nil {
		t.Fatalf("mark all read: %v", err)
	}

	list, _ = b.ListNotifications(ctx, u.ID, 10)
	for _, n := range list {
		if !n.IsRead {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
}

func TestLatestReviewCycle(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	if _, err := b.LatestReviewCycle(ctx); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty table, got %v", err)
	}

	now := time.Now().UTC()
	if err := Seed(b.db, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	second := domain.ReviewCycle{
		CycleNumber: 2,
		StartDate:   now, EndDate: now.AddDate(0, 3, 0), ReviewDate: now.AddDate(0, 3, -7),
		Status: "active", CreatedAt: now,
	}
	if err := b.db.Create(&second).Error; err != nil {
		t.Fatalf("insert cycle: %v", err)
	}

	rc, err := b.LatestReviewCycle(ctx)
	if err != nil {
		t.Fatalf("latest cycle: %v", err)
	}
	if rc.CycleNumber != 2 {
		t.Fatalf("cycle_number = %d, want 2", rc.CycleNumber)
	}
}

func TestListCategories_OrderedByName(t *testing.T) {
	b := newTestBackend(t)
	if err := Seed(b.db, time.Now().UTC()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cats, err := b.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 4 {
		t.Fatalf("len = %d, want 4", len(cats))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1].Name > cats[i].Name {
			t.Fatalf("categories not sorted: %s before %s", cats[i-1].Name, cats[i].Name)
		}
	}
}
