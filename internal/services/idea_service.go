// Package services – IdeaService
//
// This file implements idea submission, detail reads and the list views
// rendered from the session cache (home feed with filters and sorting, the
// direction panel's pending ranking, and the approved/rejected screens).
package services

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// SortOrder selects the home-feed ordering.
type SortOrder string

// Supported orderings.
const (
	SortByPriority SortOrder = "priority"
	SortByQuality  SortOrder = "quality"
	SortByRecent   SortOrder = "recent"
)

// IdeaFilters narrows the home feed. Zero values mean "no filter".
type IdeaFilters struct {
	Status   domain.IdeaStatus
	Category string
	SortBy   SortOrder
}

// SubmitInput is the payload for a new idea.
type SubmitInput struct {
	Title       string
	Description string
	CategoryID  *string
	IsAnonymous bool
}

// IdeaService owns idea reads and submission.
type IdeaService struct {
	GW gateway.Gateway

	// TitleMaxRunes caps stored titles by rune length.
	TitleMaxRunes int
}

// NewIdeaService builds an IdeaService with default limits.
func NewIdeaService(gw gateway.Gateway) *IdeaService {
	return &IdeaService{GW: gw, TitleMaxRunes: 255}
}

// Submit inserts a new idea. The stored status is always `submitted`,
// regardless of client input; on success the idea is prepended to the
// session cache so it renders first in the home feed.
func (s *IdeaService) Submit(ctx context.Context, st *store.Store, user *domain.Profile, in SubmitInput) (*domain.Idea, error) {
	title := collapseWhitespace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if s.TitleMaxRunes > 0 && utf8.RuneCountInString(title) > s.TitleMaxRunes {
		title = string([]rune(title)[:s.TitleMaxRunes])
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, ErrEmptyDescription
	}

	authorID := user.ID
	idea, err := s.GW.CreateIdea(ctx, gateway.IdeaInsert{
		AuthorID:    &authorID,
		IsAnonymous: in.IsAnonymous,
		Title:       title,
		Description: desc,
		CategoryID:  in.CategoryID,
		Status:      domain.StatusSubmitted,
	})
	if err != nil {
		return nil, err
	}
	st.AddIdea(*idea)
	return idea, nil
}

// Detail fetches one idea and its comment thread fresh from the backend
// (the detail view does not trust the cached copy for comments).
func (s *IdeaService) Detail(ctx context.Context, id string) (*domain.Idea, []domain.Comment, error) {
	idea, err := s.GW.GetIdea(ctx, id)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, nil, ErrIdeaNotFound
		}
		return nil, nil, err
	}
	comments, err := s.GW.ListComments(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return idea, comments, nil
}

// List renders the home feed from the session cache, filtered and sorted.
func (s *IdeaService) List(st *store.Store, f IdeaFilters) []domain.Idea {
	ideas := st.Ideas()
	out := ideas[:0]
	for _, i := range ideas {
		if f.Status != "" && i.Status != f.Status {
			continue
		}
		if f.Category != "" && (i.CategoryID == nil || *i.CategoryID != f.Category) {
			continue
		}
		out = append(out, i)
	}
	sortIdeas(out, f.SortBy)
	return out
}

// PendingReview returns the top limit ideas awaiting a direction decision,
// ranked by combined quality+priority score descending.
func (s *IdeaService) PendingReview(st *store.Store, limit int) []domain.Idea {
	var out []domain.Idea
	for _, i := range st.Ideas() {
		if i.Status.PendingReview() {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CombinedScore() > out[b].CombinedScore()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ByStatus returns the cached ideas with the given status, preserving the
// newest-first bootstrap order. Backs the approved and rejected screens.
func (s *IdeaService) ByStatus(st *store.Store, status domain.IdeaStatus) []domain.Idea {
	var out []domain.Idea
	for _, i := range st.Ideas() {
		if i.Status == status {
			out = append(out, i)
		}
	}
	return out
}

// Mine returns the cached ideas authored by userID, including anonymous
// ones (the author still sees their own).
func (s *IdeaService) Mine(st *store.Store, userID string) []domain.Idea {
	var out []domain.Idea
	for _, i := range st.Ideas() {
		if i.AuthorID != nil && *i.AuthorID == userID {
			out = append(out, i)
		}
	}
	return out
}

func sortIdeas(ideas []domain.Idea, by SortOrder) {
	switch by {
	case SortByQuality:
		sort.SliceStable(ideas, func(a, b int) bool {
			return ideas[a].QualityScore > ideas[b].QualityScore
		})
	case SortByPriority:
		sort.SliceStable(ideas, func(a, b int) bool {
			return ideas[a].PriorityScore > ideas[b].PriorityScore
		})
	default:
		// recent: bootstrap order is already created_at descending, but
		// locally prepended submissions keep it only approximately, so
		// sort explicitly.
		sort.SliceStable(ideas, func(a, b int) bool {
			return ideas[a].CreatedAt.After(ideas[b].CreatedAt)
		})
	}
}

// collapseWhitespace trims and squeezes runs of whitespace to one space.
func collapseWhitespace(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

var whitespaceRE = regexp.MustCompile(`\s+`)
