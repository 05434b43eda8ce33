// Package store implements the per-session cache of the signed-in user's
// view of the world: profile, ideas, categories, votes, notifications and
// the current review cycle. It exposes an enumerated, total set of mutator
// operations; no ad hoc field writes happen anywhere else. No network
// calls originate here.
//
// All operations are synchronous, idempotent under repeated identical
// input, and free of side effects beyond the in-memory state. There is no
// eviction: the cache lives for the lifetime of the session and the
// user-owned slices are cleared on sign-out.
package store

import (
	"sync"
	"time"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
)

// IdeaPatch is a merge-patch applied to a single cached idea. Nil fields
// are left untouched; everything views ever patch locally (aggregate
// refetch results, optimistic comment counts, decision columns) is
// representable here.
type IdeaPatch struct {
	QualityScore       *float64
	PriorityScore      *float64
	QualityVotesCount  *int
	PriorityVotesCount *int
	CommentsCount      *int

	Status              *domain.IdeaStatus
	ReviewCycle         *int
	DirectionVerdict    *string
	DirectionMotivation *string
	DirectionReviewedBy *string
	DirectionReviewedAt *time.Time
	ScheduledQuarter    *string
}

// Store is the session cache. Safe for concurrent use; every mutation is a
// last-write-wins merge keyed by entity id.
type Store struct {
	mu sync.RWMutex

	user          *domain.Profile
	ideas         []domain.Idea
	categories    []domain.Category
	notifications []domain.Notification
	unread        int
	userVotes     map[string]domain.Vote
	currentCycle  *domain.ReviewCycle
}

// New returns an empty Store.
func New() *Store {
	return &Store{userVotes: make(map[string]domain.Vote)}
}

//
// User
//

// SetUser replaces the cached profile. Pass nil to clear it.
func (s *Store) SetUser(p *domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.user = nil
		return
	}
	cp := *p
	s.user = &cp
}

// User returns a copy of the cached profile, or nil when signed out.
func (s *Store) User() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

//
// Ideas
//

// SetIdeas replaces the cached idea list.
func (s *Store) SetIdeas(ideas []domain.Idea) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ideas = append([]domain.Idea(nil), ideas...)
}

// AddIdea prepends a freshly submitted idea so it shows first in the home
// list.
func (s *Store) AddIdea(idea domain.Idea) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ideas = append([]domain.Idea{idea}, s.ideas...)
}

// UpdateIdea merge-patches the idea with the given id. Ideas with other
// ids are untouched; unset patch fields keep their cached values. Patching
// an id that is not cached is a no-op.
func (s *Store) UpdateIdea(id string, patch IdeaPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ideas {
		if s.ideas[i].ID != id {
			continue
		}
		applyIdeaPatch(&s.ideas[i], patch)
		return
	}
}

// Ideas returns a copy of the cached idea list.
func (s *Store) Ideas() []domain.Idea {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Idea(nil), s.ideas...)
}

// Idea returns the cached idea with the given id.
func (s *Store) Idea(id string) (domain.Idea, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.ideas {
		if s.ideas[i].ID == id {
			return s.ideas[i], true
		}
	}
	return domain.Idea{}, false
}

func applyIdeaPatch(idea *domain.Idea, p IdeaPatch) {
	if p.QualityScore != nil {
		idea.QualityScore = *p.QualityScore
	}
	if p.PriorityScore != nil {
		idea.PriorityScore = *p.PriorityScore
	}
	if p.QualityVotesCount != nil {
		idea.QualityVotesCount = *p.QualityVotesCount
	}
	if p.PriorityVotesCount != nil {
		idea.PriorityVotesCount = *p.PriorityVotesCount
	}
	if p.CommentsCount != nil {
		idea.CommentsCount = *p.CommentsCount
	}
	if p.Status != nil {
		idea.Status = *p.Status
	}
	if p.ReviewCycle != nil {
		idea.ReviewCycle = p.ReviewCycle
	}
	if p.DirectionVerdict != nil {
		idea.DirectionVerdict = p.DirectionVerdict
	}
	if p.DirectionMotivation != nil {
		idea.DirectionMotivation = p.DirectionMotivation
	}
	if p.DirectionReviewedBy != nil {
		idea.DirectionReviewedBy = p.DirectionReviewedBy
	}
	if p.DirectionReviewedAt != nil {
		idea.DirectionReviewedAt = p.DirectionReviewedAt
	}
	if p.ScheduledQuarter != nil {
		idea.ScheduledQuarter = p.ScheduledQuarter
	}
}

//
// Categories
//

// SetCategories replaces the cached category list.
func (s *Store) SetCategories(cats []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]domain.Category(nil), cats...)
}

// Categories returns a copy of the cached category list.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...)
}

//
// Notifications
//

// SetNotifications replaces the cached notification list and recomputes
// the unread count.
func (s *Store) SetNotifications(ns []domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]domain.Notification(nil), ns...)
	unread := 0
	for i := range s.notifications {
		if !s.notifications[i].IsRead {
			unread++
		}
	}
	s.unread = unread
}

// AddNotification prepends a notification, bumping the unread count when
// it is unread.
func (s *Store) AddNotification(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]domain.Notification{n}, s.notifications...)
	if !n.IsRead {
		s.unread++
	}
}

// MarkAsRead flips is_read on the cached notification with the given id.
func (s *Store) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}
		if !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			if s.unread > 0 {
				s.unread--
			}
		}
		return
	}
}

// MarkAllAsRead flips is_read on every cached notification and zeroes the
// unread count.
func (s *Store) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
	s.unread = 0
}

// Notifications returns a copy of the cached notification list.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// UnreadCount returns the number of cached unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

//
// Votes
//

// SetUserVotes rebuilds the idea_id→vote mapping from a list. The mapping
// assumes single-user single-session access: one vote per idea.
func (s *Store) SetUserVotes(votes []domain.Vote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := make(map[string]domain.Vote, len(votes))
	for _, v := range votes {
		m[v.IdeaID] = v
	}
	s.userVotes = m
}

// SetVote upserts the cached vote for one idea, leaving all other entries
// unchanged.
func (s *Store) SetVote(ideaID string, v domain.Vote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userVotes[ideaID] = v
}

// VoteFor returns the cached vote for an idea, if any.
func (s *Store) VoteFor(ideaID string) (domain.Vote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.userVotes[ideaID]
	return v, ok
}

// UserVotes returns a copy of the idea_id→vote mapping.
func (s *Store) UserVotes() map[string]domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := make(map[string]domain.Vote, len(s.userVotes))
	for k, v := range s.userVotes {
		m[k] = v
	}
	return m
}

//
// Review cycle
//

// SetCurrentCycle replaces the cached review cycle. Pass nil to clear it.
func (s *Store) SetCurrentCycle(rc *domain.ReviewCycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rc == nil {
		s.currentCycle = nil
		return
	}
	cp := *rc
	s.currentCycle = &cp
}

// CurrentCycle returns a copy of the cached review cycle, or nil.
func (s *Store) CurrentCycle() *domain.ReviewCycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentCycle == nil {
		return nil
	}
	cp := *s.currentCycle
	return &cp
}

//
// Lifecycle
//

// Clear drops the user-owned state on sign-out: profile, ideas, votes and
// notifications. Categories and the review cycle are not user-scoped and
// survive until the next bootstrap overwrites them.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.ideas = nil
	s.userVotes = make(map[string]domain.Vote)
	s.notifications = nil
	s.unread = 0
}
