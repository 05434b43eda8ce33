// Package domain defines the row models for profiles, ideas, votes,
// comments, notifications, categories and review cycles. These are the
// native row shapes of the data backend; the local backend maps them with
// GORM, and every other layer of the application treats them as transient
// cached copies of server rows.
package domain

import "time"

// IdeaStatus is the lifecycle state of an idea. Transitions in the review
// workflow are one-directional: submitted/organized/under_review move to
// approved or rejected, and approved ideas may later become scheduled or
// completed.
type IdeaStatus string

// Idea lifecycle states.
const (
	StatusDraft       IdeaStatus = "draft"
	StatusSubmitted   IdeaStatus = "submitted"
	StatusOrganized   IdeaStatus = "organized"
	StatusUnderReview IdeaStatus = "under_review"
	StatusApproved    IdeaStatus = "approved"
	StatusRejected    IdeaStatus = "rejected"
	StatusScheduled   IdeaStatus = "scheduled"
	StatusCompleted   IdeaStatus = "completed"
)

// PendingReview reports whether an idea in this status is still waiting
// for a direction decision.
func (s IdeaStatus) PendingReview() bool {
	switch s {
	case StatusSubmitted, StatusOrganized, StatusUnderReview:
		return true
	}
	return false
}

// Notification types emitted as side effects of direction decisions.
const (
	NotificationIdeaApproved = "idea_approved"
	NotificationIdeaRejected = "idea_rejected"
)

// Direction verdicts recorded on a reviewed idea.
const (
	VerdictApproved = "approved"
	VerdictRejected = "rejected"
)

// Profile is the identity row for a signed-in employee. It is created
// lazily on first sign-in when the backend reports no row for the session
// user, and is never deleted by this application.
type Profile struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	Email       string    `json:"email"        gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName    string    `json:"full_name"    gorm:"type:varchar(255);not null"`
	Department  *string   `json:"department,omitempty" gorm:"type:varchar(128)"`
	AvatarURL   *string   `json:"avatar_url,omitempty" gorm:"type:varchar(512)"`
	IsAdmin     bool      `json:"is_admin"     gorm:"not null;default:false"`
	IsDirection bool      `json:"is_direction" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// Category groups ideas for filtering and display.
type Category struct {
	ID          string    `json:"id"   gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(128);not null;uniqueIndex"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Color       string    `json:"color" gorm:"type:varchar(16);not null;default:'#6366f1'"`
	Icon        string    `json:"icon"  gorm:"type:varchar(64);not null;default:'lightbulb'"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// Idea is a submitted proposal. The score and count fields are aggregates
// maintained by the backend over Vote rows; clients only ever read them
// back, never compute them. The direction decision fields are written
// together in a single update when the direction role reviews the idea.
//
// Fields:
//   - AuthorID: nil when the row has no linkable author.
//   - IsAnonymous: hides the author in every view even when AuthorID is set.
//   - AISummary/AITags: produced by an out-of-band pipeline; read-only here.
//   - Author/Category: join associations populated on reads that request
//     them (bootstrap and detail), not part of the row itself.
type Idea struct {
	ID          string     `json:"id"           gorm:"type:char(36);primaryKey"`
	AuthorID    *string    `json:"author_id,omitempty" gorm:"type:char(36);index"`
	IsAnonymous bool       `json:"is_anonymous" gorm:"not null;default:false"`
	Title       string     `json:"title"        gorm:"type:varchar(255);not null"`
	Description string     `json:"description"  gorm:"type:text;not null"`
	CategoryID  *string    `json:"category_id,omitempty" gorm:"type:char(36);index"`
	AISummary   *string    `json:"ai_summary,omitempty" gorm:"type:text"`
	AITags      StringList `json:"ai_tags,omitempty" gorm:"type:text"`

	QualityScore       float64 `json:"quality_score"        gorm:"not null;default:0"`
	PriorityScore      float64 `json:"priority_score"       gorm:"not null;default:0"`
	QualityVotesCount  int     `json:"quality_votes_count"  gorm:"not null;default:0"`
	PriorityVotesCount int     `json:"priority_votes_count" gorm:"not null;default:0"`
	CommentsCount      int     `json:"comments_count"       gorm:"not null;default:0"`

	Status      IdeaStatus `json:"status" gorm:"type:varchar(16);not null;default:'draft';index"`
	ReviewCycle *int       `json:"review_cycle,omitempty"`

	DirectionVerdict    *string    `json:"direction_verdict,omitempty"     gorm:"type:varchar(16)"`
	DirectionMotivation *string    `json:"direction_motivation,omitempty"  gorm:"type:text"`
	DirectionReviewedBy *string    `json:"direction_reviewed_by,omitempty" gorm:"type:char(36)"`
	DirectionReviewedAt *time.Time `json:"direction_reviewed_at,omitempty"`
	ScheduledQuarter    *string    `json:"scheduled_quarter,omitempty"     gorm:"type:varchar(16)"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Author   *Profile  `json:"author,omitempty"   gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the database table name for Idea.
func (Idea) TableName() string { return "ideas" }

// CombinedScore is the ranking key used by the direction panel.
func (i Idea) CombinedScore() float64 { return i.QualityScore + i.PriorityScore }

// IdeaAggregates is the slice of an Idea row that the backend recomputes
// after each vote write. Clients refetch it and patch their cached idea
// instead of computing new averages locally.
type IdeaAggregates struct {
	QualityScore       float64 `json:"quality_score"`
	PriorityScore      float64 `json:"priority_score"`
	QualityVotesCount  int     `json:"quality_votes_count"`
	PriorityVotesCount int     `json:"priority_votes_count"`
}

// Vote is a user's star rating on an idea, at most one row per
// (idea, user) pair, enforced by the backend. Either rating axis may be
// unset until the user votes on it; updating one axis must not clear the
// other.
type Vote struct {
	ID             string    `json:"id"      gorm:"type:char(36);primaryKey"`
	IdeaID         string    `json:"idea_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_votes_idea_user"`
	UserID         string    `json:"user_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_votes_idea_user"`
	QualityRating  *int      `json:"quality_rating,omitempty"  gorm:"check:quality_rating BETWEEN 1 AND 5"`
	PriorityRating *int      `json:"priority_rating,omitempty" gorm:"check:priority_rating BETWEEN 1 AND 5"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for Vote.
func (Vote) TableName() string { return "votes" }

// Comment is an append-only remark on an idea. IsDirectionReply marks
// replies written by the direction role so views can highlight them.
type Comment struct {
	ID               string    `json:"id"      gorm:"type:char(36);primaryKey"`
	IdeaID           string    `json:"idea_id" gorm:"type:char(36);not null;index"`
	AuthorID         *string   `json:"author_id,omitempty" gorm:"type:char(36)"`
	IsAnonymous      bool      `json:"is_anonymous" gorm:"not null;default:false"`
	Content          string    `json:"content" gorm:"type:text;not null"`
	IsDirectionReply bool      `json:"is_direction_reply" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at"`

	Author *Profile `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// Notification is a per-user message created server-side (direction
// decisions produce one for the idea's author). Only is_read is ever
// mutated by the client.
type Notification struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:char(36);not null;index"`
	Type      string    `json:"type"    gorm:"type:varchar(32);not null"`
	Title     string    `json:"title"   gorm:"type:varchar(255);not null"`
	Message   *string   `json:"message,omitempty" gorm:"type:text"`
	IdeaID    *string   `json:"idea_id,omitempty" gorm:"type:char(36)"`
	IsRead    bool      `json:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Notification.
func (Notification) TableName() string { return "notifications" }

// ReviewCycle is a named evaluation period. Read-only from the client; the
// home view derives a "days until review" countdown from ReviewDate.
type ReviewCycle struct {
	ID          int       `json:"id"           gorm:"primaryKey;autoIncrement"`
	CycleNumber int       `json:"cycle_number" gorm:"not null;uniqueIndex"`
	StartDate   time.Time `json:"start_date"   gorm:"not null"`
	EndDate     time.Time `json:"end_date"     gorm:"not null"`
	ReviewDate  time.Time `json:"review_date"  gorm:"not null"`
	Status      string    `json:"status"       gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for ReviewCycle.
func (ReviewCycle) TableName() string { return "review_cycles" }

// DaysUntilReview returns the whole days between now and the cycle's
// review date, never negative.
func (rc ReviewCycle) DaysUntilReview(now time.Time) int {
	d := int(rc.ReviewDate.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
