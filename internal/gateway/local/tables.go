package local

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
)

// mapNotFound converts GORM's sentinel into the gateway one.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gateway.ErrNotFound
	}
	return err
}

// isBusy reports whether err is transient SQLite write contention worth
// retrying.
func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}

// isDuplicate detects unique-constraint violations across drivers.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// retryBusy runs op, retrying with exponential backoff while SQLite
// reports write contention. Non-busy errors abort immediately.
func retryBusy(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxElapsedTime = 2 * time.Second
	return backoff.Retry(func() error {
		err := op()
		if err != nil && !isBusy(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

//
// Profiles
//

// GetProfile fetches a profile row by id.
func (b *Backend) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	if err := b.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

// CreateProfile inserts the lazy-creation row for a first sign-in.
func (b *Backend) CreateProfile(ctx context.Context, in gateway.ProfileInsert) (*domain.Profile, error) {
	now := b.now().UTC()
	p := &domain.Profile{
		ID:        in.ID,
		Email:     in.Email,
		FullName:  in.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := b.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile applies the profile-edit columns and returns the fresh row.
func (b *Backend) UpdateProfile(ctx context.Context, id string, upd gateway.ProfileUpdate) (*domain.Profile, error) {
	cols := map[string]any{"updated_at": b.now().UTC()}
	if upd.FullName != nil {
		cols["full_name"] = *upd.FullName
	}
	if upd.Department != nil {
		cols["department"] = *upd.Department
	}
	res := b.db.WithContext(ctx).Model(&domain.Profile{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gateway.ErrNotFound
	}
	return b.GetProfile(ctx, id)
}

//
// Categories
//

// ListCategories returns all categories ordered by name.
func (b *Backend) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := b.db.WithContext(ctx).Order("name asc").Find(&out).Error
	return out, err
}

//
// Ideas
//

// ListIdeas returns all non-draft ideas joined with author and category,
// newest first.
func (b *Backend) ListIdeas(ctx context.Context) ([]domain.Idea, error) {
	var out []domain.Idea
	err := b.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("status <> ?", domain.StatusDraft).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetIdea fetches a single idea joined with author and category.
func (b *Backend) GetIdea(ctx context.Context, id string) (*domain.Idea, error) {
	var i domain.Idea
	err := b.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		First(&i, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &i, nil
}

// GetIdeaAggregates reads back the server-maintained score columns.
func (b *Backend) GetIdeaAggregates(ctx context.Context, id string) (*domain.IdeaAggregates, error) {
	var agg domain.IdeaAggregates
	err := b.db.WithContext(ctx).
		Model(&domain.Idea{}).
		Select("quality_score", "priority_score", "quality_votes_count", "priority_votes_count").
		Where("id = ?", id).
		Take(&agg).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &agg, nil
}

// CreateIdea inserts a new idea row and returns it joined with author and
// category.
func (b *Backend) CreateIdea(ctx context.Context, in gateway.IdeaInsert) (*domain.Idea, error) {
	now := b.now().UTC()
	i := &domain.Idea{
		ID:          newID(),
		AuthorID:    in.AuthorID,
		IsAnonymous: in.IsAnonymous,
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.db.WithContext(ctx).Create(i).Error; err != nil {
		return nil, err
	}
	return b.GetIdea(ctx, i.ID)
}

// ApplyDecision writes the decision columns of an idea atomically.
func (b *Backend) ApplyDecision(ctx context.Context, ideaID string, upd gateway.DecisionUpdate) error {
	cols := map[string]any{
		"status":                upd.Status,
		"direction_verdict":     upd.DirectionVerdict,
		"direction_motivation":  upd.DirectionMotivation,
		"direction_reviewed_by": upd.DirectionReviewedBy,
		"direction_reviewed_at": upd.DirectionReviewedAt,
		"scheduled_quarter":     upd.ScheduledQuarter,
		"review_cycle":          upd.ReviewCycle,
		"updated_at":            b.now().UTC(),
	}
	res := b.db.WithContext(ctx).Model(&domain.Idea{}).Where("id = ?", ideaID).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

//
// Votes
//

// ListVotesByUser returns every vote cast by a user.
func (b *Backend) ListVotesByUser(ctx context.Context, userID string) ([]domain.Vote, error) {
	var out []domain.Vote
	err := b.db.WithContext(ctx).Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

// InsertVote creates the first vote of a user on an idea and recomputes
// the idea's aggregates in the same transaction.
func (b *Backend) InsertVote(ctx context.Context, in gateway.VoteInsert) (*domain.Vote, error) {
	now := b.now().UTC()
	v := &domain.Vote{
		ID:             newID(),
		IdeaID:         in.IdeaID,
		UserID:         in.UserID,
		QualityRating:  in.QualityRating,
		PriorityRating: in.PriorityRating,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := retryBusy(ctx, func() error {
		return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(v).Error; err != nil {
				if isDuplicate(err) {
					return gateway.ErrDuplicateVote
				}
				return err
			}
			return recomputeIdeaAggregates(tx, in.IdeaID, now)
		})
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVoteRating changes one rating axis of an existing vote and
// recomputes the idea's aggregates in the same transaction.
func (b *Backend) UpdateVoteRating(ctx context.Context, voteID string, upd gateway.VoteRatingUpdate) (*domain.Vote, error) {
	cols := map[string]any{"updated_at": b.now().UTC()}
	if upd.QualityRating != nil {
		cols["quality_rating"] = *upd.QualityRating
	}
	if upd.PriorityRating != nil {
		cols["priority_rating"] = *upd.PriorityRating
	}

	var out domain.Vote
	err := retryBusy(ctx, func() error {
		return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&domain.Vote{}).Where("id = ?", voteID).Updates(cols)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gateway.ErrNotFound
			}
			if err := tx.First(&out, "id = ?", voteID).Error; err != nil {
				return err
			}
			return recomputeIdeaAggregates(tx, out.IdeaID, b.now().UTC())
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// voteAggRow is the scan target for the aggregate recomputation query.
type voteAggRow struct {
	QualityAvg    *float64
	QualityCount  int
	PriorityAvg   *float64
	PriorityCount int
}

// recomputeIdeaAggregates rebuilds the idea's score and count columns from
// its vote rows. This is the server-side computation clients must never
// replicate.
func recomputeIdeaAggregates(tx *gorm.DB, ideaID string, now time.Time) error {
	var agg voteAggRow
	err := tx.Model(&domain.Vote{}).
		Select(
			"AVG(quality_rating) AS quality_avg",
			"COUNT(quality_rating) AS quality_count",
			"AVG(priority_rating) AS priority_avg",
			"COUNT(priority_rating) AS priority_count",
		).
		Where("idea_id = ?", ideaID).
		Take(&agg).Error
	if err != nil {
		return err
	}

	qs, ps := 0.0, 0.0
	if agg.QualityAvg != nil {
		qs = *agg.QualityAvg
	}
	if agg.PriorityAvg != nil {
		ps = *agg.PriorityAvg
	}
	return tx.Model(&domain.Idea{}).Where("id = ?", ideaID).Updates(map[string]any{
		"quality_score":        qs,
		"priority_score":       ps,
		"quality_votes_count":  agg.QualityCount,
		"priority_votes_count": agg.PriorityCount,
		"updated_at":           now,
	}).Error
}

//
// Comments
//

// InsertComment appends a comment and bumps the idea's comments_count in
// the same transaction (the count is a server-maintained column).
func (b *Backend) InsertComment(ctx context.Context, in gateway.CommentInsert) (*domain.Comment, error) {
	now := b.now().UTC()
	c := &domain.Comment{
		ID:               newID(),
		IdeaID:           in.IdeaID,
		AuthorID:         in.AuthorID,
		IsAnonymous:      in.IsAnonymous,
		Content:          in.Content,
		IsDirectionReply: in.IsDirectionReply,
		CreatedAt:        now,
	}
	err := retryBusy(ctx, func() error {
		return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
			return tx.Model(&domain.Idea{}).
				Where("id = ?", in.IdeaID).
				Updates(map[string]any{
					"comments_count": gorm.Expr("comments_count + 1"),
					"updated_at":     now,
				}).Error
		})
	})
	if err != nil {
		return nil, err
	}
	if in.AuthorID != nil {
		// Return the row joined with its author, as reads do.
		var withAuthor domain.Comment
		if err := b.db.WithContext(ctx).Preload("Author").First(&withAuthor, "id = ?", c.ID).Error; err == nil {
			return &withAuthor, nil
		}
	}
	return c, nil
}

// ListComments returns an idea's comments with their authors, oldest
// first.
func (b *Backend) ListComments(ctx context.Context, ideaID string) ([]domain.Comment, error) {
	var out []domain.Comment
	err := b.db.WithContext(ctx).
		Preload("Author").
		Where("idea_id = ?", ideaID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

//
// Notifications
//

// ListNotifications returns the newest limit notifications for a user.
func (b *Backend) ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []domain.Notification
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// InsertNotification creates a notification row.
func (b *Backend) InsertNotification(ctx context.Context, in gateway.NotificationInsert) (*domain.Notification, error) {
	n := &domain.Notification{
		ID:        newID(),
		UserID:    in.UserID,
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		IdeaID:    in.IdeaID,
		CreatedAt: b.now().UTC(),
	}
	if err := b.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// MarkNotificationRead flips is_read on a single notification, enforcing
// ownership.
func (b *Backend) MarkNotificationRead(ctx context.Context, id, userID string) error {
	res := b.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gateway.ErrNotFound
	}
	return nil
}

// MarkAllNotificationsRead flips is_read on every notification of a user.
func (b *Backend) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return b.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

//
// Review cycles
//

// LatestReviewCycle returns the cycle with the highest cycle_number.
func (b *Backend) LatestReviewCycle(ctx context.Context) (*domain.ReviewCycle, error) {
	var rc domain.ReviewCycle
	err := b.db.WithContext(ctx).Order("cycle_number desc").First(&rc).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &rc, nil
}
