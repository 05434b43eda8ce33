// Package services – NotificationService
//
// Read-state mutations for the notification view. The backend write comes
// first; the cache is patched only on success so a failed request leaves
// local state untouched.
package services

import (
	"context"
	"errors"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/gateway"
	"github.com/ideabox/go-ideabox-backend/internal/store"
)

// ErrNotificationNotFound indicates the notification does not exist or
// belongs to another user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService mutates notification read-state.
type NotificationService struct {
	GW gateway.Gateway
}

// NewNotificationService builds a NotificationService over the given
// backend handle.
func NewNotificationService(gw gateway.Gateway) *NotificationService {
	return &NotificationService{GW: gw}
}

// MarkRead flips is_read on one notification owned by the user.
func (s *NotificationService) MarkRead(ctx context.Context, st *store.Store, user *domain.Profile, id string) error {
	if err := s.GW.MarkNotificationRead(ctx, id, user.ID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	st.MarkAsRead(id)
	return nil
}

// MarkAllRead flips is_read on every notification of the user.
func (s *NotificationService) MarkAllRead(ctx context.Context, st *store.Store, user *domain.Profile) error {
	if err := s.GW.MarkAllNotificationsRead(ctx, user.ID); err != nil {
		return err
	}
	st.MarkAllAsRead()
	return nil
}
