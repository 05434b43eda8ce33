// Notification HTTP handlers.
//
// This file exposes:
//   - GET  /notifications            (cached list plus unread count)
//   - POST /notifications/{id}/read  (mark one as read)
//   - POST /notifications/read-all   (mark all as read)
//
// The list renders from the session cache; read-state mutations write to
// the backend first and patch the cache only on success.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/services"
)

// ListNotificationsResponse wraps the cached notifications and the derived
// unread count shown on the bell badge.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// ListNotifications godoc
// @ID          listNotifications
// @Summary     List notifications
// @Description Returns the signed-in user's cached notifications, newest first, with the unread count.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.ListNotificationsResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /notifications [get]
func (h *Handlers) ListNotifications(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	list := st.Notifications()
	if list == nil {
		list = []domain.Notification{}
	}
	ok(c, http.StatusOK, ListNotificationsResponse{
		Notifications: list,
		UnreadCount:   st.UnreadCount(),
	})
}

// MarkNotificationRead godoc
// @ID          markNotificationRead
// @Summary     Mark a notification as read
// @Description Flips is_read on one notification owned by the current user.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Notification ID (UUID)"  format(uuid)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Notification not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /notifications/{id}/read [post]
func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "notification id must be a UUID")
		return
	}

	if err := h.notifSvc.MarkRead(c.Request.Context(), st, user, id); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "notification not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not mark notification read")
		return
	}
	noContent(c)
}

// MarkAllNotificationsRead godoc
// @ID          markAllNotificationsRead
// @Summary     Mark all notifications as read
// @Description Flips is_read on every notification of the current user.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /notifications/read-all [post]
func (h *Handlers) MarkAllNotificationsRead(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	if err := h.notifSvc.MarkAllRead(c.Request.Context(), st, user); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not mark notifications read")
		return
	}
	noContent(c)
}
