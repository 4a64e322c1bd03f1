package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
)

// ListNotificationsFilter carries the query parameters for the inbox.
// Global notifications (no concession) always match, whatever the scope.
type ListNotificationsFilter struct {
	Scope access.Scope
	Limit int64 // max rows; repository applies a default when <= 0
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	// List returns matching notifications, newest first.
	List(ctx context.Context, filter ListNotificationsFilter) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead marks every unread notification within scope as read and
	// returns how many were updated.
	MarkAllRead(ctx context.Context, scope access.Scope) (int64, error)
	CountUnread(ctx context.Context, scope access.Scope) (int64, error)
}
