package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// CreateNotificationInput carries the data needed to publish a notification.
// An empty ConcessionID publishes a global notification.
type CreateNotificationInput struct {
	Title        string
	Message      string
	Type         string // defaults to info when empty
	ConcessionID string
}

// NotificationService defines use-case operations for the inbox.
type NotificationService interface {
	List(ctx context.Context, actor *domain.User, limit int64) ([]*domain.Notification, error)
	// Create publishes a notification. Owner and admin only.
	Create(ctx context.Context, actor *domain.User, input CreateNotificationInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, actor *domain.User, id string) error
	MarkAllRead(ctx context.Context, actor *domain.User) (int64, error)
}
