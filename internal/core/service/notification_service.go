package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

// NotificationService implements the back-office inbox.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// List returns the newest notifications visible to the actor: those of their
// concessions plus global ones. A member with no concessions still sees the
// global feed.
func (s *NotificationService) List(ctx context.Context, actor *domain.User, limit int64) ([]*domain.Notification, error) {
	scope, err := s.inboxScope(actor)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ports.ListNotificationsFilter{Scope: scope, Limit: limit})
}

// Create publishes a notification. Owner and admin only; a concession-bound
// notification additionally requires access to that concession.
func (s *NotificationService) Create(ctx context.Context, actor *domain.User, input ports.CreateNotificationInput) (*domain.Notification, error) {
	if actor.Role != domain.RoleOwner && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.ConcessionID != "" && !access.CanAccessConcession(actor, input.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	kind := input.Type
	if kind == "" {
		kind = domain.NotifyInfo
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Notification{
		Title:        input.Title,
		Message:      input.Message,
		Type:         kind,
		ConcessionID: input.ConcessionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("notification_id", created.ID).Str("type", kind).Msg("notification published")
	return created, nil
}

// MarkRead marks a single notification as read, gated on its concession.
func (s *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanAccessConcession(actor, n.ConcessionID) {
		return domain.ErrConcessionNotAllowed
	}
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead marks every notification visible to the actor as read and
// returns the number updated.
func (s *NotificationService) MarkAllRead(ctx context.Context, actor *domain.User) (int64, error) {
	scope, err := s.inboxScope(actor)
	if err != nil {
		return 0, err
	}
	return s.repo.MarkAllRead(ctx, scope)
}

// inboxScope resolves the actor's notification visibility. Unlike record
// scoping, an empty membership set is not an error here: the repository
// treats an empty non-All scope as "global notifications only".
func (s *NotificationService) inboxScope(actor *domain.User) (access.Scope, error) {
	scope, err := access.ResolveScope(actor, "")
	if err != nil {
		if errors.Is(err, domain.ErrNoConcessionAccess) {
			return access.Scope{}, nil
		}
		return access.Scope{}, err
	}
	return scope, nil
}
