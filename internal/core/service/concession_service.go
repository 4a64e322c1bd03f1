package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

// ConcessionService implements concession administration.
type ConcessionService struct {
	repo   ports.ConcessionRepository
	logger zerolog.Logger
}

func NewConcessionService(repo ports.ConcessionRepository, logger zerolog.Logger) *ConcessionService {
	return &ConcessionService{repo: repo, logger: logger}
}

// List returns every concession. Any authenticated user may list them; the
// names are needed to render membership pickers.
func (s *ConcessionService) List(ctx context.Context, _ *domain.User) ([]*domain.Concession, error) {
	return s.repo.List(ctx)
}

// Create registers a new concession. Owner only.
func (s *ConcessionService) Create(ctx context.Context, actor *domain.User, name string) (*domain.Concession, error) {
	if !actor.IsOwner() {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Concession{
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("concession_id", created.ID).Str("name", name).Msg("concession created")
	return created, nil
}

// Update applies a partial update. Owner only.
func (s *ConcessionService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateConcessionInput) (*domain.Concession, error) {
	if !actor.IsOwner() {
		return nil, domain.ErrForbidden
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Active != nil {
		c.Active = *input.Active
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Deactivate marks a concession inactive. Owner only. Records scoped to the
// concession are untouched.
func (s *ConcessionService) Deactivate(ctx context.Context, actor *domain.User, id string) error {
	if !actor.IsOwner() {
		return domain.ErrForbidden
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	c.Active = false
	c.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, c)
}
