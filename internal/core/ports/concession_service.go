package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// UpdateConcessionInput carries a partial concession update. Nil fields are
// left untouched.
type UpdateConcessionInput struct {
	Name   *string
	Active *bool
}

// ConcessionService defines use-case operations for concessions. Create,
// update, and deactivate are owner-only; listing is open to any
// authenticated user.
type ConcessionService interface {
	List(ctx context.Context, actor *domain.User) ([]*domain.Concession, error)
	Create(ctx context.Context, actor *domain.User, name string) (*domain.Concession, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateConcessionInput) (*domain.Concession, error)
	// Deactivate marks the concession inactive; records under it are kept.
	Deactivate(ctx context.Context, actor *domain.User, id string) error
}
