package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// ConcessionRepository defines persistence for concessions.
type ConcessionRepository interface {
	Create(ctx context.Context, c *domain.Concession) (*domain.Concession, error)
	FindByID(ctx context.Context, id string) (*domain.Concession, error)
	// List returns all concessions sorted by name, inactive ones included.
	List(ctx context.Context) ([]*domain.Concession, error)
	Update(ctx context.Context, c *domain.Concession) error
}
