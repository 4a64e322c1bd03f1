package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// UserRepository defines persistence for users. Role strings are normalized
// at this boundary, on both write and read.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// AddConcession grants the user access to a concession. Adding an id the
	// user already holds is a no-op.
	AddConcession(ctx context.Context, userID, concessionID string) (*domain.User, error)
}
