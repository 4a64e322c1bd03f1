package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string // defaults to partner when empty
	Phone     string
	AvatarURL string
}

// AuthService implements registration, login, and concession grants.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// AssignConcession grants a concession to a user. Owner only.
	AssignConcession(ctx context.Context, actor *domain.User, userID, concessionID string) (*domain.User, error)
}
