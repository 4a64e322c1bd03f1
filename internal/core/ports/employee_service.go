package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// CreateEmployeeInput carries the data needed to register an employee.
type CreateEmployeeInput struct {
	ConcessionID string
	Name         string
	CURP         string
	RFC          string
	NSS          string
	Position     string
	Salary       float64
	Phone        string
}

// UpdateEmployeeInput carries a partial employee update. Nil fields are left
// untouched.
type UpdateEmployeeInput struct {
	Name     *string
	CURP     *string
	RFC      *string
	NSS      *string
	Position *string
	Salary   *float64
	Phone    *string
	Status   *string
}

// EmployeeService defines use-case operations for employees. Every operation
// gates on the actor's concession access.
type EmployeeService interface {
	Create(ctx context.Context, actor *domain.User, input CreateEmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Employee, error)
	List(ctx context.Context, actor *domain.User, concessionID, search string) ([]*domain.Employee, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
