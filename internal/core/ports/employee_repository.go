package ports

import (
	"context"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
)

// ListEmployeesFilter carries the query parameters for listing employees.
// Scope is always resolved by the service layer before reaching the repo.
type ListEmployeesFilter struct {
	Scope  access.Scope
	Search string // optional: partial match on name, phone, or position
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
	// IDsByScope returns the ids of all employees within scope. Used to
	// filter payroll entries, which are queried through their employee.
	IDsByScope(ctx context.Context, scope access.Scope) ([]string, error)
	CountByScope(ctx context.Context, scope access.Scope) (int64, error)
}
