package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// ListPayrollFilter carries the query parameters for listing payroll entries.
// Entries are matched through their employee, not their denormalized
// concession, so reassigned employees keep their history visible.
type ListPayrollFilter struct {
	EmployeeIDs []string
	From        time.Time // optional: date >= From
	To          time.Time // optional: date <= To
}

// PayrollRepository defines persistence operations for payroll entries.
type PayrollRepository interface {
	Create(ctx context.Context, p *domain.Payroll) (*domain.Payroll, error)
	FindByID(ctx context.Context, id string) (*domain.Payroll, error)
	// List returns matching entries sorted by date descending.
	List(ctx context.Context, filter ListPayrollFilter) ([]*domain.Payroll, error)
	Update(ctx context.Context, p *domain.Payroll) error
	// TotalAmount sums the amount of all matching entries server-side.
	TotalAmount(ctx context.Context, filter ListPayrollFilter) (float64, error)
}
