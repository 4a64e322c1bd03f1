package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// CreatePayrollInput carries the data needed to record a payroll payment.
type CreatePayrollInput struct {
	EmployeeID string
	Amount     float64
	Date       time.Time
	Method     string
	Notes      string
}

// UpdatePayrollInput carries a partial payroll update. Nil fields are left
// untouched. Changing the date recomputes the stored week label.
type UpdatePayrollInput struct {
	Amount *float64
	Date   *time.Time
	Method *string
	Notes  *string
}

// ListPayrollInput carries all parameters for the payroll list endpoint.
type ListPayrollInput struct {
	EmployeeID   string // optional: narrow to one employee
	ConcessionID string // optional: narrow to one concession
	From         time.Time
	To           time.Time
}

// PayrollListResult pairs the matching entries with their summed amount.
type PayrollListResult struct {
	Items       []*domain.Payroll
	TotalAmount float64
}

// PayrollService defines use-case operations for payroll, including the
// weekly payer rotation lookup.
type PayrollService interface {
	Create(ctx context.Context, actor *domain.User, input CreatePayrollInput) (*domain.Payroll, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Payroll, error)
	List(ctx context.Context, actor *domain.User, input ListPayrollInput) (*PayrollListResult, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdatePayrollInput) (*domain.Payroll, error)
	// Delete soft-deletes the entry.
	Delete(ctx context.Context, actor *domain.User, id string) error
	// CurrentPayer returns the partner responsible for the pay-week
	// containing date, honoring fixed-payer concessions.
	CurrentPayer(ctx context.Context, date time.Time, concessionID string) (*domain.User, error)
}
