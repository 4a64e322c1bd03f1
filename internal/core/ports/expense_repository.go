package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
)

// ListExpensesFilter carries the query parameters for listing expenses.
// Soft-deleted rows are always excluded.
type ListExpensesFilter struct {
	Scope    access.Scope
	Category string    // optional
	From     time.Time // optional: date >= From
	To       time.Time // optional: date <= To
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	FindByID(ctx context.Context, id string) (*domain.Expense, error)
	// List returns matching expenses sorted by date descending.
	List(ctx context.Context, filter ListExpensesFilter) ([]*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	// TotalAmount sums the amount of all matching expenses server-side.
	TotalAmount(ctx context.Context, filter ListExpensesFilter) (float64, error)
}
