package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// CreateExpenseInput carries the data needed to book an expense.
type CreateExpenseInput struct {
	ConcessionID string
	Category     string
	Amount       float64
	Description  string
	Date         time.Time
	FileURL      string // optional receipt reference
}

// UpdateExpenseInput carries a partial expense update. Nil fields are left
// untouched.
type UpdateExpenseInput struct {
	Category    *string
	Amount      *float64
	Description *string
	Date        *time.Time
	FileURL     *string
}

// ListExpensesInput carries all parameters for the expense list endpoint.
type ListExpensesInput struct {
	ConcessionID string // optional: narrow to one concession
	Category     string
	From         time.Time
	To           time.Time
}

// ExpenseListResult pairs the matching expenses with their summed amount.
type ExpenseListResult struct {
	Items       []*domain.Expense
	TotalAmount float64
}

// ExpenseService defines use-case operations for expenses.
type ExpenseService interface {
	Create(ctx context.Context, actor *domain.User, input CreateExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Expense, error)
	List(ctx context.Context, actor *domain.User, input ListExpensesInput) (*ExpenseListResult, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateExpenseInput) (*domain.Expense, error)
	// Delete soft-deletes the expense.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
