package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// PayerSummary identifies this week's responsible payer on the dashboard.
type PayerSummary struct {
	ID   string
	Name string
	Role string
}

// DashboardOverview aggregates the headline numbers for the concessions the
// actor can see.
type DashboardOverview struct {
	EmployeeCount       int64
	TotalExpenses       float64
	LatestExpense       *domain.Expense
	TotalPayroll        float64
	UnreadNotifications int64
	// CurrentPayer is nil when no payer is configured for this week.
	CurrentPayer *PayerSummary
}

// DashboardService computes the overview for the back-office landing page.
type DashboardService interface {
	Overview(ctx context.Context, actor *domain.User, concessionID string, now time.Time) (*DashboardOverview, error)
}
