package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
	"github.com/sismin/backoffice-api/internal/core/rotation"
)

// DashboardService aggregates the landing-page numbers across the actor's
// visible concessions.
type DashboardService struct {
	employees     ports.EmployeeRepository
	expenses      ports.ExpenseRepository
	payrolls      ports.PayrollRepository
	notifications ports.NotificationRepository
	scheduler     *rotation.Scheduler
	logger        zerolog.Logger
}

func NewDashboardService(
	employees ports.EmployeeRepository,
	expenses ports.ExpenseRepository,
	payrolls ports.PayrollRepository,
	notifications ports.NotificationRepository,
	scheduler *rotation.Scheduler,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		employees:     employees,
		expenses:      expenses,
		payrolls:      payrolls,
		notifications: notifications,
		scheduler:     scheduler,
		logger:        logger,
	}
}

// Overview computes the dashboard for the actor, optionally narrowed to one
// concession. The payer lookup failing with "no payer" leaves CurrentPayer
// nil instead of failing the whole overview.
func (s *DashboardService) Overview(ctx context.Context, actor *domain.User, concessionID string, now time.Time) (*ports.DashboardOverview, error) {
	scope, err := access.ResolveScope(actor, concessionID)
	if err != nil {
		return nil, err
	}

	overview := &ports.DashboardOverview{}

	overview.EmployeeCount, err = s.employees.CountByScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	expenseFilter := ports.ListExpensesFilter{Scope: scope}
	overview.TotalExpenses, err = s.expenses.TotalAmount(ctx, expenseFilter)
	if err != nil {
		return nil, err
	}
	latest, err := s.expenses.List(ctx, expenseFilter)
	if err != nil {
		return nil, err
	}
	if len(latest) > 0 {
		overview.LatestExpense = latest[0]
	}

	employeeIDs, err := s.employees.IDsByScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(employeeIDs) > 0 {
		overview.TotalPayroll, err = s.payrolls.TotalAmount(ctx, ports.ListPayrollFilter{EmployeeIDs: employeeIDs})
		if err != nil {
			return nil, err
		}
	}

	overview.UnreadNotifications, err = s.notifications.CountUnread(ctx, scope)
	if err != nil {
		return nil, err
	}

	payer, err := s.scheduler.PayerForDate(ctx, now, scope.ConcessionID)
	switch {
	case err == nil:
		overview.CurrentPayer = &ports.PayerSummary{ID: payer.ID, Name: payer.Name, Role: payer.Role}
	case errors.Is(err, domain.ErrNoPayerFound):
		s.logger.Debug().Str("concession_id", scope.ConcessionID).Msg("no payer configured for this week")
	default:
		return nil, err
	}

	return overview, nil
}
