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

// PayrollService implements payroll payments and the weekly payer lookup.
type PayrollService struct {
	repo      ports.PayrollRepository
	employees ports.EmployeeRepository
	scheduler *rotation.Scheduler
	logger    zerolog.Logger
}

func NewPayrollService(
	repo ports.PayrollRepository,
	employees ports.EmployeeRepository,
	scheduler *rotation.Scheduler,
	logger zerolog.Logger,
) *PayrollService {
	return &PayrollService{repo: repo, employees: employees, scheduler: scheduler, logger: logger}
}

// Create records a payment for an employee in a concession the actor can
// access. The concession id and ISO week label are denormalized onto the
// entry at creation time.
func (s *PayrollService) Create(ctx context.Context, actor *domain.User, input ports.CreatePayrollInput) (*domain.Payroll, error) {
	employee, err := s.accessibleEmployee(ctx, actor, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Payroll{
		EmployeeID:   employee.ID,
		ConcessionID: employee.ConcessionID,
		Amount:       input.Amount,
		Date:         input.Date,
		Week:         domain.WeekLabel(input.Date),
		Method:       input.Method,
		Notes:        input.Notes,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("payroll_id", created.ID).
		Str("employee_id", employee.ID).
		Str("week", created.Week).
		Msg("payroll entry created")
	return created, nil
}

func (s *PayrollService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Payroll, error) {
	p, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.accessibleEmployee(ctx, actor, p.EmployeeID); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns payroll entries within the actor's scope plus their summed
// amount. Entries are matched through their employee's concession, not the
// denormalized one, so reassigned employees stay visible under their current
// concession.
func (s *PayrollService) List(ctx context.Context, actor *domain.User, input ports.ListPayrollInput) (*ports.PayrollListResult, error) {
	var employeeIDs []string

	if input.EmployeeID != "" {
		employee, err := s.accessibleEmployee(ctx, actor, input.EmployeeID)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return &ports.PayrollListResult{Items: []*domain.Payroll{}}, nil
			}
			return nil, err
		}
		employeeIDs = []string{employee.ID}
	} else {
		scope, err := access.ResolveScope(actor, input.ConcessionID)
		if err != nil {
			if errors.Is(err, domain.ErrNoConcessionAccess) {
				return &ports.PayrollListResult{Items: []*domain.Payroll{}}, nil
			}
			return nil, err
		}

		employeeIDs, err = s.employees.IDsByScope(ctx, scope)
		if err != nil {
			return nil, err
		}
		if len(employeeIDs) == 0 {
			return &ports.PayrollListResult{Items: []*domain.Payroll{}}, nil
		}
	}

	filter := ports.ListPayrollFilter{EmployeeIDs: employeeIDs, From: input.From, To: input.To}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalAmount(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.PayrollListResult{Items: items, TotalAmount: total}, nil
}

func (s *PayrollService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdatePayrollInput) (*domain.Payroll, error) {
	p, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.accessibleEmployee(ctx, actor, p.EmployeeID); err != nil {
		return nil, err
	}

	if input.Amount != nil {
		p.Amount = *input.Amount
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domain.ErrInvalidDate
		}
		p.Date = *input.Date
		p.Week = domain.WeekLabel(*input.Date)
	}
	if input.Method != nil {
		p.Method = *input.Method
	}
	if input.Notes != nil {
		p.Notes = *input.Notes
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes the payroll entry.
func (s *PayrollService) Delete(ctx context.Context, actor *domain.User, id string) error {
	p, err := s.findLive(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.accessibleEmployee(ctx, actor, p.EmployeeID); err != nil {
		return err
	}

	now := time.Now().UTC()
	p.DeletedAt = &now
	p.UpdatedAt = now
	return s.repo.Update(ctx, p)
}

// CurrentPayer delegates to the rotation scheduler.
func (s *PayrollService) CurrentPayer(ctx context.Context, date time.Time, concessionID string) (*domain.User, error) {
	return s.scheduler.PayerForDate(ctx, date, concessionID)
}

// accessibleEmployee loads an employee and verifies the actor may act on its
// concession.
func (s *PayrollService) accessibleEmployee(ctx context.Context, actor *domain.User, employeeID string) (*domain.Employee, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, employee.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}
	return employee, nil
}

// findLive loads a payroll entry, treating soft-deleted rows as not found.
func (s *PayrollService) findLive(ctx context.Context, id string) (*domain.Payroll, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.DeletedAt != nil {
		return nil, domain.ErrPayrollNotFound
	}
	return p, nil
}
