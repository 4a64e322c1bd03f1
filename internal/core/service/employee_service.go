package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

// EmployeeService implements employee administration. Every operation gates
// on the actor's access to the employee's concession.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

// Create registers an employee under a concession the actor can access.
func (s *EmployeeService) Create(ctx context.Context, actor *domain.User, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if !access.CanAccessConcession(actor, input.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Employee{
		ConcessionID: input.ConcessionID,
		Name:         input.Name,
		CURP:         input.CURP,
		RFC:          input.RFC,
		NSS:          input.NSS,
		Position:     input.Position,
		Salary:       input.Salary,
		Phone:        input.Phone,
		Status:       domain.EmployeeActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("concession_id", input.ConcessionID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, e.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}
	return e, nil
}

// List returns employees within the actor's scope, optionally narrowed to
// one concession and a search term.
func (s *EmployeeService) List(ctx context.Context, actor *domain.User, concessionID, search string) ([]*domain.Employee, error) {
	scope, err := access.ResolveScope(actor, concessionID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ports.ListEmployeesFilter{Scope: scope, Search: search})
}

func (s *EmployeeService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, e.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.CURP != nil {
		e.CURP = *input.CURP
	}
	if input.RFC != nil {
		e.RFC = *input.RFC
	}
	if input.NSS != nil {
		e.NSS = *input.NSS
	}
	if input.Position != nil {
		e.Position = *input.Position
	}
	if input.Salary != nil {
		e.Salary = *input.Salary
	}
	if input.Phone != nil {
		e.Phone = *input.Phone
	}
	if input.Status != nil {
		e.Status = *input.Status
	}
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, actor *domain.User, id string) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanAccessConcession(actor, e.ConcessionID) {
		return domain.ErrConcessionNotAllowed
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
