package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

// ExpenseService implements expense booking and reporting.
type ExpenseService struct {
	repo   ports.ExpenseRepository
	logger zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, logger: logger}
}

// Create books an expense against a concession the actor can access.
func (s *ExpenseService) Create(ctx context.Context, actor *domain.User, input ports.CreateExpenseInput) (*domain.Expense, error) {
	if input.ConcessionID == "" {
		return nil, domain.ErrConcessionNotAllowed
	}
	if !access.CanAccessConcession(actor, input.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Expense{
		ConcessionID: input.ConcessionID,
		Category:     input.Category,
		Amount:       input.Amount,
		Description:  input.Description,
		Date:         input.Date,
		FileURL:      input.FileURL,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("expense_id", created.ID).
		Str("concession_id", input.ConcessionID).
		Float64("amount", input.Amount).
		Msg("expense created")
	return created, nil
}

func (s *ExpenseService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Expense, error) {
	e, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, e.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}
	return e, nil
}

// List returns expenses within the actor's scope plus their summed amount.
// An actor with no concessions gets an empty result rather than an error;
// single-record operations still hard-fail.
func (s *ExpenseService) List(ctx context.Context, actor *domain.User, input ports.ListExpensesInput) (*ports.ExpenseListResult, error) {
	scope, err := access.ResolveScope(actor, input.ConcessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNoConcessionAccess) {
			return &ports.ExpenseListResult{Items: []*domain.Expense{}}, nil
		}
		return nil, err
	}

	filter := ports.ListExpensesFilter{
		Scope:    scope,
		Category: input.Category,
		From:     input.From,
		To:       input.To,
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalAmount(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ExpenseListResult{Items: items, TotalAmount: total}, nil
}

func (s *ExpenseService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateExpenseInput) (*domain.Expense, error) {
	e, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, e.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	if input.Category != nil {
		e.Category = *input.Category
	}
	if input.Amount != nil {
		e.Amount = *input.Amount
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.Date != nil {
		e.Date = *input.Date
	}
	if input.FileURL != nil {
		e.FileURL = *input.FileURL
	}
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete soft-deletes the expense.
func (s *ExpenseService) Delete(ctx context.Context, actor *domain.User, id string) error {
	e, err := s.findLive(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanAccessConcession(actor, e.ConcessionID) {
		return domain.ErrConcessionNotAllowed
	}

	now := time.Now().UTC()
	e.DeletedAt = &now
	e.UpdatedAt = now
	return s.repo.Update(ctx, e)
}

// findLive loads an expense, treating soft-deleted rows as not found.
func (s *ExpenseService) findLive(ctx context.Context, id string) (*domain.Expense, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.DeletedAt != nil {
		return nil, domain.ErrExpenseNotFound
	}
	return e, nil
}
