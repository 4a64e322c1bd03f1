package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

// DocumentService implements the document archive.
type DocumentService struct {
	repo   ports.DocumentRepository
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, logger: logger}
}

// Create files a document under a concession the actor can access.
func (s *DocumentService) Create(ctx context.Context, actor *domain.User, input ports.CreateDocumentInput) (*domain.Document, error) {
	if input.ConcessionID == "" {
		return nil, domain.ErrConcessionNotAllowed
	}
	if !access.CanAccessConcession(actor, input.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Document{
		ConcessionID: input.ConcessionID,
		EmployeeID:   input.EmployeeID,
		IsGlobal:     input.IsGlobal,
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		Notes:        input.Notes,
		FileURL:      input.FileURL,
		FileName:     input.FileName,
		DueDate:      input.DueDate,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("document_id", created.ID).
		Str("concession_id", input.ConcessionID).
		Str("category", input.Category).
		Msg("document filed")
	return created, nil
}

func (s *DocumentService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Document, error) {
	d, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, d.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}
	return d, nil
}

// List returns documents within the actor's scope.
func (s *DocumentService) List(ctx context.Context, actor *domain.User, input ports.ListDocumentsInput) ([]*domain.Document, error) {
	scope, err := access.ResolveScope(actor, input.ConcessionID)
	if err != nil {
		return nil, err
	}

	return s.repo.List(ctx, ports.ListDocumentsFilter{
		Scope:      scope,
		EmployeeID: input.EmployeeID,
		Category:   input.Category,
		GlobalOnly: input.GlobalOnly,
	})
}

func (s *DocumentService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateDocumentInput) (*domain.Document, error) {
	d, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessConcession(actor, d.ConcessionID) {
		return nil, domain.ErrConcessionNotAllowed
	}

	if input.Category != nil {
		d.Category = *input.Category
	}
	if input.Subcategory != nil {
		d.Subcategory = *input.Subcategory
	}
	if input.Notes != nil {
		d.Notes = *input.Notes
	}
	if input.DueDate != nil {
		d.DueDate = input.DueDate
	}
	d.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete soft-deletes the document.
func (s *DocumentService) Delete(ctx context.Context, actor *domain.User, id string) error {
	d, err := s.findLive(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanAccessConcession(actor, d.ConcessionID) {
		return domain.ErrConcessionNotAllowed
	}

	now := time.Now().UTC()
	d.DeletedAt = &now
	d.UpdatedAt = now
	return s.repo.Update(ctx, d)
}

func (s *DocumentService) findLive(ctx context.Context, id string) (*domain.Document, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.DeletedAt != nil {
		return nil, domain.ErrDocumentNotFound
	}
	return d, nil
}
