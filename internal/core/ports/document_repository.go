package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
)

// ListDocumentsFilter carries the query parameters for listing documents.
// Soft-deleted rows are always excluded.
type ListDocumentsFilter struct {
	Scope      access.Scope
	EmployeeID string // optional: documents of one employee
	Category   string // optional
	GlobalOnly bool   // only company-wide documents
}

// DocumentRepository defines persistence operations for documents.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter ListDocumentsFilter) ([]*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
	// FindDueBetween returns non-deleted documents whose due date falls in
	// [from, to]. Used by the reminder worker.
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Document, error)
}
