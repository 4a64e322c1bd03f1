package ports

import (
	"context"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

// CreateDocumentInput carries the data needed to file a document.
type CreateDocumentInput struct {
	ConcessionID string
	EmployeeID   string // optional
	IsGlobal     bool
	Category     string
	Subcategory  string
	Notes        string
	FileURL      string
	FileName     string
	DueDate      *time.Time
}

// UpdateDocumentInput carries a partial document update. Nil fields are left
// untouched.
type UpdateDocumentInput struct {
	Category    *string
	Subcategory *string
	Notes       *string
	DueDate     *time.Time
}

// ListDocumentsInput carries all parameters for the document list endpoint.
type ListDocumentsInput struct {
	ConcessionID string // optional
	EmployeeID   string // optional
	Category     string // optional
	GlobalOnly   bool
}

// DocumentService defines use-case operations for documents.
type DocumentService interface {
	Create(ctx context.Context, actor *domain.User, input CreateDocumentInput) (*domain.Document, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Document, error)
	List(ctx context.Context, actor *domain.User, input ListDocumentsInput) ([]*domain.Document, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateDocumentInput) (*domain.Document, error)
	// Delete soft-deletes the document.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
