package domain

import "time"

// Document is a stored file reference: invoices, payment receipts, insurance
// papers, and the like. Global documents (IsGlobal) belong to the company
// rather than a single employee; EmployeeID is empty for those.
type Document struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	ConcessionID string     `json:"concession_id" bson:"concession"`
	EmployeeID   string     `json:"employee_id,omitempty" bson:"employee,omitempty"`
	IsGlobal     bool       `json:"is_global" bson:"is_global"`
	Category     string     `json:"category" bson:"category"`
	Subcategory  string     `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	FileURL      string     `json:"file_url" bson:"file_url"`
	FileName     string     `json:"file_name" bson:"file_name"`
	DueDate      *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedBy    string     `json:"created_by" bson:"created_by"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}
