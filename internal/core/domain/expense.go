package domain

import "time"

// Expense categories.
const (
	ExpenseSamples     = "samples"
	ExpenseTools       = "tools"
	ExpensePayroll     = "payroll"
	ExpenseMaterials   = "materials"
	ExpenseDebris      = "debris_removal"
	ExpenseMaintenance = "maintenance"
	ExpenseOther       = "other"
)

// Expense is a cost booked against a concession. Soft-deleted rows keep a
// non-nil DeletedAt and are excluded from every query.
type Expense struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	ConcessionID string     `json:"concession_id" bson:"concession"`
	Category     string     `json:"category" bson:"category"`
	Amount       float64    `json:"amount" bson:"amount"`
	Description  string     `json:"description" bson:"description"`
	Date         time.Time  `json:"date" bson:"date"`
	FileURL      string     `json:"file_url,omitempty" bson:"file_url,omitempty"`
	CreatedBy    string     `json:"created_by" bson:"created_by"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}
