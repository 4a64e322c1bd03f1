package domain

import (
	"fmt"
	"time"
)

// Payment methods.
const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// Payroll is one weekly payment to an employee. The concession id is
// denormalized from the employee at creation time.
type Payroll struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	EmployeeID   string     `json:"employee_id" bson:"employee"`
	ConcessionID string     `json:"concession_id" bson:"concession"`
	Amount       float64    `json:"amount" bson:"amount"`
	Date         time.Time  `json:"date" bson:"date"`
	Week         string     `json:"week" bson:"week"`
	Method       string     `json:"method" bson:"method"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedBy    string     `json:"created_by" bson:"created_by"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// WeekLabel renders the ISO week label stored on payroll entries, e.g. "2025-W39".
func WeekLabel(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}
