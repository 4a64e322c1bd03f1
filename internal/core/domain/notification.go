package domain

import "time"

// Notification types.
const (
	NotifyAlert    = "alert"
	NotifyInfo     = "info"
	NotifyPayroll  = "payroll"
	NotifyDocument = "document"
	NotifyExpense  = "expense"
)

// Notification is a message shown in the back-office inbox. An empty
// ConcessionID marks a global notification visible to every user.
type Notification struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Message      string    `json:"message" bson:"message"`
	Type         string    `json:"type" bson:"type"`
	ConcessionID string    `json:"concession_id,omitempty" bson:"concession,omitempty"`
	Read         bool      `json:"read" bson:"read"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
