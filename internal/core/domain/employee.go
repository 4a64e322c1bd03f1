package domain

import "time"

// Employee statuses.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee is a worker assigned to exactly one concession.
type Employee struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ConcessionID string    `json:"concession_id" bson:"concession"`
	Name         string    `json:"name" bson:"name"`
	CURP         string    `json:"curp" bson:"curp"`
	RFC          string    `json:"rfc" bson:"rfc"`
	NSS          string    `json:"nss" bson:"nss"`
	Position     string    `json:"position" bson:"position"`
	Salary       float64   `json:"salary" bson:"salary"`
	Phone        string    `json:"phone" bson:"phone"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
