package domain

import (
	"errors"
	"fmt"
)

// Access errors. ErrForbidden is the root cause every authorization failure
// wraps, so callers can match the whole family with errors.Is.
var ErrForbidden = errors.New("access forbidden")
var ErrNoConcessionAccess = fmt.Errorf("%w: no concessions assigned", ErrForbidden)
var ErrConcessionNotAllowed = fmt.Errorf("%w: concession not permitted", ErrForbidden)

// Auth errors.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// Not-found errors, one per resource. Produced by the persistence layer only.
var ErrConcessionNotFound = errors.New("concession not found")
var ErrEmployeeNotFound = errors.New("employee not found")
var ErrExpenseNotFound = errors.New("expense not found")
var ErrPayrollNotFound = errors.New("payroll entry not found")
var ErrDocumentNotFound = errors.New("document not found")
var ErrNotificationNotFound = errors.New("notification not found")

// ErrNoPayerFound means the rotation table is empty or references a user
// that no longer exists. Non-fatal: surfaced as "no payer for this week".
var ErrNoPayerFound = errors.New("no payer found")

// ErrInvalidDate is returned when a date input fails to parse.
var ErrInvalidDate = errors.New("invalid date")
