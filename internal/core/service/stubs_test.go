package service

// In-memory stub repositories shared by the service tests. They mirror the
// filters the real Mongo repositories apply.

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func scopeMatches(scope access.Scope, concessionID string) bool {
	if scope.All {
		return true
	}
	for _, id := range scope.ConcessionIDs {
		if id == concessionID {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("u%d", r.nextID)
	}
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return r.add(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) AddConcession(ctx context.Context, userID, concessionID string) (*domain.User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := false
	for _, id := range u.Concessions {
		if id == concessionID {
			found = true
		}
	}
	if !found {
		u.Concessions = append(u.Concessions, concessionID)
	}
	return r.FindByID(ctx, userID)
}

// ---------------------------------------------------------------------------
// Concessions
// ---------------------------------------------------------------------------

type stubConcessionRepo struct {
	byID   map[string]*domain.Concession
	nextID int
}

func newStubConcessionRepo() *stubConcessionRepo {
	return &stubConcessionRepo{byID: map[string]*domain.Concession{}}
}

func (r *stubConcessionRepo) Create(_ context.Context, c *domain.Concession) (*domain.Concession, error) {
	if c.ID == "" {
		r.nextID++
		c.ID = fmt.Sprintf("c%d", r.nextID)
	}
	clone := *c
	r.byID[c.ID] = &clone
	return c, nil
}

func (r *stubConcessionRepo) FindByID(_ context.Context, id string) (*domain.Concession, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrConcessionNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubConcessionRepo) List(_ context.Context) ([]*domain.Concession, error) {
	out := make([]*domain.Concession, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubConcessionRepo) Update(_ context.Context, c *domain.Concession) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrConcessionNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// Employees
// ---------------------------------------------------------------------------

type stubEmployeeRepo struct {
	byID   map[string]*domain.Employee
	nextID int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: map[string]*domain.Employee{}}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("e%d", r.nextID)
	}
	clone := *e
	r.byID[e.ID] = &clone
	return e, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) List(_ context.Context, filter ports.ListEmployeesFilter) ([]*domain.Employee, error) {
	var out []*domain.Employee
	for _, e := range r.byID {
		if !scopeMatches(filter.Scope, e.ConcessionID) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(e.Name), needle) &&
				!strings.Contains(strings.ToLower(e.Phone), needle) &&
				!strings.Contains(strings.ToLower(e.Position), needle) {
				continue
			}
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubEmployeeRepo) IDsByScope(_ context.Context, scope access.Scope) ([]string, error) {
	var ids []string
	for _, e := range r.byID {
		if scopeMatches(scope, e.ConcessionID) {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (r *stubEmployeeRepo) CountByScope(ctx context.Context, scope access.Scope) (int64, error) {
	ids, _ := r.IDsByScope(ctx, scope)
	return int64(len(ids)), nil
}

// ---------------------------------------------------------------------------
// Expenses
// ---------------------------------------------------------------------------

type stubExpenseRepo struct {
	byID   map[string]*domain.Expense
	nextID int
}

func newStubExpenseRepo() *stubExpenseRepo {
	return &stubExpenseRepo{byID: map[string]*domain.Expense{}}
}

func (r *stubExpenseRepo) Create(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("x%d", r.nextID)
	}
	clone := *e
	r.byID[e.ID] = &clone
	return e, nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id string) (*domain.Expense, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubExpenseRepo) matches(e *domain.Expense, filter ports.ListExpensesFilter) bool {
	if e.DeletedAt != nil {
		return false
	}
	if !scopeMatches(filter.Scope, e.ConcessionID) {
		return false
	}
	if filter.Category != "" && e.Category != filter.Category {
		return false
	}
	if !filter.From.IsZero() && e.Date.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && e.Date.After(filter.To) {
		return false
	}
	return true
}

func (r *stubExpenseRepo) List(_ context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	var out []*domain.Expense
	for _, e := range r.byID {
		if r.matches(e, filter) {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) Update(_ context.Context, e *domain.Expense) error {
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrExpenseNotFound
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubExpenseRepo) TotalAmount(_ context.Context, filter ports.ListExpensesFilter) (float64, error) {
	var total float64
	for _, e := range r.byID {
		if r.matches(e, filter) {
			total += e.Amount
		}
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Payroll
// ---------------------------------------------------------------------------

type stubPayrollRepo struct {
	byID   map[string]*domain.Payroll
	nextID int
}

func newStubPayrollRepo() *stubPayrollRepo {
	return &stubPayrollRepo{byID: map[string]*domain.Payroll{}}
}

func (r *stubPayrollRepo) Create(_ context.Context, p *domain.Payroll) (*domain.Payroll, error) {
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("p%d", r.nextID)
	}
	clone := *p
	r.byID[p.ID] = &clone
	return p, nil
}

func (r *stubPayrollRepo) FindByID(_ context.Context, id string) (*domain.Payroll, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPayrollNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPayrollRepo) matches(p *domain.Payroll, filter ports.ListPayrollFilter) bool {
	if p.DeletedAt != nil {
		return false
	}
	found := false
	for _, id := range filter.EmployeeIDs {
		if id == p.EmployeeID {
			found = true
		}
	}
	if !found {
		return false
	}
	if !filter.From.IsZero() && p.Date.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && p.Date.After(filter.To) {
		return false
	}
	return true
}

func (r *stubPayrollRepo) List(_ context.Context, filter ports.ListPayrollFilter) ([]*domain.Payroll, error) {
	var out []*domain.Payroll
	for _, p := range r.byID {
		if r.matches(p, filter) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPayrollRepo) Update(_ context.Context, p *domain.Payroll) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPayrollNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPayrollRepo) TotalAmount(_ context.Context, filter ports.ListPayrollFilter) (float64, error) {
	var total float64
	for _, p := range r.byID {
		if r.matches(p, filter) {
			total += p.Amount
		}
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type stubNotificationRepo struct {
	byID   map[string]*domain.Notification
	nextID int
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{byID: map[string]*domain.Notification{}}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.ID == "" {
		r.nextID++
		n.ID = fmt.Sprintf("n%d", r.nextID)
	}
	clone := *n
	r.byID[n.ID] = &clone
	return n, nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	clone := *n
	return &clone, nil
}

// visible mirrors the repo rule: global notifications match any scope.
func visible(scope access.Scope, n *domain.Notification) bool {
	if n.ConcessionID == "" {
		return true
	}
	return scopeMatches(scope, n.ConcessionID)
}

func (r *stubNotificationRepo) List(_ context.Context, filter ports.ListNotificationsFilter) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.byID {
		if visible(filter.Scope, n) {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := r.byID[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, scope access.Scope) (int64, error) {
	var count int64
	for _, n := range r.byID {
		if !n.Read && visible(scope, n) {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, scope access.Scope) (int64, error) {
	var count int64
	for _, n := range r.byID {
		if !n.Read && visible(scope, n) {
			count++
		}
	}
	return count, nil
}
