package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/rotation"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *stubEmployeeRepo, *stubExpenseRepo, *stubPayrollRepo, *stubNotificationRepo) {
	t.Helper()

	users := newStubUserRepo()
	users.add(&domain.User{ID: "u1", Name: "Oscar", Role: domain.RolePartner, Email: "oscar@example.com"})

	scheduler := rotation.NewScheduler(rotation.Config{
		Rotation: []string{"u1"},
		Epoch:    time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
	}, users)

	employees := newStubEmployeeRepo()
	expenses := newStubExpenseRepo()
	payrolls := newStubPayrollRepo()
	notifications := newStubNotificationRepo()

	svc := NewDashboardService(employees, expenses, payrolls, notifications, scheduler, discardLogger)
	return svc, employees, expenses, payrolls, notifications
}

func TestDashboardService_Overview_ScopedAggregates(t *testing.T) {
	svc, employees, expenses, payrolls, notifications := newDashboardFixture(t)

	employees.byID["e1"] = &domain.Employee{ID: "e1", ConcessionID: "c1"}
	employees.byID["e2"] = &domain.Employee{ID: "e2", ConcessionID: "c2"}
	expenses.byID["x1"] = &domain.Expense{ID: "x1", ConcessionID: "c1", Amount: 100, Date: time.Now()}
	expenses.byID["x2"] = &domain.Expense{ID: "x2", ConcessionID: "c2", Amount: 900, Date: time.Now()}
	payrolls.byID["p1"] = &domain.Payroll{ID: "p1", EmployeeID: "e1", ConcessionID: "c1", Amount: 2500, Date: time.Now()}
	payrolls.byID["p2"] = &domain.Payroll{ID: "p2", EmployeeID: "e2", ConcessionID: "c2", Amount: 999, Date: time.Now()}
	notifications.byID["n1"] = &domain.Notification{ID: "n1", ConcessionID: "c1"}
	notifications.byID["n2"] = &domain.Notification{ID: "n2", ConcessionID: "c2"}

	member := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}
	overview, err := svc.Overview(context.Background(), member, "", time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if overview.EmployeeCount != 1 {
		t.Errorf("employee count: expected 1, got %d", overview.EmployeeCount)
	}
	if overview.TotalExpenses != 100 {
		t.Errorf("expenses: expected 100, got %v", overview.TotalExpenses)
	}
	if overview.TotalPayroll != 2500 {
		t.Errorf("payroll: expected 2500, got %v", overview.TotalPayroll)
	}
	if overview.UnreadNotifications != 1 {
		t.Errorf("unread: expected 1, got %d", overview.UnreadNotifications)
	}
	if overview.CurrentPayer == nil || overview.CurrentPayer.ID != "u1" {
		t.Errorf("payer: expected u1, got %+v", overview.CurrentPayer)
	}
}

func TestDashboardService_Overview_NoConcessions_Forbidden(t *testing.T) {
	svc, _, _, _, _ := newDashboardFixture(t)

	member := &domain.User{ID: "p1", Role: domain.RolePartner}
	_, err := svc.Overview(context.Background(), member, "", time.Now())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDashboardService_Overview_NoPayerIsNotFatal(t *testing.T) {
	users := newStubUserRepo()
	scheduler := rotation.NewScheduler(rotation.Config{
		Epoch: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
	}, users)
	svc := NewDashboardService(newStubEmployeeRepo(), newStubExpenseRepo(), newStubPayrollRepo(), newStubNotificationRepo(), scheduler, discardLogger)

	owner := &domain.User{ID: "boss", Role: domain.RoleOwner}
	overview, err := svc.Overview(context.Background(), owner, "", time.Now())
	if err != nil {
		t.Fatalf("empty rotation must not fail the overview: %v", err)
	}
	if overview.CurrentPayer != nil {
		t.Fatalf("expected nil payer, got %+v", overview.CurrentPayer)
	}
}
