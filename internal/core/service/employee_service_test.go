package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

func employeeInput(concessionID string) ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		ConcessionID: concessionID,
		Name:         "Juan Perez",
		CURP:         "PEPJ800101HDFRRN09",
		RFC:          "PEPJ800101AAA",
		NSS:          "12345678901",
		Position:     "operator",
		Salary:       2500,
		Phone:        "555-0100",
	}
}

func TestEmployeeService_Create_GatesOnConcession(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)

	member := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}
	created, err := svc.Create(context.Background(), member, employeeInput("c1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.EmployeeActive {
		t.Errorf("new employee must start active, got %q", created.Status)
	}

	if _, err := svc.Create(context.Background(), member, employeeInput("c2")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign concession, got %v", err)
	}
}

func TestEmployeeService_Get_Forbidden(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)
	repo.byID["e1"] = &domain.Employee{ID: "e1", ConcessionID: "c1", Name: "Juan"}

	outsider := &domain.User{ID: "p2", Role: domain.RoleAdmin, Concessions: []string{"c2"}}
	if _, err := svc.Get(context.Background(), outsider, "e1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestEmployeeService_List_NoConcessions_Forbidden(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo(), discardLogger)
	member := &domain.User{ID: "p1", Role: domain.RolePartner}

	if _, err := svc.List(context.Background(), member, "", ""); !errors.Is(err, domain.ErrNoConcessionAccess) {
		t.Fatalf("expected ErrNoConcessionAccess, got %v", err)
	}
}

func TestEmployeeService_List_SearchWithinScope(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)
	repo.byID["e1"] = &domain.Employee{ID: "e1", ConcessionID: "c1", Name: "Juan Perez", Position: "operator"}
	repo.byID["e2"] = &domain.Employee{ID: "e2", ConcessionID: "c1", Name: "Maria Lopez", Position: "driver"}
	repo.byID["e3"] = &domain.Employee{ID: "e3", ConcessionID: "c2", Name: "Juan Gomez", Position: "operator"}

	member := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}
	out, err := svc.List(context.Background(), member, "", "juan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "e1" {
		t.Fatalf("search must stay inside scope, got %+v", out)
	}
}

func TestEmployeeService_Delete_Forbidden(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)
	repo.byID["e1"] = &domain.Employee{ID: "e1", ConcessionID: "c1"}

	outsider := &domain.User{ID: "p2", Role: domain.RolePartner, Concessions: []string{"c2"}}
	if err := svc.Delete(context.Background(), outsider, "e1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, ok := repo.byID["e1"]; !ok {
		t.Fatal("forbidden delete must not remove the employee")
	}
}

func TestEmployeeService_Update_PartialPatch(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)
	repo.byID["e1"] = &domain.Employee{ID: "e1", ConcessionID: "c1", Name: "Juan", Salary: 2500, Status: domain.EmployeeActive}

	owner := &domain.User{ID: "boss", Role: domain.RoleOwner}
	salary := 3000.0
	status := domain.EmployeeInactive
	updated, err := svc.Update(context.Background(), owner, "e1", ports.UpdateEmployeeInput{Salary: &salary, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Salary != 3000 || updated.Status != domain.EmployeeInactive {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Name != "Juan" {
		t.Errorf("untouched field changed: %q", updated.Name)
	}
}
