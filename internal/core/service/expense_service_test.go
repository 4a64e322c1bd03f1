package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

var expenseDate = time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)

func expenseInput(concessionID string) ports.CreateExpenseInput {
	return ports.CreateExpenseInput{
		ConcessionID: concessionID,
		Category:     domain.ExpenseTools,
		Amount:       350,
		Description:  "drill bits",
		Date:         expenseDate,
	}
}

func TestExpenseService_Create_Success(t *testing.T) {
	repo := newStubExpenseRepo()
	svc := NewExpenseService(repo, discardLogger)
	actor := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}

	created, err := svc.Create(context.Background(), actor, expenseInput("c1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedBy != "p1" {
		t.Errorf("created_by wrong: %q", created.CreatedBy)
	}
	if created.DeletedAt != nil {
		t.Error("fresh expense must not be deleted")
	}
}

func TestExpenseService_Create_MissingConcession(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), discardLogger)
	actor := &domain.User{ID: "boss", Role: domain.RoleOwner}

	if _, err := svc.Create(context.Background(), actor, expenseInput("")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for missing concession, got %v", err)
	}
}

func TestExpenseService_Create_ForbiddenConcession(t *testing.T) {
	repo := newStubExpenseRepo()
	svc := NewExpenseService(repo, discardLogger)
	actor := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}

	if _, err := svc.Create(context.Background(), actor, expenseInput("c2")); !errors.Is(err, domain.ErrConcessionNotAllowed) {
		t.Fatalf("expected ErrConcessionNotAllowed, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("forbidden create must have no side effect")
	}
}

func TestExpenseService_List_ScopesAndTotals(t *testing.T) {
	repo := newStubExpenseRepo()
	svc := NewExpenseService(repo, discardLogger)
	owner := &domain.User{ID: "boss", Role: domain.RoleOwner}

	for _, c := range []struct {
		concession string
		amount     float64
	}{{"c1", 100}, {"c1", 250}, {"c2", 999}} {
		input := expenseInput(c.concession)
		input.Amount = c.amount
		if _, err := svc.Create(context.Background(), owner, input); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	member := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}
	result, err := svc.List(context.Background(), member, ports.ListExpensesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 expenses in scope, got %d", len(result.Items))
	}
	if result.TotalAmount != 350 {
		t.Errorf("expected total 350, got %v", result.TotalAmount)
	}
}

func TestExpenseService_List_NoConcessions_EmptyResult(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), discardLogger)
	member := &domain.User{ID: "p1", Role: domain.RolePartner}

	result, err := svc.List(context.Background(), member, ports.ListExpensesInput{})
	if err != nil {
		t.Fatalf("list must soft-fail to empty, got %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(result.Items))
	}
}

func TestExpenseService_List_RequestedConcessionForbidden(t *testing.T) {
	svc := NewExpenseService(newStubExpenseRepo(), discardLogger)
	member := &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}}

	_, err := svc.List(context.Background(), member, ports.ListExpensesInput{ConcessionID: "c2"})
	if !errors.Is(err, domain.ErrConcessionNotAllowed) {
		t.Fatalf("explicit request outside scope must hard-fail, got %v", err)
	}
}

func TestExpenseService_Delete_SoftDelete(t *testing.T) {
	repo := newStubExpenseRepo()
	svc := NewExpenseService(repo, discardLogger)
	owner := &domain.User{ID: "boss", Role: domain.RoleOwner}

	created, err := svc.Create(context.Background(), owner, expenseInput("c1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if repo.byID[created.ID].DeletedAt == nil {
		t.Fatal("expense must be soft-deleted")
	}
	if _, err := svc.Get(context.Background(), owner, created.ID); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("deleted expense must read as not found, got %v", err)
	}

	result, err := svc.List(context.Background(), owner, ports.ListExpensesInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatal("deleted expense must not appear in listings")
	}
}

func TestExpenseService_Update_Forbidden(t *testing.T) {
	repo := newStubExpenseRepo()
	svc := NewExpenseService(repo, discardLogger)
	owner := &domain.User{ID: "boss", Role: domain.RoleOwner}

	created, err := svc.Create(context.Background(), owner, expenseInput("c1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	outsider := &domain.User{ID: "p2", Role: domain.RoleAdmin, Concessions: []string{"c2"}}
	amount := 1.0
	if _, err := svc.Update(context.Background(), outsider, created.ID, ports.UpdateExpenseInput{Amount: &amount}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if repo.byID[created.ID].Amount != 350 {
		t.Fatal("forbidden update must not mutate the record")
	}
}
