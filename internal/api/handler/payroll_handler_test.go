package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

type stubPayrollService struct {
	currentPayerFn func(ctx context.Context, date time.Time, concessionID string) (*domain.User, error)
}

func (s *stubPayrollService) Create(context.Context, *domain.User, ports.CreatePayrollInput) (*domain.Payroll, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPayrollService) Get(context.Context, *domain.User, string) (*domain.Payroll, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPayrollService) List(context.Context, *domain.User, ports.ListPayrollInput) (*ports.PayrollListResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPayrollService) Update(context.Context, *domain.User, string, ports.UpdatePayrollInput) (*domain.Payroll, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPayrollService) Delete(context.Context, *domain.User, string) error {
	return errors.New("not implemented")
}

func (s *stubPayrollService) CurrentPayer(ctx context.Context, date time.Time, concessionID string) (*domain.User, error) {
	return s.currentPayerFn(ctx, date, concessionID)
}

func TestPayrollHandler_CurrentPayer_ExplicitDate(t *testing.T) {
	e := newTestEcho()
	stub := &stubPayrollService{
		currentPayerFn: func(ctx context.Context, date time.Time, concessionID string) (*domain.User, error) {
			want := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
			if !date.Equal(want) {
				t.Fatalf("expected parsed date %v, got %v", want, date)
			}
			if concessionID != "c1" {
				t.Fatalf("expected concession c1, got %q", concessionID)
			}
			return &domain.User{ID: "u2", Name: "Maria"}, nil
		},
	}
	handler := NewPayrollHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/payroll/current-payer?date=2025-11-05&concession_id=c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "p1", Role: domain.RolePartner, Concessions: []string{"c1"}})

	if err := handler.CurrentPayer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["week"] != "2025-W45" {
		t.Fatalf("expected ISO week label, got %v", resp["week"])
	}
}

func TestPayrollHandler_CurrentPayer_BadDate(t *testing.T) {
	e := newTestEcho()
	handler := NewPayrollHandler(&stubPayrollService{
		currentPayerFn: func(context.Context, time.Time, string) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/payroll/current-payer?date=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "p1", Role: domain.RolePartner})

	err := handler.CurrentPayer(c)
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPayrollHandler_CurrentPayer_NoPayer(t *testing.T) {
	e := newTestEcho()
	handler := NewPayrollHandler(&stubPayrollService{
		currentPayerFn: func(context.Context, time.Time, string) (*domain.User, error) {
			return nil, domain.ErrNoPayerFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/payroll/current-payer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "p1", Role: domain.RolePartner})

	err := handler.CurrentPayer(c)
	if !errors.Is(err, domain.ErrNoPayerFound) {
		t.Fatalf("expected ErrNoPayerFound to propagate, got %v", err)
	}
}
