package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sismin/backoffice-api/internal/api/metrics"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

type PayrollHandler struct {
	service ports.PayrollService
}

func NewPayrollHandler(service ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

type createPayrollRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Amount     float64 `json:"amount"      validate:"required,gt=0"`
	Date       string  `json:"date"        validate:"required"`
	Method     string  `json:"method"      validate:"required,oneof=cash transfer"`
	Notes      string  `json:"notes"`
}

type updatePayrollRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Date   *string  `json:"date"`
	Method *string  `json:"method" validate:"omitempty,oneof=cash transfer"`
	Notes  *string  `json:"notes"`
}

type payrollListResponse struct {
	Items       []*domain.Payroll `json:"items"`
	TotalAmount float64           `json:"total_amount"`
}

type currentPayerResponse struct {
	Payer *domain.User `json:"payer"`
	Week  string       `json:"week"`
}

// Create records a payroll payment for an employee.
//
// @Summary      Create a payroll entry
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPayrollRequest  true  "Payment details"
// @Success      201   {object}  domain.Payroll
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/payroll [post]
func (h *PayrollHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createPayrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreatePayrollInput{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Date:       date,
		Method:     req.Method,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.PayrollCreatedTotal.WithLabelValues(created.Method).Inc()
	return c.JSON(http.StatusCreated, created)
}

// Get returns one payroll entry.
//
// @Summary      Get a payroll entry
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Payroll id"
// @Success      200  {object}  domain.Payroll
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/payroll/{id} [get]
func (h *PayrollHandler) Get(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// List returns matching payroll entries plus their summed amount.
//
// @Summary      List payroll entries
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id    query  string  false  "Narrow to one employee"
// @Param        concession_id  query  string  false  "Narrow to one concession"
// @Param        from           query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to             query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  payrollListResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/payroll [get]
func (h *PayrollHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	from, err := parseDate(c.QueryParam("from"))
	if err != nil {
		return err
	}
	to, err := parseDate(c.QueryParam("to"))
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), actor, ports.ListPayrollInput{
		EmployeeID:   c.QueryParam("employee_id"),
		ConcessionID: c.QueryParam("concession_id"),
		From:         from,
		To:           to,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payrollListResponse{
		Items:       result.Items,
		TotalAmount: result.TotalAmount,
	})
}

// Update patches a payroll entry.
//
// @Summary      Update a payroll entry
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Payroll id"
// @Param        body  body      updatePayrollRequest  true  "Fields to update"
// @Success      200   {object}  domain.Payroll
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/payroll/{id} [put]
func (h *PayrollHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updatePayrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		date = &parsed
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdatePayrollInput{
		Amount: req.Amount,
		Date:   date,
		Method: req.Method,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes a payroll entry.
//
// @Summary      Delete a payroll entry
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Payroll id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/payroll/{id} [delete]
func (h *PayrollHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CurrentPayer returns the partner responsible for the pay-week containing
// the given date (today when omitted).
//
// @Summary      Current payer for a pay-week
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        date           query  string  false  "Reference date (YYYY-MM-DD, default today)"
// @Param        concession_id  query  string  false  "Concession, for fixed-payer overrides"
// @Success      200  {object}  currentPayerResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/payroll/current-payer [get]
func (h *PayrollHandler) CurrentPayer(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return err
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	payer, err := h.service.CurrentPayer(c.Request().Context(), date, c.QueryParam("concession_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoPayerFound) {
			metrics.PayerLookupsTotal.WithLabelValues("none").Inc()
		}
		return err
	}
	metrics.PayerLookupsTotal.WithLabelValues("found").Inc()
	return c.JSON(http.StatusOK, currentPayerResponse{
		Payer: payer,
		Week:  domain.WeekLabel(date),
	})
}
