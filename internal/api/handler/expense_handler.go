package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

type createExpenseRequest struct {
	ConcessionID string  `json:"concession_id" validate:"required"`
	Category     string  `json:"category"      validate:"required,oneof=samples tools payroll materials debris_removal maintenance other"`
	Amount       float64 `json:"amount"        validate:"required,gt=0"`
	Description  string  `json:"description"   validate:"required"`
	Date         string  `json:"date"          validate:"required"`
	FileURL      string  `json:"file_url"`
}

type updateExpenseRequest struct {
	Category    *string  `json:"category"    validate:"omitempty,oneof=samples tools payroll materials debris_removal maintenance other"`
	Amount      *float64 `json:"amount"      validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	FileURL     *string  `json:"file_url"`
}

type expenseListResponse struct {
	Items       []*domain.Expense `json:"items"`
	TotalAmount float64           `json:"total_amount"`
}

// Create books an expense against a concession.
//
// @Summary      Create an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExpenseRequest  true  "Expense details"
// @Success      201   {object}  domain.Expense
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createExpenseRequest
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

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateExpenseInput{
		ConcessionID: req.ConcessionID,
		Category:     req.Category,
		Amount:       req.Amount,
		Description:  req.Description,
		Date:         date,
		FileURL:      req.FileURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one expense.
//
// @Summary      Get an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Expense id"
// @Success      200  {object}  domain.Expense
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	e, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// List returns matching expenses plus their summed amount.
//
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        concession_id  query  string  false  "Narrow to one concession"
// @Param        category       query  string  false  "Expense category"
// @Param        from           query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to             query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  expenseListResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
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

	result, err := h.service.List(c.Request().Context(), actor, ports.ListExpensesInput{
		ConcessionID: c.QueryParam("concession_id"),
		Category:     c.QueryParam("category"),
		From:         from,
		To:           to,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenseListResponse{
		Items:       result.Items,
		TotalAmount: result.TotalAmount,
	})
}

// Update patches an expense.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Expense id"
// @Param        body  body      updateExpenseRequest  true  "Fields to update"
// @Success      200   {object}  domain.Expense
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateExpenseRequest
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

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateExpenseInput{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		FileURL:     req.FileURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes an expense.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Expense id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
