package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sismin/backoffice-api/internal/core/ports"
)

type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	ConcessionID string  `json:"concession_id" validate:"required"`
	Name         string  `json:"name"          validate:"required"`
	CURP         string  `json:"curp"          validate:"required"`
	RFC          string  `json:"rfc"`
	NSS          string  `json:"nss"`
	Position     string  `json:"position"      validate:"required"`
	Salary       float64 `json:"salary"        validate:"required,gt=0"`
	Phone        string  `json:"phone"`
}

type updateEmployeeRequest struct {
	Name     *string  `json:"name"`
	CURP     *string  `json:"curp"`
	RFC      *string  `json:"rfc"`
	NSS      *string  `json:"nss"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"   validate:"omitempty,gt=0"`
	Phone    *string  `json:"phone"`
	Status   *string  `json:"status"   validate:"omitempty,oneof=active inactive"`
}

// Create registers an employee under a concession.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateEmployeeInput{
		ConcessionID: req.ConcessionID,
		Name:         req.Name,
		CURP:         req.CURP,
		RFC:          req.RFC,
		NSS:          req.NSS,
		Position:     req.Position,
		Salary:       req.Salary,
		Phone:        req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
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

// List returns the employees visible to the actor.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        concession_id  query  string  false  "Narrow to one concession"
// @Param        search         query  string  false  "Partial match on name, phone, or position"
// @Success      200  {array}   domain.Employee
// @Failure      403  {object}  map[string]string
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	out, err := h.service.List(c.Request().Context(), actor, c.QueryParam("concession_id"), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Update patches an employee.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  domain.Employee
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateEmployeeInput{
		Name:     req.Name,
		CURP:     req.CURP,
		RFC:      req.RFC,
		NSS:      req.NSS,
		Position: req.Position,
		Salary:   req.Salary,
		Phone:    req.Phone,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
