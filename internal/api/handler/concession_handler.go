package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sismin/backoffice-api/internal/core/ports"
)

type ConcessionHandler struct {
	service ports.ConcessionService
}

func NewConcessionHandler(service ports.ConcessionService) *ConcessionHandler {
	return &ConcessionHandler{service: service}
}

type createConcessionRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateConcessionRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// List returns every concession.
//
// @Summary      List concessions
// @Tags         concessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Concession
// @Failure      401  {object}  map[string]string
// @Router       /v1/concessions [get]
func (h *ConcessionHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	out, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Create registers a new concession. Owner only.
//
// @Summary      Create a concession
// @Tags         concessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createConcessionRequest  true  "Concession details"
// @Success      201   {object}  domain.Concession
// @Failure      403   {object}  map[string]string
// @Router       /v1/concessions [post]
func (h *ConcessionHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createConcessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update patches a concession. Owner only.
//
// @Summary      Update a concession
// @Tags         concessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Concession id"
// @Param        body  body      updateConcessionRequest  true  "Fields to update"
// @Success      200   {object}  domain.Concession
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/concessions/{id} [put]
func (h *ConcessionHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateConcessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateConcessionInput{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Deactivate marks a concession inactive. Owner only.
//
// @Summary      Deactivate a concession
// @Tags         concessions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Concession id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/concessions/{id} [delete]
func (h *ConcessionHandler) Deactivate(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
