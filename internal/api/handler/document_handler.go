package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sismin/backoffice-api/internal/core/ports"
)

type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type createDocumentRequest struct {
	ConcessionID string `json:"concession_id"`
	EmployeeID   string `json:"employee_id"`
	IsGlobal     bool   `json:"is_global"`
	Category     string `json:"category"  validate:"required"`
	Subcategory  string `json:"subcategory"`
	Notes        string `json:"notes"`
	FileURL      string `json:"file_url"  validate:"required,url"`
	FileName     string `json:"file_name" validate:"required"`
	DueDate      string `json:"due_date"`
}

type updateDocumentRequest struct {
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Notes       *string `json:"notes"`
	DueDate     *string `json:"due_date"`
}

// Create files a document.
//
// @Summary      Create a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDocumentRequest  true  "Document details"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			return err
		}
		dueDate = &parsed
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateDocumentInput{
		ConcessionID: req.ConcessionID,
		EmployeeID:   req.EmployeeID,
		IsGlobal:     req.IsGlobal,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Notes:        req.Notes,
		FileURL:      req.FileURL,
		FileName:     req.FileName,
		DueDate:      dueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get returns one document.
//
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id"
// @Success      200  {object}  domain.Document
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	d, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// List returns the documents visible to the actor.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        concession_id  query  string  false  "Narrow to one concession"
// @Param        employee_id    query  string  false  "Documents of one employee"
// @Param        category       query  string  false  "Document category"
// @Param        global         query  string  false  "Only company-wide documents (true/false)"
// @Success      200  {array}   domain.Document
// @Failure      403  {object}  map[string]string
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	out, err := h.service.List(c.Request().Context(), actor, ports.ListDocumentsInput{
		ConcessionID: c.QueryParam("concession_id"),
		EmployeeID:   c.QueryParam("employee_id"),
		Category:     c.QueryParam("category"),
		GlobalOnly:   c.QueryParam("global") == "true",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Update patches a document's metadata.
//
// @Summary      Update a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Document id"
// @Param        body  body      updateDocumentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Document
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/documents/{id} [put]
func (h *DocumentHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			return err
		}
		dueDate = &parsed
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateDocumentInput{
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Notes:       req.Notes,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes a document.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Document id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
