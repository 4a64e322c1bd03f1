package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type payerSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type dashboardResponse struct {
	EmployeeCount       int64                 `json:"employee_count"`
	TotalExpenses       float64               `json:"total_expenses"`
	LatestExpense       *domain.Expense       `json:"latest_expense,omitempty"`
	TotalPayroll        float64               `json:"total_payroll"`
	UnreadNotifications int64                 `json:"unread_notifications"`
	CurrentPayer        *payerSummaryResponse `json:"current_payer"`
}

// Overview returns the headline numbers for the concessions the actor can see.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        concession_id  query  string  false  "Narrow to one concession"
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	overview, err := h.service.Overview(c.Request().Context(), actor, c.QueryParam("concession_id"), time.Now().UTC())
	if err != nil {
		return err
	}

	resp := dashboardResponse{
		EmployeeCount:       overview.EmployeeCount,
		TotalExpenses:       overview.TotalExpenses,
		LatestExpense:       overview.LatestExpense,
		TotalPayroll:        overview.TotalPayroll,
		UnreadNotifications: overview.UnreadNotifications,
	}
	if overview.CurrentPayer != nil {
		resp.CurrentPayer = &payerSummaryResponse{
			ID:   overview.CurrentPayer.ID,
			Name: overview.CurrentPayer.Name,
			Role: overview.CurrentPayer.Role,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
