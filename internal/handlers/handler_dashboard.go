package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the aggregated dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardService
}

func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.DashboardService) {
	h := &dashboardHandler{dashboardService: svc}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get dashboard
// @Description Returns the six headline totals plus the most recently created expenses and salaries
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	start := time.Now()

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Dashboard not found", "Failed to load dashboard")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Dashboard computed", slog.Duration("took", time.Since(start)))
	c.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToDashboardResponse(*dashboard)})
}
