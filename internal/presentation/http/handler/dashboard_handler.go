package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/application/service"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard, report and calendar HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CustomerStats handles GET /api/customers/:id/stats
func (h *DashboardHandler) CustomerStats(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.dashboardService.GetCustomerStats(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ReportMetrics handles GET /api/reports/metrics
func (h *DashboardHandler) ReportMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetReportMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Calendar handles GET /api/calendar with optional year and month query
// params, defaulting to the current month.
func (h *DashboardHandler) Calendar(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid month")
			return
		}
		month = time.Month(parsed)
	}

	days, err := h.dashboardService.GetCalendar(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
