package handlers

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"weerdata/weather-dashboard/internal/db/weatherquery"
	"weerdata/weather-dashboard/internal/service"
)

const defaultRecentQueries = 20

type DashboardHandler struct {
	dashboardService service.DashboardService
	queryRepo        weatherquery.Repository
	timeout          time.Duration
}

// NewDashboardHandler creates the handler. queryRepo may be nil when the run
// audit log is disabled; a zero timeout leaves request contexts untouched.
func NewDashboardHandler(dashboardService service.DashboardService, queryRepo weatherquery.Repository, timeout time.Duration) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		queryRepo:        queryRepo,
		timeout:          timeout,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.GetDashboardPage)
	router.GET("/ping", h.Ping)

	v1 := router.Group("/api/v1")
	v1.GET("/weather", h.GetDashboard)
	v1.GET("/queries", h.GetRecentQueries)
}

// GetDashboardPage rebuilds the whole dashboard for the dates in the query
// string. The date pickers resubmit on every change.
func (h *DashboardHandler) GetDashboardPage(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	d := h.dashboardService.BuildDashboard(ctx, c.Query("start_date"), c.Query("end_date"))

	page := dashboardPage{Dashboard: d}
	if d.HasChart() {
		cfg, err := d.Chart.ChartJSJSON()
		if err != nil {
			log.Error().Err(err).Str("run_id", d.RunID).Msg("failed to encode chart")
		} else {
			page.ChartConfig = template.JS(cfg)
		}
	}

	c.HTML(http.StatusOK, "dashboard.html", page)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query DashboardParams
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, http.StatusBadRequest, "start_date and end_date must be dates in YYYY-MM-DD format")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	d := h.dashboardService.BuildDashboard(ctx, query.StartDate, query.EndDate)

	switch d.State {
	case service.StateInvalidInput:
		alert, _ := d.FirstError()
		respondWithError(c, http.StatusBadRequest, alert.Message)
	case service.StateFetchFailed:
		alert, _ := d.FirstError()
		respondWithError(c, http.StatusBadGateway, alert.Message)
	default:
		c.JSON(http.StatusOK, d)
	}
}

func (h *DashboardHandler) GetRecentQueries(c *gin.Context) {
	if h.queryRepo == nil {
		respondWithError(c, http.StatusNotFound, "query log is not enabled")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentQueries)))
	if err != nil || limit <= 0 {
		respondWithError(c, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	queries, err := h.queryRepo.GetRecentDashboardQueries(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to read query log")
		respondWithError(c, http.StatusInternalServerError, "failed to read query log: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, queries)
}

func (h *DashboardHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

func (h *DashboardHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
