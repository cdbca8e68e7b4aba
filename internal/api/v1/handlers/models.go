package handlers

import (
	"html/template"

	"weerdata/weather-dashboard/internal/service"
)

// DashboardParams holds the two date pickers. Empty values fall back to the
// configured defaults.
type DashboardParams struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

type dashboardPage struct {
	service.Dashboard
	ChartConfig template.JS
}
