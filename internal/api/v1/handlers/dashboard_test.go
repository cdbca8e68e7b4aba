package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"weerdata/weather-dashboard/internal/api/v1/handlers"
	"weerdata/weather-dashboard/internal/chart"
	"weerdata/weather-dashboard/internal/db/weatherquery"
	"weerdata/weather-dashboard/internal/mocks"
	"weerdata/weather-dashboard/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"weerdata/weather-dashboard/internal/service"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockDashboardService
	mockRepo    *mocks.MockRepository
	router      *gin.Engine
}

func ptr(v float64) *float64 {
	return &v
}

func (s *DashboardHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockDashboardService(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.router = handlers.NewRouter(handlers.NewDashboardHandler(s.mockService, s.mockRepo, 5*time.Second))
}

func (s *DashboardHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *DashboardHandlerTestSuite) decodeError(recorder *httptest.ResponseRecorder) handlers.Error {
	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.Require().NoError(err)
	s.Require().Len(response.Errors, 1)
	return response.Errors[0]
}

func baseDashboard(state service.State) service.Dashboard {
	return service.Dashboard{
		RunID:       "run-1",
		Title:       "Weather data Hoofddorp",
		Description: "View the weather in Hoofddorp over a selected period.",
		Location:    "Hoofddorp",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-03",
		State:       state,
		Alerts:      []service.Alert{},
	}
}

func readyDashboard(t *testing.T) service.Dashboard {
	table, err := weather.BuildTable(&weather.DailySeries{
		Time:             []string{"2025-04-01", "2025-04-02", "2025-04-03"},
		PrecipitationSum: []*float64{ptr(0), ptr(1.2), ptr(0)},
		Temperature2mMin: []*float64{ptr(5), ptr(6), ptr(4)},
		Temperature2mMax: []*float64{ptr(12), ptr(13), ptr(11)},
	})
	if err != nil {
		t.Fatal(err)
	}
	d := baseDashboard(service.StateReady)
	d.Table = table
	d.Chart = chart.Build(table)
	return d
}

func (s *DashboardHandlerTestSuite) TestDashboardPageReady() {
	s.mockService.On("BuildDashboard", mock.Anything, "2025-04-01", "2025-04-03").Return(readyDashboard(s.T()))

	recorder := s.serve(http.MethodGet, "/?start_date=2025-04-01&end_date=2025-04-03")

	s.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	s.Contains(body, "<h1>Weather data Hoofddorp</h1>")
	s.Contains(body, `value="2025-04-01"`)
	s.Contains(body, `id="weather-table"`)
	s.Contains(body, "<td>2025-04-02</td><td>1.2</td><td>6.0</td><td>13.0</td>")
	s.Contains(body, `<canvas id="weather-chart">`)
	s.Contains(body, `"yAxisID":"precipitation"`)
	s.NotContains(body, `role="alert"`)
}

func (s *DashboardHandlerTestSuite) TestDashboardPageDefaultsAreLeftToService() {
	d := baseDashboard(service.StateEmpty)
	d.Alerts = []service.Alert{{Level: service.AlertWarning, Message: service.MsgEmpty}}
	s.mockService.On("BuildDashboard", mock.Anything, "", "").Return(d)

	recorder := s.serve(http.MethodGet, "/")

	s.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	s.Contains(body, `class="alert alert-warning"`)
	s.Contains(body, "No data available for the selected period")
	s.NotContains(body, "<canvas")
	s.NotContains(body, `id="weather-table"`)
}

func (s *DashboardHandlerTestSuite) TestDashboardPageInvalidInput() {
	d := baseDashboard(service.StateInvalidInput)
	d.Alerts = []service.Alert{{Level: service.AlertError, Message: weather.MsgStartAfterEnd}}
	s.mockService.On("BuildDashboard", mock.Anything, "2025-04-05", "2025-04-01").Return(d)

	recorder := s.serve(http.MethodGet, "/?start_date=2025-04-05&end_date=2025-04-01")

	s.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	s.Contains(body, `class="alert alert-error"`)
	s.Contains(body, "Start date must not be after the end date.")
	s.NotContains(body, "<canvas")
}

func (s *DashboardHandlerTestSuite) TestDashboardPageFetchFailed() {
	d := baseDashboard(service.StateFetchFailed)
	d.Alerts = []service.Alert{
		{Level: service.AlertError, Message: "archive API returned status code 400\nAPI error: bad range"},
		{Level: service.AlertInfo, Message: service.MsgFetchFailedInfo},
	}
	s.mockService.On("BuildDashboard", mock.Anything, "2025-04-01", "2025-04-03").Return(d)

	recorder := s.serve(http.MethodGet, "/?start_date=2025-04-01&end_date=2025-04-03")

	body := recorder.Body.String()
	s.Contains(body, "bad range")
	s.Contains(body, `class="alert alert-info"`)
	s.NotContains(body, "<canvas")
}

func (s *DashboardHandlerTestSuite) TestGetDashboardJSON() {
	s.mockService.On("BuildDashboard", mock.Anything, "2025-04-01", "2025-04-03").Return(readyDashboard(s.T()))

	recorder := s.serve(http.MethodGet, "/api/v1/weather?start_date=2025-04-01&end_date=2025-04-03")

	s.Equal(http.StatusOK, recorder.Code)

	var response struct {
		State string `json:"state"`
		Table struct {
			Rows []struct {
				Date            string  `json:"date"`
				PrecipitationMm float64 `json:"precipitation_mm"`
			} `json:"rows"`
		} `json:"table"`
		Chart struct {
			Series []struct {
				Values []float64 `json:"values"`
			} `json:"series"`
		} `json:"chart"`
	}
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("ready", response.State)
	s.Require().Len(response.Table.Rows, 3)
	s.Equal("2025-04-02", response.Table.Rows[1].Date)
	s.Equal(1.2, response.Table.Rows[1].PrecipitationMm)
	s.Require().Len(response.Chart.Series, 3)
	s.Len(response.Chart.Series[2].Values, 3)
}

func (s *DashboardHandlerTestSuite) TestGetDashboardJSONBadDateFormat() {
	recorder := s.serve(http.MethodGet, "/api/v1/weather?start_date=01-04-2025")

	s.Equal(http.StatusBadRequest, recorder.Code)
	apiErr := s.decodeError(recorder)
	s.Equal("BAD_REQUEST", apiErr.Code)
	s.Contains(apiErr.Detail, "YYYY-MM-DD")

	s.mockService.AssertNotCalled(s.T(), "BuildDashboard", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DashboardHandlerTestSuite) TestGetDashboardJSONInvalidRange() {
	d := baseDashboard(service.StateInvalidInput)
	d.Alerts = []service.Alert{{Level: service.AlertError, Message: weather.MsgStartAfterEnd}}
	s.mockService.On("BuildDashboard", mock.Anything, "2025-04-05", "2025-04-01").Return(d)

	recorder := s.serve(http.MethodGet, "/api/v1/weather?start_date=2025-04-05&end_date=2025-04-01")

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal(weather.MsgStartAfterEnd, s.decodeError(recorder).Detail)
}

func (s *DashboardHandlerTestSuite) TestGetDashboardJSONFetchFailed() {
	d := baseDashboard(service.StateFetchFailed)
	d.Alerts = []service.Alert{
		{Level: service.AlertError, Message: "failed to fetch weather data: connection refused"},
		{Level: service.AlertInfo, Message: service.MsgFetchFailedInfo},
	}
	s.mockService.On("BuildDashboard", mock.Anything, "", "").Return(d)

	recorder := s.serve(http.MethodGet, "/api/v1/weather")

	s.Equal(http.StatusBadGateway, recorder.Code)
	apiErr := s.decodeError(recorder)
	s.Equal("BAD_GATEWAY", apiErr.Code)
	s.Contains(apiErr.Detail, "connection refused")
}

func (s *DashboardHandlerTestSuite) TestGetRecentQueries() {
	s.mockRepo.On("GetRecentDashboardQueries", mock.Anything, 2).Return([]weatherquery.DashboardQuery{
		{ID: 2, RunID: "run-2", State: "ready", RowCount: 20},
		{ID: 1, RunID: "run-1", State: "empty"},
	}, nil)

	recorder := s.serve(http.MethodGet, "/api/v1/queries?limit=2")

	s.Equal(http.StatusOK, recorder.Code)
	var queries []weatherquery.DashboardQuery
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&queries))
	s.Require().Len(queries, 2)
	s.Equal("run-2", queries[0].RunID)
}

func (s *DashboardHandlerTestSuite) TestGetRecentQueriesErrors() {
	recorder := s.serve(http.MethodGet, "/api/v1/queries?limit=abc")
	s.Equal(http.StatusBadRequest, recorder.Code)

	s.mockRepo.On("GetRecentDashboardQueries", mock.Anything, 20).Return(nil, errors.New("connection error"))
	recorder = s.serve(http.MethodGet, "/api/v1/queries")
	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Contains(s.decodeError(recorder).Detail, "connection error")
}

func (s *DashboardHandlerTestSuite) TestGetRecentQueriesDisabled() {
	router := handlers.NewRouter(handlers.NewDashboardHandler(s.mockService, nil, 0))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/queries", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Contains(s.decodeError(recorder).Detail, "not enabled")
}

func (s *DashboardHandlerTestSuite) TestPing() {
	recorder := s.serve(http.MethodGet, "/ping")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"message":"pong"}`, recorder.Body.String())
}

func (s *DashboardHandlerTestSuite) TestWrongPath() {
	recorder := s.serve(http.MethodGet, "/forecast")

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("NOT_FOUND", s.decodeError(recorder).Code)
}

func (s *DashboardHandlerTestSuite) TestWrongMethod() {
	recorder := s.serve(http.MethodPost, "/api/v1/weather")

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.Equal("METHOD_NOT_ALLOWED", s.decodeError(recorder).Code)
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
