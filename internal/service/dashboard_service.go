package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"weerdata/weather-dashboard/internal/chart"
	"weerdata/weather-dashboard/internal/db/weatherquery"
	"weerdata/weather-dashboard/internal/providers"
	"weerdata/weather-dashboard/internal/weather"
)

type DashboardService interface {
	// BuildDashboard runs the whole pipeline for one date selection. Empty
	// dates fall back to the configured defaults. It never returns an error:
	// every failure ends up as an alert on the dashboard.
	BuildDashboard(ctx context.Context, startDate, endDate string) Dashboard
	Defaults() (startDate, endDate string)
}

type dashboardService struct {
	archiveAPI       providers.ArchiveAPIService
	weatherQueryRepo weatherquery.Repository
	location         weather.Location
	defaultStart     string
	defaultEnd       string
}

// NewDashboardService wires the pipeline. repo may be nil, in which case runs
// are not audited.
func NewDashboardService(
	archiveAPI providers.ArchiveAPIService,
	repo weatherquery.Repository,
	location weather.Location,
	defaultStart, defaultEnd string,
) DashboardService {
	return &dashboardService{
		archiveAPI:       archiveAPI,
		weatherQueryRepo: repo,
		location:         location,
		defaultStart:     defaultStart,
		defaultEnd:       defaultEnd,
	}
}

func (s *dashboardService) Defaults() (string, string) {
	return s.defaultStart, s.defaultEnd
}

func (s *dashboardService) BuildDashboard(ctx context.Context, startDate, endDate string) Dashboard {
	if startDate == "" {
		startDate = s.defaultStart
	}
	if endDate == "" {
		endDate = s.defaultEnd
	}

	d := Dashboard{
		RunID:       uuid.NewString(),
		Title:       fmt.Sprintf("Weather data %s", s.location.Name()),
		Description: fmt.Sprintf("View the weather in %s over a selected period.", s.location.Name()),
		Location:    s.location.Name(),
		StartDate:   startDate,
		EndDate:     endDate,
		Alerts:      []Alert{},
	}

	logger := log.With().Str("run_id", d.RunID).Str("start_date", startDate).Str("end_date", endDate).Logger()

	s.run(ctx, &d, logger)

	logger.Info().Str("state", string(d.State)).Int("rows", d.RowCount()).Msg("dashboard built")
	s.audit(ctx, d, logger)

	return d
}

func (s *dashboardService) run(ctx context.Context, d *Dashboard, logger zerolog.Logger) {
	dateRange, err := collectInput(d.StartDate, d.EndDate)
	if err != nil {
		d.State = StateInvalidInput
		d.ErrorKind = weather.KindInput
		d.alert(AlertError, err.Error())
		return
	}

	params := weather.NewQueryParameters(s.location, dateRange)

	resp, err := s.archiveAPI.FetchDaily(ctx, params)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch weather data")
		d.State = StateFetchFailed
		d.ErrorKind = kindOf(err)
		d.alert(AlertError, err.Error())
		d.alert(AlertInfo, MsgFetchFailedInfo)
		return
	}

	if !resp.HasDaily() {
		logger.Warn().Msg("archive response has no daily object")
		d.State = StateMalformed
		d.ErrorKind = weather.KindDecode
		d.alert(AlertWarning, MsgMalformed)
		return
	}

	if len(resp.Daily.Time) == 0 {
		d.State = StateEmpty
		d.alert(AlertWarning, MsgEmpty)
		return
	}

	table, err := weather.BuildTable(resp.Daily)
	if err != nil {
		logger.Warn().Err(err).Msg("archive response could not be tabulated")
		d.State = StateMalformed
		d.ErrorKind = weather.KindDecode
		d.alert(AlertWarning, MsgMalformed)
		return
	}

	d.State = StateReady
	d.Table = table
	d.Chart = chart.Build(table)
}

func (s *dashboardService) audit(ctx context.Context, d Dashboard, logger zerolog.Logger) {
	if s.weatherQueryRepo == nil {
		return
	}

	err := s.weatherQueryRepo.LogDashboardQuery(ctx, &weatherquery.DashboardQuery{
		RunID:     d.RunID,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		State:     string(d.State),
		ErrorKind: string(d.ErrorKind),
		RowCount:  d.RowCount(),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to log dashboard query")
	}
}

// collectInput parses both dates and checks their order before any network call.
func collectInput(startDate, endDate string) (weather.DateRange, error) {
	start, err := weather.ParseDate(startDate)
	if err != nil {
		return weather.DateRange{}, err
	}
	end, err := weather.ParseDate(endDate)
	if err != nil {
		return weather.DateRange{}, err
	}
	return weather.NewDateRange(start, end)
}

func kindOf(err error) weather.Kind {
	if kind, ok := weather.KindOf(err); ok {
		return kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return weather.KindTransport
	}
	return weather.KindDecode
}
