package weather

import (
	"net/url"
	"strconv"
	"strings"
)

var defaultDailyMetrics = []string{
	"precipitation_sum",
	"temperature_2m_min",
	"temperature_2m_max",
}

// DefaultDailyMetrics returns the metrics requested for every day.
func DefaultDailyMetrics() []string {
	return append([]string(nil), defaultDailyMetrics...)
}

// Location is the fixed place the dashboard reports on. It is built once at
// startup and cannot be changed afterwards.
type Location struct {
	name      string
	latitude  float64
	longitude float64
	timezone  string
	metrics   []string
}

func NewLocation(name string, latitude, longitude float64, timezone string, metrics ...string) Location {
	if len(metrics) == 0 {
		metrics = defaultDailyMetrics
	}
	return Location{
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		timezone:  timezone,
		metrics:   append([]string(nil), metrics...),
	}
}

func (l Location) Name() string       { return l.name }
func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }
func (l Location) Timezone() string   { return l.timezone }

func (l Location) DailyMetrics() []string {
	return append([]string(nil), l.metrics...)
}

// QueryParameters is the full parameter set of one archive request.
type QueryParameters struct {
	Latitude     float64
	Longitude    float64
	StartDate    string
	EndDate      string
	DailyMetrics []string
	Timezone     string
}

func NewQueryParameters(loc Location, r DateRange) QueryParameters {
	return QueryParameters{
		Latitude:     loc.Latitude(),
		Longitude:    loc.Longitude(),
		StartDate:    r.Start.Format(DateLayout),
		EndDate:      r.End.Format(DateLayout),
		DailyMetrics: loc.DailyMetrics(),
		Timezone:     loc.Timezone(),
	}
}

// Values encodes the parameters the way the archive API expects them.
func (p QueryParameters) Values() url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	q.Set("start_date", p.StartDate)
	q.Set("end_date", p.EndDate)
	q.Set("daily", strings.Join(p.DailyMetrics, ","))
	q.Set("timezone", p.Timezone)
	return q
}
