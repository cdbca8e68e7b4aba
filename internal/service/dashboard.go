package service

import (
	"weerdata/weather-dashboard/internal/chart"
	"weerdata/weather-dashboard/internal/weather"
)

// State is the presentation state of one dashboard run.
type State string

const (
	StateInvalidInput State = "invalid_input"
	StateFetchFailed  State = "fetch_failed"
	StateMalformed    State = "malformed"
	StateEmpty        State = "empty"
	StateReady        State = "ready"
)

type AlertLevel string

const (
	AlertError   AlertLevel = "error"
	AlertWarning AlertLevel = "warning"
	AlertInfo    AlertLevel = "info"
)

const (
	MsgFetchFailedInfo = "Data could not be retrieved. Check the error message above."
	MsgMalformed       = "Unexpected data format received from the API."
	MsgEmpty           = "No data available for the selected period (the API returned an empty daily series)."
)

type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}

// Dashboard is everything the page needs for one run. Table and Chart are
// only set in StateReady.
type Dashboard struct {
	RunID       string                `json:"run_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	State       State                 `json:"state"`
	ErrorKind   weather.Kind          `json:"error_kind,omitempty"`
	Alerts      []Alert               `json:"alerts"`
	Table       *weather.WeatherTable `json:"table,omitempty"`
	Chart       *chart.Spec           `json:"chart,omitempty"`
}

func (d *Dashboard) alert(level AlertLevel, message string) {
	d.Alerts = append(d.Alerts, Alert{Level: level, Message: message})
}

// HasChart reports whether a chart should be drawn.
func (d Dashboard) HasChart() bool {
	return d.State == StateReady && d.Chart != nil
}

// RowCount is the number of table rows, zero outside StateReady.
func (d Dashboard) RowCount() int {
	return d.Table.Len()
}

// FirstError returns the first error alert, if any.
func (d Dashboard) FirstError() (Alert, bool) {
	for _, a := range d.Alerts {
		if a.Level == AlertError {
			return a, true
		}
	}
	return Alert{}, false
}
