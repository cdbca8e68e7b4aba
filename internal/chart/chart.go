// Package chart describes the dual-axis weather chart: temperature lines on
// the left axis and precipitation bars on the right axis.
package chart

import (
	"encoding/json"

	"weerdata/weather-dashboard/internal/weather"
)

type SeriesKind string

const (
	SeriesLine SeriesKind = "line"
	SeriesBar  SeriesKind = "bar"
)

const (
	AxisTemperature   = "temperature"
	AxisPrecipitation = "precipitation"

	ColorBlue  = "#1f77b4"
	ColorRed   = "#d62728"
	ColorGreen = "#2ca02c"
)

type Axis struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Position string   `json:"position"`
	Color    string   `json:"color"`
	Min      *float64 `json:"min,omitempty"`
}

type Series struct {
	Kind         SeriesKind `json:"kind"`
	Label        string     `json:"label"`
	AxisID       string     `json:"axis_id"`
	Color        string     `json:"color"`
	Opacity      float64    `json:"opacity"`
	PointMarkers bool       `json:"point_markers"`
	InLegend     bool       `json:"in_legend"`
	Values       []*float64 `json:"values"`
}

type Spec struct {
	Labels         []string `json:"labels"`
	XAxisTitle     string   `json:"x_axis_title"`
	TickRotation   int      `json:"tick_rotation"`
	LegendPosition string   `json:"legend_position"`
	Axes           []Axis   `json:"axes"`
	Series         []Series `json:"series"`
}

// Build returns nil for an empty table; there is nothing to draw.
func Build(table *weather.WeatherTable) *Spec {
	if table.Len() == 0 {
		return nil
	}

	zero := 0.0
	return &Spec{
		Labels:         table.DateLabels(),
		XAxisTitle:     weather.LabelDate,
		TickRotation:   45,
		LegendPosition: "upper left",
		Axes: []Axis{
			{ID: AxisTemperature, Title: "Temperature (°C)", Position: "left", Color: ColorRed},
			{ID: AxisPrecipitation, Title: weather.LabelPrecipitation, Position: "right", Color: ColorGreen, Min: &zero},
		},
		Series: []Series{
			{
				Kind:         SeriesLine,
				Label:        weather.LabelMinTemp,
				AxisID:       AxisTemperature,
				Color:        ColorBlue,
				Opacity:      1,
				PointMarkers: true,
				InLegend:     true,
				Values:       table.MinTemperatures(),
			},
			{
				Kind:         SeriesLine,
				Label:        weather.LabelMaxTemp,
				AxisID:       AxisTemperature,
				Color:        ColorRed,
				Opacity:      1,
				PointMarkers: true,
				InLegend:     true,
				Values:       table.MaxTemperatures(),
			},
			{
				Kind:    SeriesBar,
				Label:   weather.LabelPrecipitation,
				AxisID:  AxisPrecipitation,
				Color:   ColorGreen,
				Opacity: 0.5,
				Values:  table.Precipitation(),
			},
		},
	}
}

// SeriesByKind returns the series of one kind in drawing order.
func (s *Spec) SeriesByKind(kind SeriesKind) []Series {
	var out []Series
	for _, series := range s.Series {
		if series.Kind == kind {
			out = append(out, series)
		}
	}
	return out
}

func (s *Spec) Axis(id string) (Axis, bool) {
	for _, a := range s.Axes {
		if a.ID == id {
			return a, true
		}
	}
	return Axis{}, false
}

// ChartJSJSON encodes the Chart.js configuration embedded in the dashboard page.
func (s *Spec) ChartJSJSON() (string, error) {
	data, err := json.Marshal(s.ChartJS())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
