package chart

import (
	"fmt"
	"strconv"
	"strings"
)

type ChartJSConfig struct {
	Type    string         `json:"type"`
	Data    ChartJSData    `json:"data"`
	Options ChartJSOptions `json:"options"`
}

type ChartJSData struct {
	Labels   []string         `json:"labels"`
	Datasets []ChartJSDataset `json:"datasets"`
}

type ChartJSDataset struct {
	Type            string     `json:"type"`
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	YAxisID         string     `json:"yAxisID"`
	BorderColor     string     `json:"borderColor"`
	BackgroundColor string     `json:"backgroundColor"`
	PointStyle      string     `json:"pointStyle,omitempty"`
	PointRadius     int        `json:"pointRadius"`
	Fill            bool       `json:"fill"`
	Order           int        `json:"order"`
	HideInLegend    bool       `json:"hideInLegend,omitempty"`
}

type ChartJSOptions struct {
	Responsive bool                    `json:"responsive"`
	Scales     map[string]ChartJSScale `json:"scales"`
	Plugins    ChartJSPlugins          `json:"plugins"`
}

type ChartJSScale struct {
	Type     string       `json:"type,omitempty"`
	Position string       `json:"position,omitempty"`
	Min      *float64     `json:"min,omitempty"`
	Title    ChartJSTitle `json:"title"`
	Ticks    ChartJSTicks `json:"ticks"`
	Grid     *ChartJSGrid `json:"grid,omitempty"`
}

type ChartJSTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Color   string `json:"color,omitempty"`
}

type ChartJSTicks struct {
	Color       string `json:"color,omitempty"`
	MinRotation int    `json:"minRotation,omitempty"`
	MaxRotation int    `json:"maxRotation,omitempty"`
}

type ChartJSGrid struct {
	DrawOnChartArea bool `json:"drawOnChartArea"`
}

type ChartJSPlugins struct {
	Legend ChartJSLegend `json:"legend"`
}

type ChartJSLegend struct {
	Position string `json:"position"`
	Align    string `json:"align"`
}

// ChartJS maps the chart onto a Chart.js mixed bar/line configuration. Lines
// get a lower order so they are drawn above the bars.
func (s *Spec) ChartJS() ChartJSConfig {
	cfg := ChartJSConfig{
		Type: "bar",
		Data: ChartJSData{Labels: s.Labels},
		Options: ChartJSOptions{
			Responsive: true,
			Scales: map[string]ChartJSScale{
				"x": {
					Title: ChartJSTitle{Display: true, Text: s.XAxisTitle},
					Ticks: ChartJSTicks{MinRotation: s.TickRotation, MaxRotation: s.TickRotation},
				},
			},
			Plugins: ChartJSPlugins{Legend: legendPlacement(s.LegendPosition)},
		},
	}

	for _, a := range s.Axes {
		scale := ChartJSScale{
			Type:     "linear",
			Position: a.Position,
			Min:      a.Min,
			Title:    ChartJSTitle{Display: true, Text: a.Title, Color: a.Color},
			Ticks:    ChartJSTicks{Color: a.Color},
		}
		if a.Position == "right" {
			scale.Grid = &ChartJSGrid{DrawOnChartArea: false}
		}
		cfg.Options.Scales[a.ID] = scale
	}

	for _, series := range s.Series {
		ds := ChartJSDataset{
			Type:            string(series.Kind),
			Label:           series.Label,
			Data:            series.Values,
			YAxisID:         series.AxisID,
			BorderColor:     series.Color,
			BackgroundColor: withOpacity(series.Color, series.Opacity),
			HideInLegend:    !series.InLegend,
			Order:           1,
		}
		if series.Kind == SeriesLine {
			ds.Order = 0
			ds.BackgroundColor = series.Color
		}
		if series.PointMarkers {
			ds.PointStyle = "circle"
			ds.PointRadius = 4
		}
		cfg.Data.Datasets = append(cfg.Data.Datasets, ds)
	}

	return cfg
}

func legendPlacement(position string) ChartJSLegend {
	vertical, horizontal, _ := strings.Cut(position, " ")
	legend := ChartJSLegend{Position: "top", Align: "start"}
	if vertical == "lower" {
		legend.Position = "bottom"
	}
	switch horizontal {
	case "center":
		legend.Align = "center"
	case "right":
		legend.Align = "end"
	}
	return legend
}

// withOpacity turns "#rrggbb" into an rgba() string.
func withOpacity(hex string, opacity float64) string {
	if len(hex) != 7 || hex[0] != '#' || opacity >= 1 {
		return hex
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb>>16&0xff, rgb>>8&0xff, rgb&0xff, strconv.FormatFloat(opacity, 'f', -1, 64))
}
