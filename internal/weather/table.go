package weather

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	LabelDate          = "Date"
	LabelPrecipitation = "Precipitation (mm)"
	LabelMinTemp       = "Min Temp (°C)"
	LabelMaxTemp       = "Max Temp (°C)"
)

// Row is one day of the table. Nil values mean the provider had no reading.
type Row struct {
	Date            time.Time
	PrecipitationMm *float64
	MinTempC        *float64
	MaxTempC        *float64
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date            string   `json:"date"`
		PrecipitationMm *float64 `json:"precipitation_mm"`
		MinTempC        *float64 `json:"min_temp_c"`
		MaxTempC        *float64 `json:"max_temp_c"`
	}{
		Date:            r.Date.Format(DateLayout),
		PrecipitationMm: r.PrecipitationMm,
		MinTempC:        r.MinTempC,
		MaxTempC:        r.MaxTempC,
	})
}

// WeatherTable keeps the provider's row order.
type WeatherTable struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// BuildTable turns the parallel daily arrays into rows.
func BuildTable(daily *DailySeries) (*WeatherTable, error) {
	if daily == nil {
		return nil, decodeError("response has no daily data", nil)
	}

	n := len(daily.Time)
	columns := []struct {
		name   string
		values []*float64
	}{
		{"precipitation_sum", daily.PrecipitationSum},
		{"temperature_2m_min", daily.Temperature2mMin},
		{"temperature_2m_max", daily.Temperature2mMax},
	}
	for _, c := range columns {
		if len(c.values) != n {
			return nil, decodeError(fmt.Sprintf("daily.%s has %d values, daily.time has %d", c.name, len(c.values), n), nil)
		}
	}

	table := &WeatherTable{
		Columns: []string{LabelDate, LabelPrecipitation, LabelMinTemp, LabelMaxTemp},
		Rows:    make([]Row, 0, n),
	}

	for i, raw := range daily.Time {
		date, err := parseDay(raw)
		if err != nil {
			return nil, decodeError(fmt.Sprintf("daily.time[%d] is not a date", i), err)
		}
		table.Rows = append(table.Rows, Row{
			Date:            date,
			PrecipitationMm: daily.PrecipitationSum[i],
			MinTempC:        daily.Temperature2mMin[i],
			MaxTempC:        daily.Temperature2mMax[i],
		})
	}

	return table, nil
}

func (t *WeatherTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// DateLabels returns the row dates formatted as YYYY-MM-DD.
func (t *WeatherTable) DateLabels() []string {
	labels := make([]string, 0, t.Len())
	for _, row := range t.Rows {
		labels = append(labels, row.Date.Format(DateLayout))
	}
	return labels
}

func (t *WeatherTable) Precipitation() []*float64 {
	return t.column(func(r Row) *float64 { return r.PrecipitationMm })
}

func (t *WeatherTable) MinTemperatures() []*float64 {
	return t.column(func(r Row) *float64 { return r.MinTempC })
}

func (t *WeatherTable) MaxTemperatures() []*float64 {
	return t.column(func(r Row) *float64 { return r.MaxTempC })
}

func (t *WeatherTable) column(pick func(Row) *float64) []*float64 {
	values := make([]*float64, 0, t.Len())
	for _, row := range t.Rows {
		values = append(values, pick(row))
	}
	return values
}

// parseDay accepts ISO dates with or without a time part and drops the time.
func parseDay(value string) (time.Time, error) {
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	return time.Parse(DateLayout, value)
}
