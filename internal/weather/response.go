package weather

// WeatherResponse is the decoded body of an archive API call. Daily is nil
// when the provider omitted the "daily" object.
type WeatherResponse struct {
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Timezone   string            `json:"timezone"`
	DailyUnits map[string]string `json:"daily_units,omitempty"`
	Daily      *DailySeries      `json:"daily"`
}

// DailySeries holds parallel arrays: index i of every slice describes the
// same day. Missing provider values decode as nil.
type DailySeries struct {
	Time             []string   `json:"time"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
}

// APIErrorResponse is the body the archive API sends with a non-2xx status.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (r *WeatherResponse) HasDaily() bool {
	return r != nil && r.Daily != nil
}

func (r *WeatherResponse) DayCount() int {
	if !r.HasDaily() {
		return 0
	}
	return len(r.Daily.Time)
}
