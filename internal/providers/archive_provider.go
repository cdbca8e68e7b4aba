package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"weerdata/weather-dashboard/internal/weather"
)

const DefaultArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

type ArchiveAPIService interface {
	FetchDaily(ctx context.Context, params weather.QueryParameters) (*weather.WeatherResponse, error)
	GetHTTPClient() *http.Client
}

type archiveAPIService struct {
	baseURL string
	client  *http.Client
}

// NewArchiveAPIService returns a client for the Open-Meteo archive API. A zero
// timeout leaves the http.Client without a deadline.
func NewArchiveAPIService(baseURL string, timeout time.Duration) ArchiveAPIService {
	if baseURL == "" {
		baseURL = DefaultArchiveURL
	}
	return &archiveAPIService{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDaily performs exactly one GET. Every failure comes back as a
// *weather.Error with a nil response.
func (s *archiveAPIService) FetchDaily(ctx context.Context, params weather.QueryParameters) (*weather.WeatherResponse, error) {
	query := params.Values()
	url := s.baseURL + "?" + query.Encode()

	log.Info().
		Str("url", s.baseURL).
		Str("params", query.Encode()).
		Msg("calling archive API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &weather.Error{Kind: weather.KindTransport, Message: "failed to build archive request", Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &weather.Error{Kind: weather.KindTransport, Message: "failed to fetch weather data", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var apiResp weather.WeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &weather.Error{Kind: weather.KindDecode, Message: "archive API returned malformed JSON", Err: err}
	}

	log.Debug().Int("days", apiResp.DayCount()).Msg("archive API responded")

	return &apiResp, nil
}

func (s *archiveAPIService) GetHTTPClient() *http.Client {
	return s.client
}

// statusError prefers the provider's "reason" and falls back to the status code.
func statusError(resp *http.Response) error {
	werr := &weather.Error{
		Kind:       weather.KindHTTPStatus,
		Message:    fmt.Sprintf("archive API returned status code %d", resp.StatusCode),
		StatusCode: resp.StatusCode,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return werr
	}

	var apiErr weather.APIErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Reason != "" {
		werr.Reason = apiErr.Reason
	}

	return werr
}
