package mocks

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"weerdata/weather-dashboard/internal/weather"
)

// MockArchiveAPIService is a mock type for the ArchiveAPIService type
type MockArchiveAPIService struct {
	mock.Mock
}

func (_m *MockArchiveAPIService) FetchDaily(ctx context.Context, params weather.QueryParameters) (*weather.WeatherResponse, error) {
	ret := _m.Called(ctx, params)

	var r0 *weather.WeatherResponse
	if rf, ok := ret.Get(0).(func(context.Context, weather.QueryParameters) *weather.WeatherResponse); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*weather.WeatherResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, weather.QueryParameters) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockArchiveAPIService) GetHTTPClient() *http.Client {
	ret := _m.Called()

	var r0 *http.Client
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*http.Client)
	}

	return r0
}

// NewMockArchiveAPIService creates a new instance of MockArchiveAPIService. It also registers a cleanup function to assert the mocks expectations.
func NewMockArchiveAPIService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArchiveAPIService {
	m := &MockArchiveAPIService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
