package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weerdata/weather-dashboard/internal/service"
)

// MockDashboardService is a mock type for the DashboardService type
type MockDashboardService struct {
	mock.Mock
}

func (_m *MockDashboardService) BuildDashboard(ctx context.Context, startDate string, endDate string) service.Dashboard {
	ret := _m.Called(ctx, startDate, endDate)

	var r0 service.Dashboard
	if rf, ok := ret.Get(0).(func(context.Context, string, string) service.Dashboard); ok {
		r0 = rf(ctx, startDate, endDate)
	} else {
		r0 = ret.Get(0).(service.Dashboard)
	}

	return r0
}

func (_m *MockDashboardService) Defaults() (string, string) {
	ret := _m.Called()

	return ret.String(0), ret.String(1)
}

// NewMockDashboardService creates a new instance of MockDashboardService. It also registers a cleanup function to assert the mocks expectations.
func NewMockDashboardService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDashboardService {
	m := &MockDashboardService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
