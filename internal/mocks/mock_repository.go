package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weerdata/weather-dashboard/internal/db/weatherquery"
)

// MockRepository is a mock type for the Repository type
type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) LogDashboardQuery(ctx context.Context, query *weatherquery.DashboardQuery) error {
	ret := _m.Called(ctx, query)

	return ret.Error(0)
}

func (_m *MockRepository) GetRecentDashboardQueries(ctx context.Context, limit int) ([]weatherquery.DashboardQuery, error) {
	ret := _m.Called(ctx, limit)

	var r0 []weatherquery.DashboardQuery
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]weatherquery.DashboardQuery)
	}

	return r0, ret.Error(1)
}

// NewMockRepository creates a new instance of MockRepository. It also registers a cleanup function to assert the mocks expectations.
func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
