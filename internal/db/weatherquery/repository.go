package weatherquery

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const MaxRecentQueries = 100

type Repository interface {
	LogDashboardQuery(ctx context.Context, query *DashboardQuery) error
	GetRecentDashboardQueries(ctx context.Context, limit int) ([]DashboardQuery, error)
}

type DashboardSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &DashboardSQLRepository{db: db}
}

func (r *DashboardSQLRepository) LogDashboardQuery(ctx context.Context, query *DashboardQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(query).Error
}

// GetRecentDashboardQueries returns the newest runs first.
func (r *DashboardSQLRepository) GetRecentDashboardQueries(ctx context.Context, limit int) ([]DashboardQuery, error) {
	if limit <= 0 || limit > MaxRecentQueries {
		limit = MaxRecentQueries
	}

	var queries []DashboardQuery
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
