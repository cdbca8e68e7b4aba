package weatherquery

import (
	"time"
)

// DashboardQuery is one audited dashboard run.
type DashboardQuery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RunID     string    `json:"run_id" gorm:"column:run_id;index:idx_run_id"`
	StartDate string    `json:"start_date" gorm:"column:start_date;index:idx_range"`
	EndDate   string    `json:"end_date" gorm:"column:end_date;index:idx_range"`
	State     string    `json:"state" gorm:"column:state;index:idx_state"`
	ErrorKind string    `json:"error_kind,omitempty" gorm:"column:error_kind"`
	RowCount  int       `json:"row_count" gorm:"column:row_count"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (DashboardQuery) TableName() string {
	return "dashboard_queries"
}
