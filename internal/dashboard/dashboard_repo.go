package dashboard

import (
	"context"
	"time"

	"hrms-lite/internal/attendance"
	"hrms-lite/internal/employee"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountAttendanceByStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Count(&count).Error
	return count, err
}

func (r *repository) CountAttendanceByStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&attendance.Attendance{}).
		Where("date = ?", date.Format("2006-01-02")).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}
