package dashboard

import (
	"context"
	"time"

	"hrms-lite/internal/attendance"
	"hrms-lite/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

// Summary is recomputed on every call; nothing here is cached.
func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	today := s.now()

	total, err := s.repo.CountEmployees(ctx)
	if err != nil {
		logger.Error("dashboard employee count failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	present, err := s.repo.CountAttendanceByStatus(ctx, today, attendance.StatusPresent)
	if err != nil {
		logger.Error("dashboard present count failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	absent, err := s.repo.CountAttendanceByStatus(ctx, today, attendance.StatusAbsent)
	if err != nil {
		logger.Error("dashboard absent count failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	return SummaryResponse{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
		// Can go negative if rows bypass the enum or cascade; reported
		// as-is rather than clamped.
		NotMarkedToday: total - present - absent,
	}, nil
}
