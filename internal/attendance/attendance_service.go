package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "hrms-lite/internal/attendance/errors"
	"hrms-lite/internal/shared/apperror"
	"hrms-lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Mark records today's status for an employee. Marking the same employee
// and date twice overwrites the status in place rather than erroring; the
// unique constraint on (employee_id, date) backstops the race between the
// lookup and the insert.
func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", string(req.Status)),
	)

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		return AttendanceResponse{}, apperror.RequiredField("employee_id")
	}
	if !req.Status.Valid() {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		logger.Warn("mark attendance invalid date", zap.String("date", req.Date), zap.Error(err))
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("mark attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("mark attendance employee missing", zap.String("employee_id", req.EmployeeID))
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		logger.Error("mark attendance employee lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("mark attendance lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err == nil {
		// Second mark for the same day: update in place, keep the id.
		existing.Status = req.Status
		if err := qtx.Update(ctx, existing); err != nil {
			logger.Error("mark attendance update failed", zap.Error(err))
			return AttendanceResponse{}, mapRepositoryError(err)
		}
		if err := tx.Commit(); err != nil {
			logger.Error("mark attendance commit failed", zap.Error(err))
			return AttendanceResponse{}, mapRepositoryError(err)
		}
		logger.Info("mark attendance updated",
			zap.String("request_id", rid),
			zap.String("attendance_id", existing.ID),
		)
		return mapToResponse(*existing, &empl.FullName), nil
	}

	row := &Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	}

	if err := qtx.Create(ctx, row); err != nil {
		logger.Error("mark attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		logger.Error("mark attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	logger.Info("mark attendance created",
		zap.String("request_id", rid),
		zap.String("attendance_id", row.ID),
	)
	return mapToResponse(*row, &empl.FullName), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error) {
	s.logger.Debug("list attendance requested",
		zap.String("employee_id", filter.EmployeeID),
		zap.String("date_from", filter.DateFrom),
		zap.String("date_to", filter.DateTo),
	)

	qf := QueryFilter{EmployeeID: strings.TrimSpace(filter.EmployeeID)}
	if filter.DateFrom != "" {
		from, err := time.Parse(dateLayout, filter.DateFrom)
		if err != nil {
			return nil, apperror.InvalidField("date_from")
		}
		qf.DateFrom = &from
	}
	if filter.DateTo != "" {
		to, err := time.Parse(dateLayout, filter.DateTo)
		if err != nil {
			return nil, apperror.InvalidField("date_to")
		}
		qf.DateTo = &to
	}

	rows, err := s.repo.FindWithFilter(ctx, qf)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		var name *string
		if r.Employee != nil {
			name = &r.Employee.FullName
		}
		res[i] = mapToResponse(r, name)
	}
	return res, nil
}

func mapToResponse(a Attendance, employeeName *string) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Date:         a.Date.Format(dateLayout),
		Status:       a.Status,
	}
}
