package employee

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	employeeerrors "hrms-lite/internal/employee/errors"
	"hrms-lite/internal/shared/apperror"
	"hrms-lite/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	statusPresent = "Present"
	statusAbsent  = "Absent"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Department = strings.TrimSpace(req.Department)
	if req.EmployeeID == "" {
		return EmployeeResponse{}, apperror.RequiredField("employee_id")
	}
	if req.FullName == "" {
		return EmployeeResponse{}, apperror.RequiredField("full_name")
	}
	if req.Department == "" {
		return EmployeeResponse{}, apperror.RequiredField("department")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, req.EmployeeID); err == nil {
		logger.Warn("create employee duplicate id", zap.String("employee_id", req.EmployeeID))
		return EmployeeResponse{}, employeeerrors.EmployeeIDAlreadyExists(req.EmployeeID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("create employee id lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if _, err := qtx.FindByEmail(ctx, req.Email); err == nil {
		logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.EmailAlreadyInUse(req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("create employee email lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// A concurrent create racing past the pre-checks still trips the
	// unique constraints at commit; map that the same way.
	if err := tx.Commit(); err != nil {
		logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		logger.Warn("delete employee lookup failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	// Attendance rows go with the employee via ON DELETE CASCADE.
	if err := qtx.Delete(ctx, id); err != nil {
		logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	present, absent := 0, 0
	for _, a := range empl.Attendances {
		switch a.Status {
		case statusPresent:
			present++
		case statusAbsent:
			absent++
		}
	}
	return EmployeeResponse{
		EmployeeID:   empl.EmployeeID,
		FullName:     empl.FullName,
		Email:        empl.Email,
		Department:   empl.Department,
		TotalPresent: present,
		TotalAbsent:  absent,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
