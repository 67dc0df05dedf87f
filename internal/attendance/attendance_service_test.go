package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "hrms-lite/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	findWithFilterFn        func(ctx context.Context, filter QueryFilter) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
	findEmployeeFn          func(ctx context.Context, employeeID string) (*EmployeeRef, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindWithFilter(ctx context.Context, filter QueryFilter) ([]Attendance, error) {
	return f.findWithFilterFn(ctx, filter)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error {
	return f.updateFn(ctx, a)
}
func (f *fakeRepo) FindEmployee(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	return f.findEmployeeFn(ctx, employeeID)
}

func newMarkRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findEmployeeFn = func(ctx context.Context, employeeID string) (*EmployeeRef, error) {
		return &EmployeeRef{ID: employeeID, FullName: "Asha"}, nil
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.createFn = func(ctx context.Context, a *Attendance) error { return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { return nil }
	return repo
}

func TestService_Mark_CreatesThenOverwrites(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	var saved Attendance
	repo := newMarkRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
		if saved.ID == "" {
			return nil, gorm.ErrRecordNotFound
		}
		return &saved, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	first, err := svc.Mark(ctx, MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     StatusPresent,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, StatusPresent, first.Status)
	assert.Equal(t, "2024-01-01", first.Date)

	// Second mark for the same employee+date updates in place.
	mock.ExpectBegin()
	mock.ExpectCommit()
	second, err := svc.Mark(ctx, MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     StatusAbsent,
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, StatusAbsent, second.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Mark_EmployeeMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMarkRepo()
	repo.findEmployeeFn = func(ctx context.Context, employeeID string) (*EmployeeRef, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: "ghost",
		Date:       "2024-01-01",
		Status:     StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Mark_ConstraintRaceMapsToConflict(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newMarkRepo()
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
	}

	svc := NewService(db, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyMarked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Mark_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newMarkRepo())

	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: "   ",
		Date:       "2024-01-01",
		Status:     StatusPresent,
	})
	assert.Error(t, err)

	_, err = svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "01-01-2024",
		Status:     StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)

	_, err = svc.Mark(context.Background(), MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     Status("Late"),
	})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
}

func TestService_GetAll_FilterAndMissingEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	repo := newMarkRepo()
	var gotFilter QueryFilter
	repo.findWithFilterFn = func(ctx context.Context, filter QueryFilter) ([]Attendance, error) {
		gotFilter = filter
		return []Attendance{
			{ID: "a1", EmployeeID: "E1", Date: date, Status: StatusPresent, Employee: &EmployeeRef{ID: "E1", FullName: "Asha"}},
			{ID: "a2", EmployeeID: "E2", Date: date, Status: StatusAbsent, Employee: nil},
		}, nil
	}

	svc := NewService(db, repo)
	res, err := svc.GetAll(context.Background(), ListFilter{
		EmployeeID: "E1",
		DateFrom:   "2024-01-01",
		DateTo:     "2024-01-31",
	})
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "E1", gotFilter.EmployeeID)
	assert.Equal(t, "2024-01-01", gotFilter.DateFrom.Format("2006-01-02"))
	assert.Equal(t, "2024-01-31", gotFilter.DateTo.Format("2006-01-02"))
	assert.NotNil(t, res[0].EmployeeName)
	assert.Equal(t, "Asha", *res[0].EmployeeName)
	assert.Nil(t, res[1].EmployeeName)

	_, err = svc.GetAll(context.Background(), ListFilter{DateFrom: "yesterday"})
	assert.Error(t, err)
}

func TestService_GetAll_RepoError(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newMarkRepo()
	repo.findWithFilterFn = func(ctx context.Context, filter QueryFilter) ([]Attendance, error) {
		return nil, errors.New("db down")
	}

	svc := NewService(db, repo)
	_, err := svc.GetAll(context.Background(), ListFilter{})
	assert.Error(t, err)
}
