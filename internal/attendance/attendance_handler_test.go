package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-lite/internal/attendance"
	attendanceerrors "hrms-lite/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	markFn   func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error)
	getAllFn func(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error)
}

func (f *fakeService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.markFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, filter)
}

func TestHandler_MarkAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markFn: func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "E1", req.EmployeeID)
			assert.Equal(t, attendance.StatusPresent, req.Status)
			return attendance.AttendanceResponse{ID: "a1", EmployeeID: req.EmployeeID, Date: req.Date, Status: req.Status}, nil
		},
		getAllFn: func(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, "E1", filter.EmployeeID)
			assert.Equal(t, "2024-01-01", filter.DateFrom)
			assert.Equal(t, "2024-01-31", filter.DateTo)
			return []attendance.AttendanceResponse{{ID: "a1"}}, nil
		},
	}

	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance",
		strings.NewReader(`{"employee_id":"E1","date":"2024-01-01","status":"Present"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendance?employee_id=E1&date_from=2024-01-01&date_to=2024-01-31", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestHandler_Mark_InvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markFn: func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
			t.Fatal("service should not be reached")
			return attendance.AttendanceResponse{}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance",
		strings.NewReader(`{"employee_id":"E1","date":"2024-01-01","status":"Late"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Mark(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestHandler_Mark_ServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"employee missing", attendanceerrors.ErrEmployeeNotFound, http.StatusNotFound},
		{"already marked race", attendanceerrors.ErrAlreadyMarked, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{
				markFn: func(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
					return attendance.AttendanceResponse{}, tc.err
				},
			}
			h := attendance.NewHandler(svc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/attendance",
				strings.NewReader(`{"employee_id":"E1","date":"2024-01-01","status":"Present"}`))
			c.Request.Header.Set("Content-Type", "application/json")
			h.Mark(c)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
