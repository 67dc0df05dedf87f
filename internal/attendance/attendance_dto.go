package attendance

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     Status `json:"status" binding:"required,oneof=Present Absent"`
}

// ListFilter carries the raw query parameters; dates are YYYY-MM-DD and
// inclusive on both ends.
type ListFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	Date         string  `json:"date"`
	Status       Status  `json:"status"`
}
