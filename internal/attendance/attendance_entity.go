package attendance

import (
	"time"
)

// Status is the closed set of attendance marks.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent:
		return true
	}
	return false
}

type Attendance struct {
	ID         string       `gorm:"column:id;type:varchar(36);primaryKey"`
	EmployeeID string       `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status     Status       `gorm:"column:status;type:varchar(10);not null"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef must keep its primary key under a field name distinct from
// Attendance.EmployeeID so the relation parses as belongs-to and the
// cascade constraint lands on the attendances table during migration.
type EmployeeRef struct {
	ID       string `gorm:"column:employee_id;type:varchar(50);primaryKey"`
	FullName string `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
