package employee

type Employee struct {
	EmployeeID  string          `gorm:"column:employee_id;type:varchar(50);primaryKey"`
	FullName    string          `gorm:"column:full_name;type:varchar(150);not null"`
	Email       string          `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Department  string          `gorm:"column:department;type:varchar(100);not null"`
	// constraint:- because the foreign key is owned by the attendance
	// side, where it carries ON DELETE CASCADE.
	Attendances []AttendanceRef `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:-"`
}

func (Employee) TableName() string {
	return "employees"
}

// AttendanceRef is a narrow projection of the attendances table, enough to
// total up present/absent marks without importing the attendance package.
type AttendanceRef struct {
	ID         string `gorm:"column:id;type:varchar(36);primaryKey"`
	EmployeeID string `gorm:"column:employee_id;type:varchar(50)"`
	Status     string `gorm:"column:status;type:varchar(10)"`
}

func (AttendanceRef) TableName() string {
	return "attendances"
}
