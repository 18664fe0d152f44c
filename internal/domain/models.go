package domain

// Допустимые типы отпусков
const (
	LeaveTypeAnnual    = "annual"
	LeaveTypeSick      = "sick"
	LeaveTypePersonal  = "personal"
	LeaveTypeEmergency = "emergency"
)

// ValidLeaveTypes - фиксированный набор типов отпусков
var ValidLeaveTypes = []string{LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal, LeaveTypeEmergency}

// Статусы заявок на отпуск
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Employee представляет сотрудника с остатками отпускных дней
type Employee struct {
	EmployeeID         string `json:"employee_id" gorm:"column:employee_id;primaryKey;type:varchar(10)"`
	Name               string `json:"name" gorm:"type:varchar(200);not null"`
	Department         string `json:"department" gorm:"type:varchar(200);not null"`
	Manager            string `json:"manager" gorm:"type:varchar(200);not null"`
	AnnualLeaveBalance int    `json:"annual_leave_balance" gorm:"not null"`
	SickLeaveBalance   int    `json:"sick_leave_balance" gorm:"not null"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// LeaveRequest представляет заявку на отпуск.
// Даты хранятся как текст в формате YYYY-MM-DD.
type LeaveRequest struct {
	RequestID     string  `json:"request_id" gorm:"column:request_id;primaryKey;type:varchar(10)"`
	EmployeeID    string  `json:"employee_id" gorm:"type:varchar(10);not null;index"`
	EmployeeName  string  `json:"employee_name" gorm:"type:varchar(200);not null"`
	StartDate     string  `json:"start_date" gorm:"type:varchar(10);not null"`
	EndDate       string  `json:"end_date" gorm:"type:varchar(10);not null"`
	LeaveType     string  `json:"leave_type" gorm:"type:varchar(20);not null"`
	Status        string  `json:"status" gorm:"type:varchar(20);not null;index"`
	Reason        string  `json:"reason" gorm:"type:text;not null"`
	DaysRequested int     `json:"days_requested" gorm:"not null"`
	SubmittedDate string  `json:"submitted_date" gorm:"type:varchar(10);not null"`
	ApprovedBy    *string `json:"approved_by" gorm:"type:varchar(200)"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// RequestStats - агрегированные счётчики по базе
type RequestStats struct {
	Employees        int64
	TotalRequests    int64
	PendingRequests  int64
	ApprovedRequests int64
	DeniedRequests   int64
}

// IsValidLeaveType проверяет принадлежность типа фиксированному набору
func IsValidLeaveType(leaveType string) bool {
	for _, t := range ValidLeaveTypes {
		if t == leaveType {
			return true
		}
	}
	return false
}
