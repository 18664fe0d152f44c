package dto

// SubmitLeaveRequest - запрос на подачу заявки на отпуск
type SubmitLeaveRequest struct {
	EmployeeID    string `json:"employee_id" validate:"required"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	LeaveType     string `json:"leave_type" validate:"required"`
	Reason        string `json:"reason" validate:"required"`
	DaysRequested int    `json:"days_requested" validate:"required,min=1"`
}

// ApproveLeaveRequest - запрос на одобрение заявки
type ApproveLeaveRequest struct {
	ApproverName string `json:"approver_name" validate:"required,min=1,max=200"`
}

// AddEmployeeRequest - запрос на создание сотрудника.
// Нулевые остатки передаются явно, отсутствие поля даёт значения
// по умолчанию (25 и 10 дней).
type AddEmployeeRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=200"`
	Department         string `json:"department" validate:"required,min=1,max=200"`
	Manager            string `json:"manager" validate:"required,min=1,max=200"`
	AnnualLeaveBalance *int   `json:"annual_leave_balance" validate:"omitempty,min=0"`
	SickLeaveBalance   *int   `json:"sick_leave_balance" validate:"omitempty,min=0"`
	ForceCreate        bool   `json:"force_create"`
}
