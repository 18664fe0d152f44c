// Package render собирает текстовые представления сущностей.
// Формат блоков фиксированный: поле на строку, записи разделены
// чертой из 40 подчёркиваний.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/leave-manager-api/internal/domain"
	"github.com/leave-manager-api/internal/match"
)

const separator = "________________________________________\n"

// title приводит слово к виду с заглавной первой буквой
func title(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// EmployeeDirectory выводит всех сотрудников с остатками отпусков
func EmployeeDirectory(employees []domain.Employee) string {
	var b strings.Builder
	b.WriteString("Employee Directory:\n\n")
	for _, emp := range employees {
		fmt.Fprintf(&b, "ID: %s\n", emp.EmployeeID)
		fmt.Fprintf(&b, "Name: %s\n", emp.Name)
		fmt.Fprintf(&b, "Department: %s\n", emp.Department)
		fmt.Fprintf(&b, "Manager: %s\n", emp.Manager)
		fmt.Fprintf(&b, "Annual Leave Balance: %d days\n", emp.AnnualLeaveBalance)
		fmt.Fprintf(&b, "Sick Leave Balance: %d days\n", emp.SickLeaveBalance)
		b.WriteString(separator)
	}
	return b.String()
}

// EmployeeInfo выводит карточку одного сотрудника
func EmployeeInfo(emp *domain.Employee) string {
	var b strings.Builder
	b.WriteString("Employee Information:\n")
	fmt.Fprintf(&b, "ID: %s\n", emp.EmployeeID)
	fmt.Fprintf(&b, "Name: %s\n", emp.Name)
	fmt.Fprintf(&b, "Department: %s\n", emp.Department)
	fmt.Fprintf(&b, "Manager: %s\n", emp.Manager)
	fmt.Fprintf(&b, "Annual Leave Balance: %d days\n", emp.AnnualLeaveBalance)
	fmt.Fprintf(&b, "Sick Leave Balance: %d days\n", emp.SickLeaveBalance)
	return b.String()
}

// LeaveBalance выводит остатки отпусков сотрудника
func LeaveBalance(emp *domain.Employee) string {
	return fmt.Sprintf(
		"Leave Balance for %s (%s):\nAnnual Leave: %d days remaining\nSick Leave: %d days remaining",
		emp.Name, emp.EmployeeID, emp.AnnualLeaveBalance, emp.SickLeaveBalance,
	)
}

func writeRequest(b *strings.Builder, req *domain.LeaveRequest, withEmployee, withStatus bool) {
	fmt.Fprintf(b, "Request ID: %s\n", req.RequestID)
	if withEmployee {
		fmt.Fprintf(b, "Employee: %s (%s)\n", req.EmployeeName, req.EmployeeID)
	}
	fmt.Fprintf(b, "Dates: %s to %s\n", req.StartDate, req.EndDate)
	fmt.Fprintf(b, "Type: %s\n", title(req.LeaveType))
	fmt.Fprintf(b, "Days: %d\n", req.DaysRequested)
	if withStatus {
		fmt.Fprintf(b, "Status: %s\n", title(req.Status))
	}
	fmt.Fprintf(b, "Reason: %s\n", req.Reason)
	fmt.Fprintf(b, "Submitted: %s\n", req.SubmittedDate)
	if req.ApprovedBy != nil {
		fmt.Fprintf(b, "Approved by: %s\n", *req.ApprovedBy)
	}
	b.WriteString(separator)
}

// AllLeaveRequests выводит полный список заявок
func AllLeaveRequests(requests []domain.LeaveRequest) string {
	var b strings.Builder
	b.WriteString("All Leave Requests:\n\n")
	for i := range requests {
		writeRequest(&b, &requests[i], true, true)
	}
	return b.String()
}

// EmployeeLeaveRequests выводит заявки одного сотрудника
func EmployeeLeaveRequests(employeeID string, requests []domain.LeaveRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Leave Requests for Employee %s:\n\n", employeeID)
	for i := range requests {
		writeRequest(&b, &requests[i], false, true)
	}
	return b.String()
}

// LeaveRequestsByStatus выводит заявки с заданным статусом
func LeaveRequestsByStatus(status string, requests []domain.LeaveRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Leave Requests:\n\n", title(status))
	for i := range requests {
		writeRequest(&b, &requests[i], true, true)
	}
	return b.String()
}

// PendingApprovals выводит заявки, ожидающие одобрения
func PendingApprovals(requests []domain.LeaveRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pending Leave Requests (%d):\n\n", len(requests))
	for i := range requests {
		writeRequest(&b, &requests[i], true, false)
	}
	return b.String()
}

// Stats выводит счётчики по базе
func Stats(stats *domain.RequestStats) string {
	return fmt.Sprintf(
		"Database Statistics:\nEmployees: %d\nTotal Leave Requests: %d\nPending Requests: %d\nApproved Requests: %d\nDenied Requests: %d\n",
		stats.Employees, stats.TotalRequests, stats.PendingRequests, stats.ApprovedRequests, stats.DeniedRequests,
	)
}

// EmployeeCreated подтверждает создание сотрудника
func EmployeeCreated(emp *domain.Employee) string {
	return fmt.Sprintf(
		"New employee created successfully:\nID: %s\nName: %s\nDepartment: %s\nManager: %s\nAnnual Leave Balance: %d days\nSick Leave Balance: %d days",
		emp.EmployeeID, emp.Name, emp.Department, emp.Manager, emp.AnnualLeaveBalance, emp.SickLeaveBalance,
	)
}

// DuplicateEmployee сообщает о точном совпадении имени
func DuplicateEmployee(name string, existing *domain.Employee) string {
	return fmt.Sprintf(
		"Employee with exact name '%s' already exists:\nID: %s\nDepartment: %s\nManager: %s\nIf you want to create a new employee anyway, call this function again with force_create=true",
		name, existing.EmployeeID, existing.Department, existing.Manager,
	)
}

// SimilarEmployees выводит похожие имена и варианты дальнейших действий
func SimilarEmployees(name string, matches []match.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found employees with similar names to '%s':\n", name)
	for _, m := range matches {
		fmt.Fprintf(&b, "ID: %s | Name: %s | Dept: %s\n", m.Employee.EmployeeID, m.Employee.Name, m.Employee.Department)
	}
	b.WriteString("\nDo you want to:\n")
	b.WriteString("#1. Use an existing employee above, or\n")
	b.WriteString("#2. Create new employee anyway by calling add_employee with force_create=true\n")
	b.WriteString("#3. Cancel and choose a different name")
	return b.String()
}
