package repository

import (
	"github.com/leave-manager-api/internal/domain"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed наполняет пустую базу демонстрационными данными.
// Выполняется только если таблица сотрудников пуста.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employees := []domain.Employee{
		{EmployeeID: "EMP001", Name: "John Smith", Department: "Engineering", Manager: "Jane Doe", AnnualLeaveBalance: 25, SickLeaveBalance: 10},
		{EmployeeID: "EMP002", Name: "Alice Johnson", Department: "Marketing", Manager: "Bob Wilson", AnnualLeaveBalance: 20, SickLeaveBalance: 10},
		{EmployeeID: "EMP003", Name: "Bob Wilson", Department: "Marketing", Manager: "Jane Doe", AnnualLeaveBalance: 25, SickLeaveBalance: 10},
		{EmployeeID: "EMP004", Name: "Sarah Davis", Department: "HR", Manager: "Jane Doe", AnnualLeaveBalance: 22, SickLeaveBalance: 11},
		{EmployeeID: "EMP005", Name: "Nick Chen", Department: "Engineering", Manager: "John Smith", AnnualLeaveBalance: 18, SickLeaveBalance: 10},
	}

	requests := []domain.LeaveRequest{
		{RequestID: "REQ001", EmployeeID: "EMP001", EmployeeName: "John Smith", StartDate: "2024-07-01", EndDate: "2024-07-05", LeaveType: domain.LeaveTypeAnnual, Status: domain.StatusApproved, Reason: "Family vacation", DaysRequested: 5, SubmittedDate: "2024-06-15", ApprovedBy: strPtr("Jane Doe")},
		{RequestID: "REQ002", EmployeeID: "EMP002", EmployeeName: "Alice Johnson", StartDate: "2024-07-10", EndDate: "2024-07-12", LeaveType: domain.LeaveTypeSick, Status: domain.StatusApproved, Reason: "Doctor appointment", DaysRequested: 3, SubmittedDate: "2024-07-09", ApprovedBy: strPtr("Bob Wilson")},
		{RequestID: "REQ003", EmployeeID: "EMP003", EmployeeName: "Bob Wilson", StartDate: "2024-08-01", EndDate: "2024-08-03", LeaveType: domain.LeaveTypeAnnual, Status: domain.StatusPending, Reason: "Trip vacation", DaysRequested: 3, SubmittedDate: "2024-07-20"},
		{RequestID: "REQ004", EmployeeID: "EMP004", EmployeeName: "Sarah Davis", StartDate: "2024-07-15", EndDate: "2024-07-16", LeaveType: domain.LeaveTypePersonal, Status: domain.StatusDenied, Reason: "Personal matters", DaysRequested: 2, SubmittedDate: "2024-07-10", ApprovedBy: strPtr("Jane Doe")},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employees).Error; err != nil {
			return err
		}
		return tx.Create(&requests).Error
	})
}
