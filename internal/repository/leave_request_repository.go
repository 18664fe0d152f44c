package repository

import (
	"context"

	"github.com/leave-manager-api/internal/domain"
	"gorm.io/gorm"
)

const requestIDPrefix = "REQ"

// LeaveRequestRepository определяет интерфейс для работы с заявками на отпуск
type LeaveRequestRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) error
	GetByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error)
	GetAll(ctx context.Context) ([]domain.LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)
	GetByStatus(ctx context.Context, status string) ([]domain.LeaveRequest, error)
	NextID(ctx context.Context) (string, error)
	Approve(ctx context.Context, req *domain.LeaveRequest, approverName string) error
	Stats(ctx context.Context) (*domain.RequestStats, error)
}

type leaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository создаёт новый экземпляр репозитория
func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *domain.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	var req domain.LeaveRequest
	err := r.db.WithContext(ctx).First(&req, "request_id = ?", requestID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepository) GetAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Order("request_id ASC").
		Find(&requests).Error
	return requests, err
}

func (r *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("request_id ASC").
		Find(&requests).Error
	return requests, err
}

func (r *leaveRequestRepository) GetByStatus(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("LOWER(status) = LOWER(?)", status).
		Order("request_id ASC").
		Find(&requests).Error
	return requests, err
}

// NextID выделяет следующий последовательный идентификатор REQ###
func (r *leaveRequestRepository) NextID(ctx context.Context) (string, error) {
	var lastID string
	err := r.db.WithContext(ctx).
		Model(&domain.LeaveRequest{}).
		Select("request_id").
		Where("request_id LIKE ?", requestIDPrefix+"%").
		Order("request_id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return "", err
	}
	return nextSequentialID(requestIDPrefix, lastID)
}

// Approve одобряет заявку и списывает дни из баланса сотрудника
// одной транзакцией. Переход статуса защищён условием status = 'pending',
// списание не опускает баланс ниже нуля.
func (r *leaveRequestRepository) Approve(ctx context.Context, req *domain.LeaveRequest, approverName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.LeaveRequest{}).
			Where("request_id = ? AND status = ?", req.RequestID, domain.StatusPending).
			Updates(map[string]any{
				"status":      domain.StatusApproved,
				"approved_by": approverName,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}

		var column string
		switch req.LeaveType {
		case domain.LeaveTypeAnnual:
			column = "annual_leave_balance"
		case domain.LeaveTypeSick:
			column = "sick_leave_balance"
		default:
			// personal и emergency баланс не затрагивают
			return nil
		}

		return tx.Model(&domain.Employee{}).
			Where("employee_id = ?", req.EmployeeID).
			Update(column, gorm.Expr(
				"CASE WHEN "+column+" > ? THEN "+column+" - ? ELSE 0 END",
				req.DaysRequested, req.DaysRequested,
			)).Error
	})
}

func (r *leaveRequestRepository) Stats(ctx context.Context) (*domain.RequestStats, error) {
	var stats domain.RequestStats

	db := r.db.WithContext(ctx)
	if err := db.Model(&domain.Employee{}).Count(&stats.Employees).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.LeaveRequest{}).Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.LeaveRequest{}).Where("status = ?", domain.StatusPending).Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.LeaveRequest{}).Where("status = ?", domain.StatusApproved).Count(&stats.ApprovedRequests).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.LeaveRequest{}).Where("status = ?", domain.StatusDenied).Count(&stats.DeniedRequests).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
