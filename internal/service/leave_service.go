package service

import (
	"context"
	"strings"
	"time"

	"github.com/leave-manager-api/internal/domain"
	"github.com/leave-manager-api/internal/dto"
	"github.com/leave-manager-api/internal/repository"
)

// LeaveService определяет интерфейс бизнес-логики для заявок на отпуск
type LeaveService interface {
	Submit(ctx context.Context, req *dto.SubmitLeaveRequest) (*domain.LeaveRequest, error)
	Approve(ctx context.Context, requestID, approverName string) (*domain.LeaveRequest, error)
	GetAll(ctx context.Context) ([]domain.LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)
	GetByStatus(ctx context.Context, status string) ([]domain.LeaveRequest, error)
	GetPending(ctx context.Context) ([]domain.LeaveRequest, error)
	GetStats(ctx context.Context) (*domain.RequestStats, error)
}

type leaveService struct {
	reqRepo repository.LeaveRequestRepository
	empRepo repository.EmployeeRepository
	now     func() time.Time
}

// NewLeaveService создаёт новый экземпляр сервиса
func NewLeaveService(reqRepo repository.LeaveRequestRepository, empRepo repository.EmployeeRepository) LeaveService {
	return &leaveService{
		reqRepo: reqRepo,
		empRepo: empRepo,
		now:     time.Now,
	}
}

// Submit регистрирует новую заявку. Сначала проверяется существование
// сотрудника, затем тип отпуска; остаток дней на этом этапе не проверяется,
// списание происходит только при одобрении.
func (s *leaveService) Submit(ctx context.Context, req *dto.SubmitLeaveRequest) (*domain.LeaveRequest, error) {
	emp, err := s.empRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	leaveType := strings.ToLower(req.LeaveType)
	if !domain.IsValidLeaveType(leaveType) {
		return nil, domain.ErrInvalidLeaveType
	}

	requestID, err := s.reqRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	request := &domain.LeaveRequest{
		RequestID:     requestID,
		EmployeeID:    emp.EmployeeID,
		EmployeeName:  emp.Name,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		LeaveType:     leaveType,
		Status:        domain.StatusPending,
		Reason:        req.Reason,
		DaysRequested: req.DaysRequested,
		SubmittedDate: s.now().Format("2006-01-02"),
	}

	if err := s.reqRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// Approve переводит заявку из pending в approved и списывает дни
// из соответствующего баланса одной транзакцией
func (s *leaveService) Approve(ctx context.Context, requestID, approverName string) (*domain.LeaveRequest, error) {
	request, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != domain.StatusPending {
		return nil, &domain.RequestStateError{RequestID: request.RequestID, Status: request.Status}
	}

	if err := s.reqRepo.Approve(ctx, request, approverName); err != nil {
		if err == domain.ErrRequestNotPending {
			// Заявку успели обработать между чтением и обновлением
			current, getErr := s.reqRepo.GetByID(ctx, requestID)
			if getErr == nil {
				return nil, &domain.RequestStateError{RequestID: current.RequestID, Status: current.Status}
			}
		}
		return nil, err
	}

	request.Status = domain.StatusApproved
	request.ApprovedBy = &approverName
	return request, nil
}

func (s *leaveService) GetAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.reqRepo.GetAll(ctx)
}

func (s *leaveService) GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	return s.reqRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *leaveService) GetByStatus(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	return s.reqRepo.GetByStatus(ctx, status)
}

func (s *leaveService) GetPending(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.reqRepo.GetByStatus(ctx, domain.StatusPending)
}

func (s *leaveService) GetStats(ctx context.Context) (*domain.RequestStats, error) {
	return s.reqRepo.Stats(ctx)
}
