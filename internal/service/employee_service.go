package service

import (
	"context"
	"strings"

	"github.com/leave-manager-api/internal/domain"
	"github.com/leave-manager-api/internal/dto"
	"github.com/leave-manager-api/internal/match"
	"github.com/leave-manager-api/internal/repository"
)

// Значения остатков по умолчанию для новых сотрудников
const (
	DefaultAnnualLeaveBalance = 25
	DefaultSickLeaveBalance   = 10
)

// Сколько похожих имён показывать при отказе в создании
const maxSimilarCandidates = 3

// AddEmployeeResult - исход создания сотрудника. Ровно одно из полей
// заполнено: Created при успешной вставке, Duplicate при точном совпадении
// имени, Similar при найденных похожих именах.
type AddEmployeeResult struct {
	Created   *domain.Employee
	Duplicate *domain.Employee
	Similar   []match.Match
}

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Add(ctx context.Context, req *dto.AddEmployeeRequest) (*AddEmployeeResult, error)
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

// Add создаёт сотрудника с защитой от дубликатов. Без force_create
// точное совпадение имени или похожие имена (схожесть >= 0.7) блокируют
// вставку; force_create обходит обе проверки.
func (s *employeeService) Add(ctx context.Context, req *dto.AddEmployeeRequest) (*AddEmployeeResult, error) {
	name := strings.TrimSpace(req.Name)

	if !req.ForceCreate {
		existing, err := s.empRepo.GetByName(ctx, name)
		if err != nil && err != domain.ErrEmployeeNotFound {
			return nil, err
		}
		if existing != nil {
			return &AddEmployeeResult{Duplicate: existing}, nil
		}

		all, err := s.empRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		similar := match.RankSimilar(name, all, match.DefaultThreshold)
		if len(similar) > 0 {
			if len(similar) > maxSimilarCandidates {
				similar = similar[:maxSimilarCandidates]
			}
			return &AddEmployeeResult{Similar: similar}, nil
		}
	}

	employeeID, err := s.empRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		EmployeeID:         employeeID,
		Name:               name,
		Department:         strings.TrimSpace(req.Department),
		Manager:            strings.TrimSpace(req.Manager),
		AnnualLeaveBalance: DefaultAnnualLeaveBalance,
		SickLeaveBalance:   DefaultSickLeaveBalance,
	}
	if req.AnnualLeaveBalance != nil {
		emp.AnnualLeaveBalance = *req.AnnualLeaveBalance
	}
	if req.SickLeaveBalance != nil {
		emp.SickLeaveBalance = *req.SickLeaveBalance
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return &AddEmployeeResult{Created: emp}, nil
}

func (s *employeeService) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, employeeID)
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.GetAll(ctx)
}
