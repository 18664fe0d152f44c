package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/leave-manager-api/internal/domain"
	"gorm.io/gorm"
)

const employeeIDPrefix = "EMP"

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetByName(ctx context.Context, name string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	NextID(ctx context.Context) (string, error)
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, "employee_id = ?", employeeID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByName(ctx context.Context, name string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Order("employee_id ASC").
		Find(&employees).Error
	return employees, err
}

// NextID выделяет следующий последовательный идентификатор EMP###.
// Сканирует максимальный существующий номер и увеличивает его на единицу.
func (r *employeeRepository) NextID(ctx context.Context) (string, error) {
	var lastID string
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Select("employee_id").
		Where("employee_id LIKE ?", employeeIDPrefix+"%").
		Order("employee_id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return "", err
	}
	return nextSequentialID(employeeIDPrefix, lastID)
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

// nextSequentialID разбирает числовой суффикс последнего идентификатора
// и возвращает следующий, начиная с 1, если записей ещё нет
func nextSequentialID(prefix, lastID string) (string, error) {
	next := 1
	if lastID != "" {
		num, err := strconv.Atoi(strings.TrimPrefix(lastID, prefix))
		if err != nil {
			return "", fmt.Errorf("malformed identifier %q: %w", lastID, err)
		}
		next = num + 1
	}
	return fmt.Sprintf("%s%03d", prefix, next), nil
}
