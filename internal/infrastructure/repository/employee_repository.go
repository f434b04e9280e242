package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) domainRepo.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &department, err
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).First(&department, "LOWER(name) = LOWER(?)", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &department, err
}

func (r *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Department{}, "id = ?", id).Error
}

func (r *departmentRepository) List(ctx context.Context) ([]entity.Department, error) {
	var departments []entity.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error
	return departments, err
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Omit("User", "Department").Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]entity.Employee, error) {
	var employees []entity.Employee
	query := r.db.WithContext(ctx).Preload("User").Preload("Department")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	err := query.Order("created_at ASC").Find(&employees).Error
	return employees, err
}

type employeeName struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// NameMap joins employees to their users in a single query
func (r *employeeRepository) NameMap(ctx context.Context) (map[uuid.UUID]string, error) {
	var rows []employeeName
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.id, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = employees.user_id AND users.deleted_at IS NULL").
		Where("employees.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		u := entity.User{FirstName: row.FirstName, LastName: row.LastName}
		if name := u.FullName(); name != "" {
			names[row.ID] = name
		}
	}
	return names, nil
}
