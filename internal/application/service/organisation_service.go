package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
)

// ExpenseObjectService manages the cost categories expenses are allocated to
type ExpenseObjectService struct {
	objectRepo repository.ExpenseObjectRepository
}

// NewExpenseObjectService creates a new expense object service
func NewExpenseObjectService(objectRepo repository.ExpenseObjectRepository) *ExpenseObjectService {
	return &ExpenseObjectService{objectRepo: objectRepo}
}

// ExpenseObjectInput represents the create/update expense object input
type ExpenseObjectInput struct {
	ParentID    *uuid.UUID
	Code        *string
	Name        string
	Description *string
	IsActive    *bool
}

func (s *ExpenseObjectService) checkParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "parent_id", Message: "an object cannot be its own parent"}})
	}
	parent, err := s.objectRepo.GetByID(ctx, *parentID)
	if err != nil {
		return apperror.Internal("Failed to load parent object", err)
	}
	if parent == nil {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "parent_id", Message: "parent object does not exist"}})
	}
	return nil
}

// CreateExpenseObject creates a new expense object
func (s *ExpenseObjectService) CreateExpenseObject(ctx context.Context, input *ExpenseObjectInput) (*entity.ExpenseObject, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name is required"}})
	}
	if err := s.checkParent(ctx, uuid.Nil, input.ParentID); err != nil {
		return nil, err
	}

	object := &entity.ExpenseObject{
		ParentID:    input.ParentID,
		Code:        input.Code,
		Name:        name,
		Description: input.Description,
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	if err := s.objectRepo.Create(ctx, object); err != nil {
		return nil, apperror.Internal("Failed to create expense object", err)
	}
	return object, nil
}

// ListExpenseObjects lists expense objects
func (s *ExpenseObjectService) ListExpenseObjects(ctx context.Context, activeOnly bool) ([]entity.ExpenseObject, error) {
	objects, err := s.objectRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperror.Internal("Failed to list expense objects", err)
	}
	return objects, nil
}

// UpdateExpenseObject updates an expense object
func (s *ExpenseObjectService) UpdateExpenseObject(ctx context.Context, id uuid.UUID, input *ExpenseObjectInput) (*entity.ExpenseObject, error) {
	object, err := s.objectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load expense object", err)
	}
	if object == nil {
		return nil, apperror.NewNotFoundError("Expense object")
	}
	if err := s.checkParent(ctx, id, input.ParentID); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		object.Name = name
	}
	if input.ParentID != nil {
		object.ParentID = input.ParentID
	}
	if input.Code != nil {
		object.Code = input.Code
	}
	if input.Description != nil {
		object.Description = input.Description
	}
	if input.IsActive != nil {
		object.IsActive = *input.IsActive
	}

	if err := s.objectRepo.Update(ctx, object); err != nil {
		return nil, apperror.Internal("Failed to update expense object", err)
	}
	return object, nil
}

// DeleteExpenseObject soft deletes an expense object. Historical allocations
// keep its id and fall back to showing the raw id in reports.
func (s *ExpenseObjectService) DeleteExpenseObject(ctx context.Context, id uuid.UUID) error {
	object, err := s.objectRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal("Failed to load expense object", err)
	}
	if object == nil {
		return apperror.NewNotFoundError("Expense object")
	}
	if err := s.objectRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete expense object", err)
	}
	return nil
}

// DepartmentService manages departments
type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// DepartmentInput represents the create/update department input
type DepartmentInput struct {
	Name        string
	Description *string
}

func (s *DepartmentService) checkName(ctx context.Context, id uuid.UUID, name string) error {
	if name == "" {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name is required"}})
	}
	existing, err := s.departmentRepo.GetByName(ctx, name)
	if err != nil {
		return apperror.Internal("Failed to check department name", err)
	}
	if existing != nil && existing.ID != id {
		return apperror.NewConflictError("Department name already in use")
	}
	return nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, input *DepartmentInput) (*entity.Department, error) {
	name := strings.TrimSpace(input.Name)
	if err := s.checkName(ctx, uuid.Nil, name); err != nil {
		return nil, err
	}
	department := &entity.Department{Name: name, Description: input.Description}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, apperror.Internal("Failed to create department", err)
	}
	return department, nil
}

// ListDepartments lists every department
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to list departments", err)
	}
	return departments, nil
}

// UpdateDepartment updates a department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uuid.UUID, input *DepartmentInput) (*entity.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load department", err)
	}
	if department == nil {
		return nil, apperror.NewNotFoundError("Department")
	}
	name := strings.TrimSpace(input.Name)
	if err := s.checkName(ctx, id, name); err != nil {
		return nil, err
	}

	department.Name = name
	if input.Description != nil {
		department.Description = input.Description
	}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, apperror.Internal("Failed to update department", err)
	}
	return department, nil
}

// DeleteDepartment soft deletes a department
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal("Failed to load department", err)
	}
	if department == nil {
		return apperror.NewNotFoundError("Department")
	}
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete department", err)
	}
	return nil
}

// EmployeeService manages employee records
type EmployeeService struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	userRepo       repository.UserRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	UserID       uuid.UUID
	DepartmentID *uuid.UUID
	Position     *string
}

// CreateEmployee links an existing user to a department
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "user_id", Message: "user does not exist"}})
	}

	existing, err := s.employeeRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, apperror.Internal("Failed to check employee", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("User is already an employee")
	}

	var department *entity.Department
	if input.DepartmentID != nil {
		department, err = s.departmentRepo.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return nil, apperror.Internal("Failed to load department", err)
		}
		if department == nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "department_id", Message: "department does not exist"}})
		}
	}

	employee := &entity.Employee{
		UserID:       input.UserID,
		DepartmentID: input.DepartmentID,
		Position:     input.Position,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, apperror.Internal("Failed to create employee", err)
	}
	employee.User = *user
	employee.Department = department
	return employee, nil
}

// ListEmployees lists employees, optionally within one department
func (s *EmployeeService) ListEmployees(ctx context.Context, departmentID *uuid.UUID) ([]entity.Employee, error) {
	employees, err := s.employeeRepo.List(ctx, departmentID)
	if err != nil {
		return nil, apperror.Internal("Failed to list employees", err)
	}
	return employees, nil
}
