package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
)

// ExpenseRepository defines the interface for planned and actual expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.ProjectExpense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProjectExpense, error)
	Update(ctx context.Context, expense *entity.ProjectExpense) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByProject returns the project's expenses of one kind, optionally
	// narrowed to a single status.
	ListByProject(ctx context.Context, projectID uuid.UUID, kind enum.ExpenseKind, status *enum.ExpenseStatus) ([]entity.ProjectExpense, error)
}

// ExpenseObjectRepository defines the interface for expense object data operations
type ExpenseObjectRepository interface {
	Create(ctx context.Context, object *entity.ExpenseObject) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseObject, error)
	Update(ctx context.Context, object *entity.ExpenseObject) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.ExpenseObject, error)
}

// DepartmentRepository defines the interface for department data operations
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Department, error)
	GetByName(ctx context.Context, name string) (*entity.Department, error)
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Department, error)
}

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Employee, error)
	List(ctx context.Context, departmentID *uuid.UUID) ([]entity.Employee, error)
	// NameMap resolves every employee id to the full name of its user.
	NameMap(ctx context.Context) (map[uuid.UUID]string, error)
}
