package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new project expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.ProjectExpense) error {
	return r.db.WithContext(ctx).
		Omit("Project", "Department", "Employee", "ExpenseObject").
		Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProjectExpense, error) {
	var expense entity.ProjectExpense
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("ExpenseObject").
		First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.ProjectExpense) error {
	return r.db.WithContext(ctx).
		Omit("Project", "Department", "Employee", "ExpenseObject").
		Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ProjectExpense{}, "id = ?", id).Error
}

func (r *expenseRepository) ListByProject(ctx context.Context, projectID uuid.UUID, kind enum.ExpenseKind, status *enum.ExpenseStatus) ([]entity.ProjectExpense, error) {
	var expenses []entity.ProjectExpense
	query := r.db.WithContext(ctx).Scopes(InProject(projectID)).Where("kind = ?", kind)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("expense_date ASC, created_at ASC").Find(&expenses).Error
	return expenses, err
}

type expenseObjectRepository struct {
	db *gorm.DB
}

// NewExpenseObjectRepository creates a new expense object repository
func NewExpenseObjectRepository(db *gorm.DB) domainRepo.ExpenseObjectRepository {
	return &expenseObjectRepository{db: db}
}

func (r *expenseObjectRepository) Create(ctx context.Context, object *entity.ExpenseObject) error {
	return r.db.WithContext(ctx).Omit("Parent").Create(object).Error
}

func (r *expenseObjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseObject, error) {
	var object entity.ExpenseObject
	err := r.db.WithContext(ctx).First(&object, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &object, err
}

func (r *expenseObjectRepository) Update(ctx context.Context, object *entity.ExpenseObject) error {
	return r.db.WithContext(ctx).Omit("Parent").Save(object).Error
}

func (r *expenseObjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseObject{}, "id = ?", id).Error
}

func (r *expenseObjectRepository) List(ctx context.Context, activeOnly bool) ([]entity.ExpenseObject, error) {
	var objects []entity.ExpenseObject
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name ASC").Find(&objects).Error
	return objects, err
}
