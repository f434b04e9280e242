package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/sangkips/ledger-api/internal/domain/repository"
	"github.com/sangkips/ledger-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// ExpenseService handles planned and actual project expenses
type ExpenseService struct {
	expenseRepo    repository.ExpenseRepository
	objectRepo     repository.ExpenseObjectRepository
	departmentRepo repository.DepartmentRepository
	employeeRepo   repository.EmployeeRepository
	guard          projectGuard
	log            *zap.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	objectRepo repository.ExpenseObjectRepository,
	departmentRepo repository.DepartmentRepository,
	employeeRepo repository.EmployeeRepository,
	projectRepo repository.ProjectRepository,
	log *zap.Logger,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:    expenseRepo,
		objectRepo:     objectRepo,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		guard:          projectGuard{projectRepo: projectRepo},
		log:            log,
	}
}

// ExpenseInput represents the input for creating or replacing an expense.
// Status may only be draft or pending; approval goes through Approve.
type ExpenseInput struct {
	Description     string
	Amount          decimal.Decimal
	Status          enum.ExpenseStatus
	ExpenseDate     time.Time
	DepartmentID    *uuid.UUID
	EmployeeID      *uuid.UUID
	ExpenseObjectID *uuid.UUID
	ObjectTotals    map[string]decimal.Decimal
	LineItems       []entity.ExpenseLineItem
}

// validateExpense checks the shape of an expense input
func validateExpense(input *ExpenseInput) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "description is required"})
	}
	if input.Amount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "amount cannot be negative"})
	}
	if input.Status != enum.ExpenseStatusDraft && input.Status != enum.ExpenseStatusPending {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "status must be draft or pending"})
	}
	for key, amount := range input.ObjectTotals {
		if strings.TrimSpace(key) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "expense_object_totals", Message: "object id cannot be empty"})
		}
		if amount.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "expense_object_totals." + key, Message: "amount cannot be negative"})
		}
	}
	for i, line := range input.LineItems {
		field := fmt.Sprintf("line_items[%d]", i)
		if line.Quantity.IsNegative() || line.UnitPrice.IsNegative() || (line.LineTotal != nil && line.LineTotal.IsNegative()) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: "line values cannot be negative"})
		}
		sum := decimal.Zero
		for key, pct := range line.ComponentsPct {
			if pct.IsNegative() || pct.GreaterThan(hundred) {
				fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".components_pct." + key, Message: "percentage must be between 0 and 100"})
			}
			sum = sum.Add(pct)
		}
		if len(line.ComponentsPct) > 0 && !sum.Equal(hundred) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field + ".components_pct", Message: "percentages must add up to 100"})
		}
	}
	fieldErrors = append(fieldErrors, checkAllocation(input)...)
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// checkAllocation makes sure the representation that reports allocate by
// accounts for the whole amount. Object totals must match exactly; split lines
// may drift by less than one unit since every share is rounded.
func checkAllocation(input *ExpenseInput) []apperror.FieldError {
	if len(input.ObjectTotals) > 0 {
		sum := decimal.Zero
		for _, amount := range input.ObjectTotals {
			sum = sum.Add(amount)
		}
		if !sum.Equal(input.Amount) {
			return []apperror.FieldError{{
				Field:   "expense_object_totals",
				Message: fmt.Sprintf("object totals add up to %s, expected %s", sum, input.Amount),
			}}
		}
		return nil
	}

	split, sum := false, decimal.Zero
	for _, line := range input.LineItems {
		if len(line.ComponentsPct) == 0 {
			continue
		}
		split = true
		sum = sum.Add(line.Total())
	}
	if split && sum.Sub(input.Amount).Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return []apperror.FieldError{{
			Field:   "line_items",
			Message: fmt.Sprintf("split lines add up to %s, expected %s", sum, input.Amount),
		}}
	}
	return nil
}

// checkReferences verifies that referenced department, employee and object exist
func (s *ExpenseService) checkReferences(ctx context.Context, input *ExpenseInput) error {
	if input.DepartmentID != nil {
		d, err := s.departmentRepo.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return apperror.Internal("Failed to load department", err)
		}
		if d == nil {
			return apperror.NewValidationError([]apperror.FieldError{{Field: "department_id", Message: "department does not exist"}})
		}
	}
	if input.EmployeeID != nil {
		e, err := s.employeeRepo.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			return apperror.Internal("Failed to load employee", err)
		}
		if e == nil {
			return apperror.NewValidationError([]apperror.FieldError{{Field: "employee_id", Message: "employee does not exist"}})
		}
	}
	if input.ExpenseObjectID != nil {
		o, err := s.objectRepo.GetByID(ctx, *input.ExpenseObjectID)
		if err != nil {
			return apperror.Internal("Failed to load expense object", err)
		}
		if o == nil {
			return apperror.NewValidationError([]apperror.FieldError{{Field: "expense_object_id", Message: "expense object does not exist"}})
		}
	}
	return nil
}

func (s *ExpenseService) prepare(ctx context.Context, input *ExpenseInput) error {
	if input.Status == "" {
		input.Status = enum.ExpenseStatusDraft
	}
	if err := validateExpense(input); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return err
	}
	if input.ExpenseDate.IsZero() {
		input.ExpenseDate = time.Now()
	}
	return nil
}

// CreateExpense records a planned or actual expense under a project
func (s *ExpenseService) CreateExpense(ctx context.Context, actor Actor, projectID uuid.UUID, kind enum.ExpenseKind, input *ExpenseInput) (*entity.ProjectExpense, error) {
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown expense kind")
	}
	project, err := s.guard.load(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, input); err != nil {
		return nil, err
	}

	expense := &entity.ProjectExpense{
		ProjectID:       project.ID,
		Kind:            kind,
		CreatedBy:       actor.UserID,
		Description:     strings.TrimSpace(input.Description),
		Amount:          input.Amount,
		Status:          input.Status,
		ExpenseDate:     input.ExpenseDate,
		DepartmentID:    input.DepartmentID,
		EmployeeID:      input.EmployeeID,
		ExpenseObjectID: input.ExpenseObjectID,
		ObjectTotals:    input.ObjectTotals,
		LineItems:       input.LineItems,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, apperror.Internal("Failed to create expense", err)
	}

	s.log.Info("expense created",
		zap.String("expense_id", expense.ID.String()),
		zap.String("kind", kind.String()),
		zap.String("project_id", project.ID.String()),
	)
	return expense, nil
}

// GetExpense retrieves an expense of the given kind. An expense of the other
// kind is reported as not found.
func (s *ExpenseService) GetExpense(ctx context.Context, actor Actor, id uuid.UUID, kind enum.ExpenseKind) (*entity.ProjectExpense, error) {
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown expense kind")
	}
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load expense", err)
	}
	if expense == nil || expense.Kind != kind {
		return nil, apperror.NewNotFoundError("Expense")
	}
	if _, err := s.guard.load(ctx, actor, expense.ProjectID); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists a project's expenses of one kind
func (s *ExpenseService) ListExpenses(ctx context.Context, actor Actor, projectID uuid.UUID, kind enum.ExpenseKind, status *enum.ExpenseStatus) ([]entity.ProjectExpense, error) {
	if _, err := s.guard.load(ctx, actor, projectID); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid status filter")
	}
	expenses, err := s.expenseRepo.ListByProject(ctx, projectID, kind, status)
	if err != nil {
		return nil, apperror.Internal("Failed to list expenses", err)
	}
	return expenses, nil
}

// UpdateExpense replaces an expense that has not been reviewed yet
func (s *ExpenseService) UpdateExpense(ctx context.Context, actor Actor, id uuid.UUID, kind enum.ExpenseKind, input *ExpenseInput) (*entity.ProjectExpense, error) {
	expense, err := s.GetExpense(ctx, actor, id, kind)
	if err != nil {
		return nil, err
	}
	if !expense.Status.CanBeReviewed() {
		return nil, apperror.NewConflictError("Expense is " + expense.Status.String() + " and can no longer be edited")
	}
	if err := s.prepare(ctx, input); err != nil {
		return nil, err
	}

	expense.Description = strings.TrimSpace(input.Description)
	expense.Amount = input.Amount
	expense.Status = input.Status
	expense.ExpenseDate = input.ExpenseDate
	expense.DepartmentID = input.DepartmentID
	expense.EmployeeID = input.EmployeeID
	expense.ExpenseObjectID = input.ExpenseObjectID
	expense.ObjectTotals = input.ObjectTotals
	expense.LineItems = input.LineItems
	expense.Department = nil
	expense.ExpenseObject = nil

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, apperror.Internal("Failed to update expense", err)
	}
	return expense, nil
}

// Approve marks a draft or pending expense approved, which makes it count in reports
func (s *ExpenseService) Approve(ctx context.Context, actor Actor, id uuid.UUID, kind enum.ExpenseKind, note *string) (*entity.ProjectExpense, error) {
	return s.review(ctx, actor, id, kind, enum.ExpenseStatusApproved, note)
}

// Reject marks a draft or pending expense rejected
func (s *ExpenseService) Reject(ctx context.Context, actor Actor, id uuid.UUID, kind enum.ExpenseKind, note *string) (*entity.ProjectExpense, error) {
	return s.review(ctx, actor, id, kind, enum.ExpenseStatusRejected, note)
}

func (s *ExpenseService) review(ctx context.Context, actor Actor, id uuid.UUID, kind enum.ExpenseKind, to enum.ExpenseStatus, note *string) (*entity.ProjectExpense, error) {
	expense, err := s.GetExpense(ctx, actor, id, kind)
	if err != nil {
		return nil, err
	}
	if !expense.Status.CanBeReviewed() {
		return nil, apperror.NewStatusTransitionError("Expense", expense.Status.String(), to.String())
	}

	now := time.Now()
	reviewer := actor.UserID
	expense.Status = to
	expense.ReviewedBy = &reviewer
	expense.ReviewedAt = &now
	expense.ReviewNote = note

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, apperror.Internal("Failed to update expense", err)
	}

	s.log.Info("expense reviewed",
		zap.String("expense_id", expense.ID.String()),
		zap.String("status", to.String()),
		zap.String("reviewer", reviewer.String()),
	)
	return expense, nil
}

// DeleteExpense soft deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, actor Actor, id uuid.UUID, kind enum.ExpenseKind) error {
	if _, err := s.GetExpense(ctx, actor, id, kind); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete expense", err)
	}
	return nil
}
