package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectExpense is a planned (budgeted) or actual (incurred) project cost.
// Both kinds share one table and are told apart by Kind.
type ProjectExpense struct {
	ID              uuid.UUID                  `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID       uuid.UUID                  `gorm:"type:uuid;not null;index:idx_project_expenses_project_kind" json:"project_id"`
	Kind            enum.ExpenseKind           `gorm:"size:10;not null;index:idx_project_expenses_project_kind" json:"kind"`
	CreatedBy       uuid.UUID                  `gorm:"type:uuid;not null" json:"created_by"`
	Description     string                     `gorm:"type:text;not null" json:"description"`
	Amount          decimal.Decimal            `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status          enum.ExpenseStatus         `gorm:"size:20;default:'draft';index" json:"status"`
	ExpenseDate     time.Time                  `gorm:"type:date;not null" json:"expense_date"`
	DepartmentID    *uuid.UUID                 `gorm:"type:uuid;index" json:"department_id,omitempty"`
	EmployeeID      *uuid.UUID                 `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	ExpenseObjectID *uuid.UUID                 `gorm:"type:uuid;index" json:"expense_object_id,omitempty"`
	ObjectTotals    map[string]decimal.Decimal `gorm:"column:expense_object_totals;type:jsonb;serializer:json" json:"expense_object_totals,omitempty"`
	LineItems       []ExpenseLineItem          `gorm:"type:jsonb;serializer:json" json:"line_items,omitempty"`
	ReviewedBy      *uuid.UUID                 `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time                 `json:"reviewed_at,omitempty"`
	ReviewNote      *string                    `gorm:"type:text" json:"review_note,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
	DeletedAt       gorm.DeletedAt             `gorm:"index" json:"-"`

	// Relationships
	Project       Project        `gorm:"foreignKey:ProjectID" json:"-"`
	Department    *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Employee      *Employee      `gorm:"foreignKey:EmployeeID" json:"-"`
	ExpenseObject *ExpenseObject `gorm:"foreignKey:ExpenseObjectID" json:"expense_object,omitempty"`
}

// ExpenseLineItem is one line of an expense, stored inline as JSON. ComponentsPct
// splits the line across expense objects by percentage.
type ExpenseLineItem struct {
	Description   string                     `json:"description,omitempty"`
	Quantity      decimal.Decimal            `json:"quantity"`
	UnitPrice     decimal.Decimal            `json:"unit_price"`
	LineTotal     *decimal.Decimal           `json:"line_total,omitempty"`
	ComponentsPct map[string]decimal.Decimal `json:"components_pct,omitempty"`
}

// Total is LineTotal when set, else Quantity × UnitPrice
func (l ExpenseLineItem) Total() decimal.Decimal {
	if l.LineTotal != nil {
		return *l.LineTotal
	}
	return l.Quantity.Mul(l.UnitPrice)
}

// BeforeCreate generates a UUID before creating a new expense
func (e *ProjectExpense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProjectExpense model
func (ProjectExpense) TableName() string {
	return "project_expenses"
}
