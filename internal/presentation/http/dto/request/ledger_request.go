package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRequest is the body for creating or updating a customer
type CustomerRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	TaxCode       *string `json:"tax_code"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
	Notes         *string `json:"notes"`
}

// ProjectRequest is the body for creating or updating a project
type ProjectRequest struct {
	Code        string           `json:"code"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	CustomerID  *uuid.UUID       `json:"customer_id"`
	Status      *string          `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
}

// LineItemRequest is one priced line of a quote or invoice
type LineItemRequest struct {
	ProductName *string         `json:"product_name"`
	Description *string         `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        *string         `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// QuoteRequest is the body for creating or replacing a quote
type QuoteRequest struct {
	IssueDate   *string           `json:"issue_date"`
	ValidUntil  *string           `json:"valid_until"`
	Status      string            `json:"status"`
	TaxAmount   decimal.Decimal   `json:"tax_amount"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Notes       *string           `json:"notes"`
	Items       []LineItemRequest `json:"items" binding:"dive"`
}

// InvoiceRequest is the body for creating or replacing an invoice
type InvoiceRequest struct {
	QuoteID     *uuid.UUID        `json:"quote_id"`
	IssueDate   *string           `json:"issue_date"`
	DueDate     *string           `json:"due_date"`
	Status      string            `json:"status"`
	TaxAmount   decimal.Decimal   `json:"tax_amount"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Notes       *string           `json:"notes"`
	Items       []LineItemRequest `json:"items" binding:"dive"`
}

// StatusRequest changes the status of a quote
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceStatusRequest changes the status and optionally the payment state of an invoice
type InvoiceStatusRequest struct {
	Status        string  `json:"status" binding:"required"`
	PaymentStatus *string `json:"payment_status"`
}

// ExpenseLineItemRequest is one line of an expense with optional object split
type ExpenseLineItemRequest struct {
	Description   string                     `json:"description"`
	Quantity      decimal.Decimal            `json:"quantity"`
	UnitPrice     decimal.Decimal            `json:"unit_price"`
	LineTotal     *decimal.Decimal           `json:"line_total"`
	ComponentsPct map[string]decimal.Decimal `json:"components_pct"`
}

// ExpenseRequest is the body for creating or replacing a planned or actual expense
type ExpenseRequest struct {
	Description     string                     `json:"description" binding:"required"`
	Amount          decimal.Decimal            `json:"amount"`
	Status          string                     `json:"status"`
	ExpenseDate     *string                    `json:"expense_date"`
	DepartmentID    *uuid.UUID                 `json:"department_id"`
	EmployeeID      *uuid.UUID                 `json:"employee_id"`
	ExpenseObjectID *uuid.UUID                 `json:"expense_object_id"`
	ObjectTotals    map[string]decimal.Decimal `json:"expense_object_totals"`
	LineItems       []ExpenseLineItemRequest   `json:"line_items"`
}

// ReviewRequest carries an optional note with an approval or rejection
type ReviewRequest struct {
	Note *string `json:"note"`
}

// ExpenseObjectRequest is the body for creating or updating an expense object
type ExpenseObjectRequest struct {
	ParentID    *uuid.UUID `json:"parent_id"`
	Code        *string    `json:"code"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	IsActive    *bool      `json:"is_active"`
}

// DepartmentRequest is the body for creating or updating a department
type DepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// EmployeeRequest is the body for creating an employee
type EmployeeRequest struct {
	UserID       uuid.UUID  `json:"user_id" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id"`
	Position     *string    `json:"position"`
}
