package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents a bill issued to the project's customer
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"project_id"`
	QuoteID       *uuid.UUID         `gorm:"type:uuid;index" json:"quote_id,omitempty"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	Number        string             `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	IssueDate     time.Time          `gorm:"type:date;not null" json:"issue_date"`
	DueDate       *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Status        enum.InvoiceStatus `gorm:"size:20;default:'draft';index" json:"status"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;default:'unpaid'" json:"payment_status"`
	Subtotal      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxAmount     decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	PaidAmount    decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Project  Project       `gorm:"foreignKey:ProjectID" json:"-"`
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a line item in an invoice
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductName *string         `gorm:"size:255" json:"product_name,omitempty"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,3);default:1" json:"quantity"`
	Unit        *string         `gorm:"size:50" json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
