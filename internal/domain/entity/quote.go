package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quote represents a price proposal sent to the project's customer
type Quote struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"project_id"`
	CustomerID  *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CreatedBy   uuid.UUID        `gorm:"type:uuid;not null" json:"created_by"`
	Number      string           `gorm:"size:50;uniqueIndex;not null" json:"quote_number"`
	IssueDate   time.Time        `gorm:"type:date;not null" json:"issue_date"`
	ValidUntil  *time.Time       `gorm:"type:date" json:"valid_until,omitempty"`
	Status      enum.QuoteStatus `gorm:"size:20;default:'draft';index" json:"status"`
	Subtotal    decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxAmount   decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Notes       *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Project  Project     `gorm:"foreignKey:ProjectID" json:"-"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem represents a line item in a quote
type QuoteItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"quote_id"`
	ProductName *string         `gorm:"size:255" json:"product_name,omitempty"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,3);default:1" json:"quantity"`
	Unit        *string         `gorm:"size:50" json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new quote item
func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}
