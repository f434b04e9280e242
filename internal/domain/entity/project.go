package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project groups the quotes, invoices and expenses that are reconciled together
type Project struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"owner_id"`
	CustomerID  *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Code        string             `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	Description *string            `gorm:"type:text" json:"description,omitempty"`
	Status      enum.ProjectStatus `gorm:"size:20;default:'planning'" json:"status"`
	Budget      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"budget"`
	StartDate   *time.Time         `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time         `gorm:"type:date" json:"end_date,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
