package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseObject is a named cost category that expenses are allocated to
type ExpenseObject struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ParentID    *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Code        *string        `gorm:"size:50;uniqueIndex" json:"code,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Parent *ExpenseObject `gorm:"foreignKey:ParentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense object
func (o *ExpenseObject) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseObject model
func (ExpenseObject) TableName() string {
	return "expense_objects"
}
