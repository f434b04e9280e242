package enum

import (
	"database/sql/driver"
	"fmt"
)

// ExpenseStatus represents the approval state of a planned or actual expense
type ExpenseStatus string

const (
	ExpenseStatusDraft    ExpenseStatus = "draft"
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

func (s ExpenseStatus) String() string {
	return string(s)
}

func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusDraft, ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
		return true
	}
	return false
}

// CanBeReviewed reports whether the expense may still be approved or rejected
func (s ExpenseStatus) CanBeReviewed() bool {
	return s == ExpenseStatusDraft || s == ExpenseStatusPending
}

// ParseExpenseStatus validates a raw status value
func ParseExpenseStatus(raw string) (ExpenseStatus, error) {
	s := ExpenseStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid expense status %q", raw)
	}
	return s, nil
}

func (s ExpenseStatus) Value() (driver.Value, error) {
	return stringValue(string(s))
}

func (s *ExpenseStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	if err != nil {
		return err
	}
	if v == "" {
		v = string(ExpenseStatusDraft)
	}
	*s = ExpenseStatus(v)
	return nil
}

// ExpenseKind separates budgeted (planned) expenses from incurred (actual) ones
type ExpenseKind string

const (
	ExpenseKindPlanned ExpenseKind = "planned"
	ExpenseKindActual  ExpenseKind = "actual"
)

func (k ExpenseKind) String() string {
	return string(k)
}

func (k ExpenseKind) IsValid() bool {
	return k == ExpenseKindPlanned || k == ExpenseKindActual
}

func (k ExpenseKind) Value() (driver.Value, error) {
	return stringValue(string(k))
}

func (k *ExpenseKind) Scan(value interface{}) error {
	v, err := scanString(value)
	if err != nil {
		return err
	}
	*k = ExpenseKind(v)
	return nil
}
