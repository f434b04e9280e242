package enum

import (
	"database/sql/driver"
	"fmt"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the invoice can no longer change status
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

// ParseInvoiceStatus validates a raw status value
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	s := InvoiceStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid invoice status %q", raw)
	}
	return s, nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return stringValue(string(s))
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	if err != nil {
		return err
	}
	if v == "" {
		v = string(InvoiceStatusDraft)
	}
	*s = InvoiceStatus(v)
	return nil
}

// PaymentStatus tracks how much of an invoice has been collected
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// ParsePaymentStatus validates a raw payment status value
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid payment status %q", raw)
	}
	return s, nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return stringValue(string(s))
}

func (s *PaymentStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	if err != nil {
		return err
	}
	if v == "" {
		v = string(PaymentStatusUnpaid)
	}
	*s = PaymentStatus(v)
	return nil
}
