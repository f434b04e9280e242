package enum

import (
	"database/sql/driver"
	"fmt"
)

// QuoteStatus represents the lifecycle state of a customer quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) String() string {
	return string(s)
}

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether the quote can no longer change status
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// ParseQuoteStatus validates a raw status value
func ParseQuoteStatus(raw string) (QuoteStatus, error) {
	s := QuoteStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid quote status %q", raw)
	}
	return s, nil
}

func (s QuoteStatus) Value() (driver.Value, error) {
	return stringValue(string(s))
}

func (s *QuoteStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	if err != nil {
		return err
	}
	if v == "" {
		v = string(QuoteStatusDraft)
	}
	*s = QuoteStatus(v)
	return nil
}
