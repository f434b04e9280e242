package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// Document number prefixes
const (
	QuotePrefix   = "QT"
	InvoicePrefix = "INV"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// DocumentNumber formats a sequential document number such as QT-000042
func DocumentNumber(prefix string, seq int64) string {
	if seq < 1 {
		seq = 1
	}
	return fmt.Sprintf("%s-%06d", prefix, seq)
}
