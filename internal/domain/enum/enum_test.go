package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuoteStatus(t *testing.T) {
	s, err := ParseQuoteStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, QuoteStatusAccepted, s)
	assert.True(t, s.IsTerminal())

	_, err = ParseQuoteStatus("Accepted")
	assert.Error(t, err)
}

func TestParseInvoiceAndPaymentStatus(t *testing.T) {
	s, err := ParseInvoiceStatus("sent")
	require.NoError(t, err)
	assert.False(t, s.IsTerminal())

	_, err = ParseInvoiceStatus("void")
	assert.Error(t, err)

	p, err := ParsePaymentStatus("overdue")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusOverdue, p)
}

func TestExpenseStatus_CanBeReviewed(t *testing.T) {
	tests := []struct {
		status ExpenseStatus
		want   bool
	}{
		{ExpenseStatusDraft, true},
		{ExpenseStatusPending, true},
		{ExpenseStatusApproved, false},
		{ExpenseStatusRejected, false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.CanBeReviewed())
		})
	}
}

func TestScan(t *testing.T) {
	var s ExpenseStatus
	require.NoError(t, s.Scan([]byte("approved")))
	assert.Equal(t, ExpenseStatusApproved, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, ExpenseStatusDraft, s)

	var p ProjectStatus
	assert.Error(t, p.Scan(42))

	v, err := ExpenseKindActual.Value()
	require.NoError(t, err)
	assert.Equal(t, "actual", v)
}
