package reconciliation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertAmount(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), append([]interface{}{"want %d, got %s", want, got.String()}, msgAndArgs...)...)
}

func sampleInput() Input {
	return Input{
		Quotes:   []Quote{{ID: "q1", Status: "sent", TotalAmount: d(1_000_000)}},
		Invoices: []Invoice{{ID: "i1", Status: "paid", TotalAmount: d(900_000)}},
		Planned: []Expense{
			{ID: "p1", Status: "approved", Amount: d(400_000), Description: "Vật liệu xây dựng"},
		},
		Actual: []Expense{
			{ID: "a1", Status: "approved", Amount: d(500_000), Description: "Vật liệu"},
		},
		Options: DefaultOptions(),
	}
}

func TestComputeTotals_SampleScenario(t *testing.T) {
	in := sampleInput()
	totals := ComputeTotals(in.Quotes, in.Invoices, in.Planned, in.Actual)

	assertAmount(t, 1_000_000, totals.TotalQuotes)
	assertAmount(t, 900_000, totals.TotalInvoices)
	assertAmount(t, 400_000, totals.TotalPlannedExpense)
	assertAmount(t, 500_000, totals.TotalActualExpense)
	assertAmount(t, 600_000, totals.PlannedProfit)
	assertAmount(t, 400_000, totals.ActualProfit)
	assertAmount(t, -200_000, totals.ProfitVariance)
	assert.InDelta(t, 44.444, totals.ProfitMargin, 0.001)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil, nil, nil, nil)

	assert.True(t, totals.TotalQuotes.IsZero())
	assert.True(t, totals.TotalInvoices.IsZero())
	assert.True(t, totals.ProfitVariance.IsZero())
	assert.Equal(t, 0.0, totals.ProfitMargin)
}

func TestComputeTotals_StatusFilters(t *testing.T) {
	quotes := []Quote{
		{Status: "sent", TotalAmount: d(100)},
		{Status: "draft", TotalAmount: d(50)},
		{Status: "rejected", TotalAmount: d(9_000_000)},
	}
	invoices := []Invoice{
		{Status: "sent", TotalAmount: d(70)},
		{Status: "paid", TotalAmount: d(30)},
		{Status: "draft", TotalAmount: d(1000)},
		{Status: "cancelled", TotalAmount: d(1000)},
	}
	planned := []Expense{
		{Status: "approved", Amount: d(40)},
		{Status: "pending", Amount: d(1000)},
	}
	actual := []Expense{
		{Status: "approved", Amount: d(60)},
		{Status: "rejected", Amount: d(1000)},
		{Status: "Approved", Amount: d(1000)},
	}

	totals := ComputeTotals(quotes, invoices, planned, actual)

	assertAmount(t, 150, totals.TotalQuotes)
	assertAmount(t, 100, totals.TotalInvoices)
	assertAmount(t, 40, totals.TotalPlannedExpense)
	assertAmount(t, 60, totals.TotalActualExpense)
	assertAmount(t, 110, totals.PlannedProfit)
	assertAmount(t, 40, totals.ActualProfit)
	assertAmount(t, -70, totals.ProfitVariance)
	assert.InDelta(t, 40.0, totals.ProfitMargin, 1e-9)
}

func TestComputeTotals_ZeroRevenueMargin(t *testing.T) {
	totals := ComputeTotals(nil, nil, nil, []Expense{{Status: "approved", Amount: d(500)}})

	assertAmount(t, -500, totals.ActualProfit)
	assert.Equal(t, 0.0, totals.ProfitMargin)
}

func TestComputeTotals_VarianceIdentity(t *testing.T) {
	cases := []Input{
		{},
		sampleInput(),
		{Quotes: []Quote{{Status: "sent", TotalAmount: d(10)}}},
		{Actual: []Expense{{Status: "approved", Amount: d(7)}}},
	}
	for _, in := range cases {
		totals := ComputeTotals(in.Quotes, in.Invoices, in.Planned, in.Actual)
		assert.True(t, totals.ProfitVariance.Equal(totals.ActualProfit.Sub(totals.PlannedProfit)))
	}
}
