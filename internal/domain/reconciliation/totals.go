package reconciliation

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals holds the six headline figures of a project report plus derived values.
type Totals struct {
	TotalQuotes         decimal.Decimal `json:"total_quotes"`
	TotalPlannedExpense decimal.Decimal `json:"total_planned_expense"`
	PlannedProfit       decimal.Decimal `json:"planned_profit"`
	TotalInvoices       decimal.Decimal `json:"total_invoices"`
	TotalActualExpense  decimal.Decimal `json:"total_actual_expense"`
	ActualProfit        decimal.Decimal `json:"actual_profit"`
	ProfitVariance      decimal.Decimal `json:"profit_variance"`
	ProfitMargin        float64         `json:"profit_margin"`
}

// ComputeTotals sums the four collections. Rejected quotes, unsent invoices and
// unapproved expenses do not contribute.
func ComputeTotals(quotes []Quote, invoices []Invoice, planned, actual []Expense) Totals {
	var t Totals

	for _, q := range quotes {
		if q.Status != QuoteStatusRejected {
			t.TotalQuotes = t.TotalQuotes.Add(q.TotalAmount)
		}
	}
	for _, inv := range invoices {
		if inv.Status == InvoiceStatusSent || inv.Status == InvoiceStatusPaid {
			t.TotalInvoices = t.TotalInvoices.Add(inv.TotalAmount)
		}
	}
	t.TotalPlannedExpense = sumApproved(planned)
	t.TotalActualExpense = sumApproved(actual)

	t.PlannedProfit = t.TotalQuotes.Sub(t.TotalPlannedExpense)
	t.ActualProfit = t.TotalInvoices.Sub(t.TotalActualExpense)
	t.ProfitVariance = t.ActualProfit.Sub(t.PlannedProfit)
	t.ProfitMargin = percentOf(t.ActualProfit, t.TotalInvoices)

	return t
}

func sumApproved(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.approved() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// percentOf returns part / whole × 100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
