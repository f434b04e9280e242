// Package reconciliation derives plan-versus-actual figures for a single project
// from its quotes, invoices, planned expenses and actual expenses.
//
// Every function in this package is pure: inputs are treated as read-only
// snapshots, nothing is fetched or persisted, and no function returns an error.
// Missing optional data maps to documented defaults and undefined ratios are 0.
package reconciliation

import "github.com/shopspring/decimal"

// Status values recognised by the aggregation rules. Comparison is exact, any
// other value is excluded from the sums it would otherwise feed.
const (
	QuoteStatusRejected   = "rejected"
	InvoiceStatusSent     = "sent"
	InvoiceStatusPaid     = "paid"
	ExpenseStatusApproved = "approved"
)

// Budget classification of a comparison row.
const (
	StatusOverBudget  = "over_budget"
	StatusUnderBudget = "under_budget"
	StatusOnBudget    = "on_budget"
)

const (
	// OtherObjectKey is the allocation key for expenses without any cost object.
	OtherObjectKey = "khac"
	// OtherLabel is the display name used for empty descriptions and the other key.
	OtherLabel = "Other"
	// Unspecified replaces absent department and employee names.
	Unspecified = "Unspecified"
	// DefaultTolerancePct is the half-width of the on-budget band, in percent.
	DefaultTolerancePct = 5.0
)

// Quote is a proposed sale. Only its status and total matter here.
type Quote struct {
	ID          string
	Number      string
	Status      string
	TotalAmount decimal.Decimal
}

// Invoice is a billed sale.
type Invoice struct {
	ID            string
	Number        string
	Status        string
	PaymentStatus string
	TotalAmount   decimal.Decimal
}

// Expense is the shape shared by planned and actual expenses. Optional ids are
// empty strings when absent.
type Expense struct {
	ID              string
	Description     string
	Amount          decimal.Decimal
	Status          string
	DepartmentID    string
	EmployeeID      string
	ExpenseObjectID string
	ObjectTotals    map[string]decimal.Decimal
	LineItems       []LineItem
}

// LineItem is one line of an expense with an optional split across cost objects.
type LineItem struct {
	LineTotal     *decimal.Decimal
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	ComponentsPct map[string]decimal.Decimal
}

// Total returns the explicit line total when present, else quantity × unit price.
func (l LineItem) Total() decimal.Decimal {
	if l.LineTotal != nil {
		return *l.LineTotal
	}
	return l.Quantity.Mul(l.UnitPrice)
}

// Directory resolves ids to display names.
type Directory struct {
	Objects     map[string]string
	Employees   map[string]string
	Departments map[string]string
}

// Options tunes classification.
type Options struct {
	TolerancePct float64
}

// DefaultOptions returns the standard ±5% on-budget band.
func DefaultOptions() Options {
	return Options{TolerancePct: DefaultTolerancePct}
}

func (o Options) tolerance() float64 {
	if o.TolerancePct <= 0 {
		return DefaultTolerancePct
	}
	return o.TolerancePct
}

func (e Expense) approved() bool {
	return e.Status == ExpenseStatusApproved
}

func approvedOnly(expenses []Expense) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.approved() {
			out = append(out, e)
		}
	}
	return out
}
