package reconciliation

import "github.com/shopspring/decimal"

// Input is everything a report needs, already scoped to one project.
type Input struct {
	Quotes    []Quote
	Invoices  []Invoice
	Planned   []Expense
	Actual    []Expense
	Directory Directory
	Options   Options
}

// ExpenseLine is an approved actual expense annotated with its matched plan.
type ExpenseLine struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PlannedAmount decimal.Decimal `json:"planned_amount"`
	ExceedsPlan   bool            `json:"exceeds_plan"`
}

// Report is the full display model of a project's finances.
type Report struct {
	Totals      Totals        `json:"totals"`
	Categories  []CategoryRow `json:"categories"`
	Objects     []ObjectRow   `json:"objects"`
	ActualLines []ExpenseLine `json:"actual_lines"`
}

// Build runs every derivation over in.
func Build(in Input) Report {
	idx := NewPlannedIndex(in.Planned)

	lines := make([]ExpenseLine, 0, len(in.Actual))
	for _, e := range approvedOnly(in.Actual) {
		planned := idx.Lookup(e.Description)
		lines = append(lines, ExpenseLine{
			ID:            e.ID,
			Description:   e.Description,
			Amount:        e.Amount,
			PlannedAmount: planned,
			ExceedsPlan:   exceeds(e.Amount, planned),
		})
	}

	return Report{
		Totals:      ComputeTotals(in.Quotes, in.Invoices, in.Planned, in.Actual),
		Categories:  BuildCategoryComparison(in.Planned, in.Actual, in.Directory, in.Options),
		Objects:     BuildObjectComparison(in.Planned, in.Actual, in.Directory),
		ActualLines: lines,
	}
}
