package reconciliation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ObjectRow compares planned and actual spend for one cost object.
type ObjectRow struct {
	ObjectID        string          `json:"object_id"`
	ObjectName      string          `json:"object_name"`
	Planned         decimal.Decimal `json:"planned"`
	Actual          decimal.Decimal `json:"actual"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent float64         `json:"variance_percent"`
}

// AllocateByObject spreads every approved expense across cost objects and
// returns the per-object totals.
//
// Each record uses the first applicable representation:
//  1. explicit ObjectTotals
//  2. line items carrying ComponentsPct, each share rounded to a whole unit
//  3. the whole amount on ExpenseObjectID, or OtherObjectKey when unset
func AllocateByObject(expenses []Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !e.approved() {
			continue
		}
		allocate(e, totals)
	}
	return totals
}

func allocate(e Expense, totals map[string]decimal.Decimal) {
	if len(e.ObjectTotals) > 0 {
		for id, amount := range e.ObjectTotals {
			totals[id] = totals[id].Add(amount)
		}
		return
	}

	allocated := false
	for _, line := range e.LineItems {
		if len(line.ComponentsPct) == 0 {
			continue
		}
		lineTotal := line.Total()
		for id, pct := range line.ComponentsPct {
			share := lineTotal.Mul(pct).Div(hundred).Round(0)
			totals[id] = totals[id].Add(share)
			allocated = true
		}
	}
	if allocated {
		return
	}

	key := e.ExpenseObjectID
	if key == "" {
		key = OtherObjectKey
	}
	totals[key] = totals[key].Add(e.Amount)
}

// BuildObjectComparison allocates planned and actual expenses independently and
// joins the results on object id. Objects that are zero on both sides are
// omitted.
func BuildObjectComparison(planned, actual []Expense, dir Directory) []ObjectRow {
	plannedTotals := AllocateByObject(planned)
	actualTotals := AllocateByObject(actual)

	ids := make(map[string]struct{}, len(plannedTotals)+len(actualTotals))
	for id, amount := range plannedTotals {
		if !amount.IsZero() {
			ids[id] = struct{}{}
		}
	}
	for id, amount := range actualTotals {
		if !amount.IsZero() {
			ids[id] = struct{}{}
		}
	}

	rows := make([]ObjectRow, 0, len(ids))
	for id := range ids {
		p, a := plannedTotals[id], actualTotals[id]
		variance := a.Sub(p)
		rows = append(rows, ObjectRow{
			ObjectID:        id,
			ObjectName:      ObjectName(dir, id),
			Planned:         p,
			Actual:          a,
			Variance:        variance,
			VariancePercent: percentOf(variance, p),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		vi, vj := rows[i].Variance.Abs(), rows[j].Variance.Abs()
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return rows[i].ObjectID < rows[j].ObjectID
	})
	return rows
}

// ObjectName resolves a cost object id for display.
func ObjectName(dir Directory, id string) string {
	if name, ok := dir.Objects[id]; ok && name != "" {
		return name
	}
	if id == OtherObjectKey {
		return OtherLabel
	}
	return id
}
