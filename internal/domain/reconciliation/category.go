package reconciliation

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryRow compares planned and actual spend for one description token.
type CategoryRow struct {
	Token            string          `json:"token"`
	Category         string          `json:"category"`
	Department       string          `json:"department"`
	Planned          decimal.Decimal `json:"planned"`
	Actual           decimal.Decimal `json:"actual"`
	Variance         decimal.Decimal `json:"variance"`
	VariancePercent  float64         `json:"variance_percent"`
	Status           string          `json:"status"`
	ResponsibleParty string          `json:"responsible_party"`
	Note             string          `json:"note"`
}

// CategoryToken returns the first whitespace-delimited word of a description,
// or OtherLabel when the description is blank.
func CategoryToken(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return OtherLabel
	}
	return fields[0]
}

type categoryGroup struct {
	amount     decimal.Decimal
	department string
	employees  map[string]struct{}
	label      []string
}

func groupByToken(expenses []Expense, dir Directory) map[string]*categoryGroup {
	groups := make(map[string]*categoryGroup)
	for _, e := range expenses {
		if !e.approved() {
			continue
		}
		token := CategoryToken(e.Description)
		g, ok := groups[token]
		if !ok {
			g = &categoryGroup{department: Unspecified, employees: make(map[string]struct{})}
			groups[token] = g
			g.label = labelWords(e.Description)
		} else {
			g.label = commonPrefix(g.label, labelWords(e.Description))
		}
		g.amount = g.amount.Add(e.Amount)
		if dept := resolve(dir.Departments, e.DepartmentID); dept != Unspecified {
			g.department = dept
		}
		if name := resolve(dir.Employees, e.EmployeeID); name != Unspecified {
			g.employees[name] = struct{}{}
		}
	}
	return groups
}

// BuildCategoryComparison groups approved expenses by CategoryToken and returns
// one row per token with a non-zero side, largest absolute variance first.
func BuildCategoryComparison(planned, actual []Expense, dir Directory, opts Options) []CategoryRow {
	plannedGroups := groupByToken(planned, dir)
	actualGroups := groupByToken(actual, dir)

	tokens := make(map[string]struct{}, len(plannedGroups)+len(actualGroups))
	for t := range plannedGroups {
		tokens[t] = struct{}{}
	}
	for t := range actualGroups {
		tokens[t] = struct{}{}
	}

	rows := make([]CategoryRow, 0, len(tokens))
	for token := range tokens {
		p, a := plannedGroups[token], actualGroups[token]

		row := CategoryRow{Token: token, Department: Unspecified}
		var label []string
		names := make(map[string]struct{})
		if p != nil {
			row.Planned = p.amount
			row.Department = p.department
			label = p.label
			for n := range p.employees {
				names[n] = struct{}{}
			}
		}
		if a != nil {
			row.Actual = a.amount
			if a.department != Unspecified {
				row.Department = a.department
			}
			if label == nil {
				label = a.label
			} else {
				label = commonPrefix(label, a.label)
			}
			for n := range a.employees {
				names[n] = struct{}{}
			}
		}
		if row.Planned.IsZero() && row.Actual.IsZero() {
			continue
		}

		row.Category = token
		if len(label) > 0 {
			row.Category = strings.Join(label, " ")
		}
		row.Variance = row.Actual.Sub(row.Planned)
		row.VariancePercent = percentOf(row.Variance, row.Planned)
		row.Status, row.Note = classify(row.Planned, row.Actual, row.Variance, row.VariancePercent, opts)
		row.ResponsibleParty = joinNames(names)

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		vi, vj := rows[i].Variance.Abs(), rows[j].Variance.Abs()
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return rows[i].Token < rows[j].Token
	})
	return rows
}

// classify applies the budget rules in order; the first match wins.
func classify(planned, actual, variance decimal.Decimal, variancePct float64, opts Options) (string, string) {
	switch {
	case planned.IsZero() && actual.IsPositive():
		return StatusOverBudget, "Outside original plan"
	case actual.IsZero() && planned.IsPositive():
		return StatusUnderBudget, "Not yet executed"
	case math.Abs(variancePct) >= opts.tolerance():
		if variance.IsPositive() {
			return StatusOverBudget, "Over plan"
		}
		return StatusUnderBudget, "Under plan"
	default:
		return StatusOnBudget, "Within plan"
	}
}

func resolve(names map[string]string, id string) string {
	if id == "" {
		return Unspecified
	}
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return Unspecified
}

func joinNames(set map[string]struct{}) string {
	if len(set) == 0 {
		return Unspecified
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func labelWords(description string) []string {
	words := strings.Fields(description)
	if len(words) == 0 {
		return []string{OtherLabel}
	}
	return words
}

// commonPrefix keeps the leading words shared by a and b. Both start with the
// same token, so the result is never empty.
func commonPrefix(a, b []string) []string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[:n]
}
