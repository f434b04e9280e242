package reconciliation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryToken(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "first word", description: "Vật liệu xây dựng", want: "Vật"},
		{name: "leading whitespace", description: "   Labor  overtime", want: "Labor"},
		{name: "tab separated", description: "Transport\tto site", want: "Transport"},
		{name: "empty", description: "", want: "Other"},
		{name: "blank", description: "   ", want: "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryToken(tt.description))
		})
	}
}

func TestBuildCategoryComparison_SampleScenario(t *testing.T) {
	in := sampleInput()
	rows := BuildCategoryComparison(in.Planned, in.Actual, Directory{}, DefaultOptions())

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "Vật", row.Token)
	assert.Equal(t, "Vật liệu", row.Category)
	assertAmount(t, 400_000, row.Planned)
	assertAmount(t, 500_000, row.Actual)
	assertAmount(t, 100_000, row.Variance)
	assert.InDelta(t, 25.0, row.VariancePercent, 1e-9)
	assert.Equal(t, StatusOverBudget, row.Status)
	assert.Equal(t, Unspecified, row.Department)
	assert.Equal(t, Unspecified, row.ResponsibleParty)
}

func TestBuildCategoryComparison_Classification(t *testing.T) {
	tests := []struct {
		name        string
		planned     int64
		actual      int64
		wantStatus  string
		wantNote    string
		wantPercent float64
	}{
		{name: "unplanned spend", planned: 0, actual: 100, wantStatus: StatusOverBudget, wantNote: "Outside original plan", wantPercent: 0},
		{name: "not yet executed wins over percent rule", planned: 100, actual: 0, wantStatus: StatusUnderBudget, wantNote: "Not yet executed", wantPercent: -100},
		{name: "over by five percent", planned: 100, actual: 105, wantStatus: StatusOverBudget, wantNote: "Over plan", wantPercent: 5},
		{name: "under by ten percent", planned: 100, actual: 90, wantStatus: StatusUnderBudget, wantNote: "Under plan", wantPercent: -10},
		{name: "within band", planned: 100, actual: 104, wantStatus: StatusOnBudget, wantNote: "Within plan", wantPercent: 4},
		{name: "exact", planned: 100, actual: 100, wantStatus: StatusOnBudget, wantNote: "Within plan", wantPercent: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var planned, actual []Expense
			if tt.planned != 0 {
				planned = []Expense{{Status: "approved", Description: "Labor", Amount: d(tt.planned)}}
			}
			if tt.actual != 0 {
				actual = []Expense{{Status: "approved", Description: "Labor", Amount: d(tt.actual)}}
			}

			rows := BuildCategoryComparison(planned, actual, Directory{}, DefaultOptions())

			require.Len(t, rows, 1)
			assert.Equal(t, tt.wantStatus, rows[0].Status)
			assert.Equal(t, tt.wantNote, rows[0].Note)
			assert.InDelta(t, tt.wantPercent, rows[0].VariancePercent, 1e-9)
		})
	}
}

func TestBuildCategoryComparison_CustomTolerance(t *testing.T) {
	planned := []Expense{{Status: "approved", Description: "Labor", Amount: d(100)}}
	actual := []Expense{{Status: "approved", Description: "Labor", Amount: d(108)}}

	rows := BuildCategoryComparison(planned, actual, Directory{}, Options{TolerancePct: 10})

	require.Len(t, rows, 1)
	assert.Equal(t, StatusOnBudget, rows[0].Status)
}

func TestBuildCategoryComparison_OmitsZeroRowsAndUnapproved(t *testing.T) {
	planned := []Expense{
		{Status: "approved", Description: "Permits", Amount: d(0)},
		{Status: "pending", Description: "Labor", Amount: d(500)},
	}
	actual := []Expense{
		{Status: "approved", Description: "Permits", Amount: d(0)},
		{Status: "rejected", Description: "Transport", Amount: d(300)},
	}

	rows := BuildCategoryComparison(planned, actual, Directory{}, DefaultOptions())

	assert.Empty(t, rows)
}

func TestBuildCategoryComparison_SortedByAbsoluteVariance(t *testing.T) {
	planned := []Expense{
		{Status: "approved", Description: "Labor", Amount: d(1000)},
		{Status: "approved", Description: "Materials", Amount: d(1000)},
		{Status: "approved", Description: "Transport", Amount: d(1000)},
	}
	actual := []Expense{
		{Status: "approved", Description: "Labor", Amount: d(1100)},
		{Status: "approved", Description: "Materials", Amount: d(400)},
		{Status: "approved", Description: "Transport", Amount: d(1000)},
		{Status: "approved", Description: "", Amount: d(250)},
	}

	rows := BuildCategoryComparison(planned, actual, Directory{}, DefaultOptions())

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Materials", "Other", "Labor", "Transport"},
		[]string{rows[0].Token, rows[1].Token, rows[2].Token, rows[3].Token})
}

func TestBuildCategoryComparison_NamesAndDepartments(t *testing.T) {
	dir := Directory{
		Employees:   map[string]string{"e1": "Lan Nguyen", "e2": "An Tran"},
		Departments: map[string]string{"d1": "Site", "d2": "Procurement"},
	}
	planned := []Expense{
		{Status: "approved", Description: "Materials cement", Amount: d(100), DepartmentID: "d2", EmployeeID: "e1"},
	}
	actual := []Expense{
		{Status: "approved", Description: "Materials steel", Amount: d(80), DepartmentID: "d1", EmployeeID: "e2"},
		{Status: "approved", Description: "Materials sand", Amount: d(40), EmployeeID: "e1"},
		{Status: "approved", Description: "Materials gravel", Amount: d(10), EmployeeID: "missing"},
	}

	rows := BuildCategoryComparison(planned, actual, dir, DefaultOptions())

	require.Len(t, rows, 1)
	assert.Equal(t, "Materials", rows[0].Category)
	assert.Equal(t, "Site", rows[0].Department)
	assert.Equal(t, "An Tran, Lan Nguyen", rows[0].ResponsibleParty)
	assertAmount(t, 130, rows[0].Actual)
}

func TestBuildCategoryComparison_ReconcilesWithTotals(t *testing.T) {
	planned := []Expense{
		{Status: "approved", Description: "Labor week 1", Amount: d(300)},
		{Status: "approved", Description: "Labor week 2", Amount: d(200)},
		{Status: "approved", Description: "Materials", Amount: d(700)},
		{Status: "pending", Description: "Materials", Amount: d(999)},
	}
	actual := []Expense{
		{Status: "approved", Description: "Labor", Amount: d(650)},
		{Status: "approved", Description: "", Amount: d(45)},
		{Status: "approved", Description: "Fuel", Amount: d(120)},
	}

	rows := BuildCategoryComparison(planned, actual, Directory{}, DefaultOptions())
	totals := ComputeTotals(nil, nil, planned, actual)

	plannedSum, actualSum := decimal.Zero, decimal.Zero
	for _, r := range rows {
		plannedSum = plannedSum.Add(r.Planned)
		actualSum = actualSum.Add(r.Actual)
		assert.False(t, r.Planned.IsZero() && r.Actual.IsZero())
		if r.Planned.IsZero() {
			assert.Equal(t, 0.0, r.VariancePercent)
		}
	}
	assert.True(t, plannedSum.Equal(totals.TotalPlannedExpense))
	assert.True(t, actualSum.Equal(totals.TotalActualExpense))
}
