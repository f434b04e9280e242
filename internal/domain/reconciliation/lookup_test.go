package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Vật liệu Xây Dựng ", want: "vat lieu xay dung"},
		{in: "Đường ống", want: "duong ong"},
		{in: "Café crème", want: "cafe creme"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDescription(tt.in))
		})
	}
}

func TestPlannedIndex_Lookup(t *testing.T) {
	idx := NewPlannedIndex([]Expense{
		{Status: "approved", Description: "Vật liệu xây dựng", Amount: d(400)},
		{Status: "approved", Description: "Vật tư điện", Amount: d(100)},
		{Status: "approved", Description: "Nhân công", Amount: d(250)},
		{Status: "approved", Description: "nhan cong", Amount: d(50)},
		{Status: "pending", Description: "Vận chuyển", Amount: d(999)},
	})

	tests := []struct {
		name        string
		description string
		want        int64
	}{
		{name: "exact normalized match", description: "VAT LIEU XAY DUNG", want: 400},
		{name: "duplicates accumulate", description: "Nhân công", want: 300},
		{name: "token fallback sums the token group", description: "Vật liệu", want: 500},
		{name: "unapproved plan ignored", description: "Vận chuyển", want: 0},
		{name: "no match", description: "Fuel", want: 0},
		{name: "empty description", description: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, idx.Lookup(tt.description))
		})
	}
}

func TestPlannedIndex_ExceedsPlan(t *testing.T) {
	idx := NewPlannedIndex([]Expense{{Status: "approved", Description: "Labor", Amount: d(100)}})

	assert.True(t, idx.ExceedsPlan(Expense{Description: "labor", Amount: d(101)}))
	assert.False(t, idx.ExceedsPlan(Expense{Description: "Labor", Amount: d(100)}))
	assert.False(t, idx.ExceedsPlan(Expense{Description: "Fuel", Amount: d(1_000)}))
}

func TestBuild(t *testing.T) {
	in := sampleInput()
	in.Actual = append(in.Actual, Expense{ID: "a2", Status: "draft", Description: "Vật liệu", Amount: d(1)})

	report := Build(in)

	assertAmount(t, -200_000, report.Totals.ProfitVariance)
	assert.Len(t, report.Categories, 1)
	assert.Len(t, report.Objects, 1)
	assert.Equal(t, OtherObjectKey, report.Objects[0].ObjectID)
	assert.Len(t, report.ActualLines, 1)
	line := report.ActualLines[0]
	assert.Equal(t, "a1", line.ID)
	assertAmount(t, 400_000, line.PlannedAmount)
	assert.True(t, line.ExceedsPlan)
}

func TestBuild_ExceedsPlanMatchesIndex(t *testing.T) {
	planned := []Expense{{Status: "approved", Description: "Labor", Amount: d(100)}}
	actual := []Expense{
		{ID: "over", Status: "approved", Description: "labor", Amount: d(101)},
		{ID: "equal", Status: "approved", Description: "Labor", Amount: d(100)},
		{ID: "unplanned", Status: "approved", Description: "Fuel", Amount: d(1_000)},
	}
	idx := NewPlannedIndex(planned)

	report := Build(Input{Planned: planned, Actual: actual})

	require.Len(t, report.ActualLines, len(actual))
	for i, line := range report.ActualLines {
		assert.Equal(t, idx.ExceedsPlan(actual[i]), line.ExceedsPlan, line.ID)
	}
	assert.True(t, report.ActualLines[0].ExceedsPlan)
	assert.False(t, report.ActualLines[1].ExceedsPlan)
	assert.False(t, report.ActualLines[2].ExceedsPlan)
}
