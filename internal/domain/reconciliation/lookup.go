package reconciliation

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeDescription lowercases, trims and strips diacritics so that
// "Vật liệu" and "vat lieu" compare equal.
func NormalizeDescription(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	// đ has no decomposition
	return strings.ReplaceAll(out, "đ", "d")
}

// PlannedIndex answers "how much was planned for this?" for a single actual
// expense. It is a heuristic, not an authoritative join: unrelated expenses
// sharing a first word match each other at the token level.
type PlannedIndex struct {
	byDescription map[string]decimal.Decimal
	byToken       map[string]decimal.Decimal
}

// NewPlannedIndex indexes approved planned expenses by normalized description
// and by normalized category token. Duplicate keys accumulate.
func NewPlannedIndex(planned []Expense) *PlannedIndex {
	idx := &PlannedIndex{
		byDescription: make(map[string]decimal.Decimal),
		byToken:       make(map[string]decimal.Decimal),
	}
	for _, e := range planned {
		if !e.approved() {
			continue
		}
		desc := NormalizeDescription(e.Description)
		idx.byDescription[desc] = idx.byDescription[desc].Add(e.Amount)
		token := NormalizeDescription(CategoryToken(e.Description))
		idx.byToken[token] = idx.byToken[token].Add(e.Amount)
	}
	return idx
}

// Lookup returns the planned amount for description: exact normalized match
// first, then token match, else zero.
func (idx *PlannedIndex) Lookup(description string) decimal.Decimal {
	if amount, ok := idx.byDescription[NormalizeDescription(description)]; ok {
		return amount
	}
	if amount, ok := idx.byToken[NormalizeDescription(CategoryToken(description))]; ok {
		return amount
	}
	return decimal.Zero
}

// ExceedsPlan reports whether e costs more than its matched planned amount.
// Expenses without a match never exceed.
func (idx *PlannedIndex) ExceedsPlan(e Expense) bool {
	return exceeds(e.Amount, idx.Lookup(e.Description))
}

func exceeds(amount, planned decimal.Decimal) bool {
	return planned.IsPositive() && amount.GreaterThan(planned)
}
