package core

import "sort"

// CategoryAmount is an amount aggregated under one category.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary is the aggregate view over a (usually pre-filtered) set of
// expenses.
type Summary struct {
	Count      int
	GrandTotal Money
	ByCategory []CategoryAmount
}

// Summarize groups expenses by normalized category and totals them in cents.
// Categories come back in alphabetical order so reports are reproducible.
// An empty input yields a zero Summary, not an error.
func Summarize(rows []Expense) Summary {
	totals := make(map[string]int64)
	var grand int64
	for _, e := range rows {
		key := NormalizeCategory(e.Category)
		totals[key] += e.Amount.Cents
		grand += e.Amount.Cents
	}

	byCat := make([]CategoryAmount, 0, len(totals))
	for name, cents := range totals {
		byCat = append(byCat, CategoryAmount{Name: name, Amount: Money{Cents: cents}})
	}
	sort.Slice(byCat, func(i, j int) bool { return byCat[i].Name < byCat[j].Name })

	return Summary{
		Count:      len(rows),
		GrandTotal: Money{Cents: grand},
		ByCategory: byCat,
	}
}
