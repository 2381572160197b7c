// Package query derives filtered, ordered views over an expense collection.
// Every function is pure: inputs are never mutated and results are fresh
// slices, so the same call always produces the same output.
package query

import (
	"errors"
	"fmt"
	"sort"

	"kharcha/internal/core"
)

var (
	ErrInvalidLimit   = errors.New("limit must be > 0")
	ErrInvalidSortKey = errors.New("sort key must be one of date, amount, category")
)

// Filter restricts a collection. Zero values impose no constraint; when
// several constraints are set they all apply.
type Filter struct {
	Month     string      // YYYY-MM
	Category  string      // compared case-insensitively
	From      *core.Date  // inclusive lower date bound
	To        *core.Date  // inclusive upper date bound
	MinAmount *core.Money // inclusive
	MaxAmount *core.Money // inclusive
}

// Match reports whether a single expense satisfies the filter.
func (f Filter) Match(e core.Expense) bool {
	if f.Month != "" && !e.Date.InMonth(f.Month) {
		return false
	}
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	if f.Category != "" && core.NormalizeCategory(e.Category) != core.NormalizeCategory(f.Category) {
		return false
	}
	if f.MinAmount != nil && e.Amount.Cents < f.MinAmount.Cents {
		return false
	}
	if f.MaxAmount != nil && e.Amount.Cents > f.MaxAmount.Cents {
		return false
	}
	return true
}

// Apply returns the expenses matching f, in their original order. An empty
// result is a valid empty slice, never an error.
func Apply(rows []core.Expense, f Filter) []core.Expense {
	out := make([]core.Expense, 0, len(rows))
	for _, e := range rows {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortKey selects the field a listing is ordered by.
type SortKey string

const (
	SortDate     SortKey = "date"
	SortAmount   SortKey = "amount"
	SortCategory SortKey = "category"
)

// ParseSortKey validates a user-supplied sort field name.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortDate, SortAmount, SortCategory:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidSortKey, s)
}

// SortBy returns a copy of rows ordered by key. The sort is stable: rows
// comparing equal keep their original relative order. Default order when no
// key was requested is ascending by date.
func SortBy(rows []core.Expense, key SortKey, descending bool) ([]core.Expense, error) {
	var less func(a, b core.Expense) bool
	switch key {
	case SortDate:
		less = func(a, b core.Expense) bool { return a.Date.Before(b.Date) }
	case SortAmount:
		less = func(a, b core.Expense) bool { return a.Amount.Cents < b.Amount.Cents }
	case SortCategory:
		less = func(a, b core.Expense) bool {
			return core.NormalizeCategory(a.Category) < core.NormalizeCategory(b.Category)
		}
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSortKey, string(key))
	}

	out := append([]core.Expense(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

// Limit truncates rows to the first n entries. n must be positive; callers
// that want no truncation simply skip this stage.
func Limit(rows []core.Expense, n int) ([]core.Expense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, n)
	}
	if n >= len(rows) {
		return append([]core.Expense(nil), rows...), nil
	}
	return append([]core.Expense(nil), rows[:n]...), nil
}
