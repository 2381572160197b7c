package core

import "testing"

func expenseFor(category string, cents int64) Expense {
	return Expense{
		Date:     NewDate(2026, 1, 26),
		Category: category,
		Amount:   Money{Cents: cents},
		Currency: "BDT",
	}
}

func TestSummarize(t *testing.T) {
	rows := []Expense{
		expenseFor("rent", 40000),
		expenseFor("food", 25050),
		expenseFor("transport", 8000),
	}
	sum := Summarize(rows)

	if sum.Count != 3 {
		t.Fatalf("expected count 3, got %d", sum.Count)
	}
	if sum.GrandTotal.Cents != 73050 {
		t.Fatalf("expected grand total 73050 cents, got %d", sum.GrandTotal.Cents)
	}

	want := []CategoryAmount{
		{Name: "food", Amount: Money{Cents: 25050}},
		{Name: "rent", Amount: Money{Cents: 40000}},
		{Name: "transport", Amount: Money{Cents: 8000}},
	}
	if len(sum.ByCategory) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(sum.ByCategory))
	}
	for i, ca := range sum.ByCategory {
		if ca != want[i] {
			t.Fatalf("category %d: expected %+v, got %+v", i, want[i], ca)
		}
	}
}

func TestSummarizeGroupsCaseInsensitively(t *testing.T) {
	rows := []Expense{
		expenseFor("Food", 100),
		expenseFor("food", 200),
		expenseFor("FOOD", 300),
	}
	sum := Summarize(rows)
	if len(sum.ByCategory) != 1 {
		t.Fatalf("expected one category, got %d", len(sum.ByCategory))
	}
	if sum.ByCategory[0].Name != "food" || sum.ByCategory[0].Amount.Cents != 600 {
		t.Fatalf("unexpected group %+v", sum.ByCategory[0])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Count != 0 {
		t.Fatalf("expected count 0, got %d", sum.Count)
	}
	if sum.GrandTotal.Cents != 0 {
		t.Fatalf("expected zero grand total, got %d", sum.GrandTotal.Cents)
	}
	if len(sum.ByCategory) != 0 {
		t.Fatalf("expected no categories, got %d", len(sum.ByCategory))
	}
}
