package cli

import (
	"strings"
	"testing"
	"time"

	"kharcha/internal/core"
)

func sampleExpense() core.Expense {
	return core.Expense{
		ID:        "EXP-20260126-102345",
		Date:      core.NewDate(2026, 1, 26),
		Category:  "food",
		Amount:    core.Money{Cents: 25050},
		Currency:  "BDT",
		Note:      "Lunch",
		CreatedAt: core.NewTimestamp(time.Date(2026, 1, 26, 10, 23, 45, 0, time.UTC)),
	}
}

func TestRenderExpense(t *testing.T) {
	line := RenderExpense(sampleExpense())
	for _, part := range []string{"EXP-20260126-102345", "2026-01-26", "food", "250.50 BDT", "Lunch"} {
		if !strings.Contains(line, part) {
			t.Fatalf("line %q missing %q", line, part)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	out := RenderList(nil, "BDT")
	if !strings.Contains(out, "No expenses found") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderListTotal(t *testing.T) {
	rows := []core.Expense{sampleExpense(), sampleExpense()}
	out := RenderList(rows, "BDT")
	if !strings.Contains(out, "Found 2 expense(s):") {
		t.Fatalf("missing count line in %q", out)
	}
	if !strings.Contains(out, "501.00") {
		t.Fatalf("missing running total in %q", out)
	}
}

func TestRenderSummary(t *testing.T) {
	sum := core.Summarize([]core.Expense{sampleExpense()})
	out := RenderSummary(sum, "BDT")
	for _, part := range []string{"EXPENSE SUMMARY", "Total Expenses: 1", "250.50", "Food"} {
		if !strings.Contains(out, part) {
			t.Fatalf("summary output missing %q:\n%s", part, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	out := RenderSummary(core.Summarize(nil), "BDT")
	if !strings.Contains(out, "Total Expenses: 0") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "No expenses found") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	codes := []int{ExitOK, ExitUsage, ExitValidation, ExitNotFound,
		ExitCorruptData, ExitUnsupportedVersion, ExitInvalidLimit, ExitIO}
	seen := make(map[int]bool)
	for _, c := range codes {
		if seen[c] {
			t.Fatalf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
}
