package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"kharcha/internal/core"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Faint(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	amountStyle = lipgloss.NewStyle().Bold(true)
	noteStyle   = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Italic(true)
)

// RenderExpense formats one record as a single report line:
// id | date | category | amount currency | note.
func RenderExpense(e core.Expense) string {
	parts := []string{
		idStyle.Render(e.ID),
		e.Date.String(),
		e.Category,
		amountStyle.Render(fmt.Sprintf("%s %s", e.Amount, e.Currency)),
	}
	if e.Note != "" {
		parts = append(parts, noteStyle.Render(e.Note))
	}
	return strings.Join(parts, " | ")
}

// RenderList formats a listing with a running total, in the layout of the
// classic report: count line, rule, one line per record, rule, total.
func RenderList(rows []core.Expense, currency string) string {
	if len(rows) == 0 {
		return emptyStyle.Render("No expenses found")
	}

	var total core.Money
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d expense(s):\n", len(rows)))
	b.WriteString(rule(80) + "\n")
	for _, e := range rows {
		b.WriteString(RenderExpense(e) + "\n")
		total = total.Add(e.Amount)
	}
	b.WriteString(rule(80) + "\n")
	b.WriteString(fmt.Sprintf("Total: %s %s", amountStyle.Render(total.String()), currency))
	return b.String()
}

// RenderSummary formats the aggregate report block.
func RenderSummary(sum core.Summary, currency string) string {
	var b strings.Builder
	b.WriteString(rule(60) + "\n")
	b.WriteString(titleStyle.Render("EXPENSE SUMMARY") + "\n")
	b.WriteString(rule(60) + "\n")
	b.WriteString(fmt.Sprintf("Total Expenses: %d\n", sum.Count))
	b.WriteString(fmt.Sprintf("Grand Total: %s %s\n", amountStyle.Render(sum.GrandTotal.String()), currency))
	b.WriteString("\n")

	if len(sum.ByCategory) == 0 {
		b.WriteString(emptyStyle.Render("No expenses found"))
		return b.String()
	}

	b.WriteString("By Category:\n")
	b.WriteString(rule(60) + "\n")
	for _, ca := range sum.ByCategory {
		b.WriteString(fmt.Sprintf("  %-20s %10s %s\n", titleCase(ca.Name), ca.Amount, currency))
	}
	b.WriteString(rule(60))
	return b.String()
}

func rule(width int) string {
	return ruleStyle.Render(strings.Repeat("-", width))
}

// titleCase uppercases the first letter for display; stored categories are
// normalized lowercase.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
