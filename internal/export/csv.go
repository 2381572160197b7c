// Package export writes filtered listings to interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"kharcha/internal/core"
)

var csvHeader = []string{"id", "date", "category", "amount", "currency", "note", "created_at"}

// WriteCSV writes the rows as CSV with a header line. Amounts render at
// minor-unit precision.
func WriteCSV(w io.Writer, rows []core.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range rows {
		record := []string{
			e.ID,
			e.Date.String(),
			e.Category,
			e.Amount.String(),
			e.Currency,
			e.Note,
			e.CreatedAt.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes the rows as CSV to path, creating or truncating the file.
func ToFile(path string, rows []core.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
