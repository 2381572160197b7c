package core

import (
	"fmt"
	"time"
)

// IDPrefix starts every generated expense ID.
const IDPrefix = "EXP"

// GenerateID builds the canonical expense ID: EXP-<YYYYMMDD>-<HHMMSS>, where
// the date part comes from the expense date and the time part from the
// creation clock. Pure; uniqueness against an existing collection is the
// store's job (see DisambiguateID).
func GenerateID(date Date, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", IDPrefix, date.Format("20060102"), now.Format("150405"))
}

// DisambiguateID appends a numeric suffix for collision retries: the second
// expense created within one clock second gets "-2", the third "-3", and so
// on. seq starts at 2; seq < 2 returns the base unchanged.
func DisambiguateID(base string, seq int) string {
	if seq < 2 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, seq)
}
