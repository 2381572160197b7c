package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for expense dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the wire format for creation timestamps.
	// The data files carry no zone information.
	TimestampLayout = "2006-01-02T15:04:05"
)

type (
	// Date is a calendar date with day resolution.
	Date struct {
		time.Time
	}

	// Timestamp is a creation time with second resolution.
	Timestamp struct {
		time.Time
	}

	// Expense is a single ledger entry. JSON tags match the on-disk
	// envelope exactly.
	Expense struct {
		ID        string    `json:"id"`
		Date      Date      `json:"date"`
		Category  string    `json:"category"`
		Amount    Money     `json:"amount"`
		Currency  string    `json:"currency"`
		Note      string    `json:"note"`
		CreatedAt Timestamp `json:"created_at"`
	}
)

var (
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidCategory = errors.New("category cannot be empty")
	ErrInvalidAmount   = errors.New("amount must be > 0")
	ErrInvalidCurrency = errors.New("currency cannot be empty")
)

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// InMonth reports whether d falls inside a YYYY-MM month.
func (d Date) InMonth(month string) bool {
	return strings.HasPrefix(d.String(), month)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d.Time = t
	return nil
}

// NewTimestamp truncates t to second resolution.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

func (ts Timestamp) String() string {
	return ts.Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.Format(TimestampLayout) + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	ts.Time = t
	return nil
}

// NormalizeCategory trims and lowercases a category name. Stored categories
// are always in this form, so filtering and grouping compare equal strings.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewExpense builds an unsaved expense from validated fields. The ID is left
// empty; the store assigns it together with persistence. CreatedAt is taken
// from now at second resolution.
func NewExpense(date Date, category, currency, note string, amount Money, now time.Time) (Expense, error) {
	e := Expense{
		Date:      date,
		Category:  NormalizeCategory(category),
		Amount:    amount,
		Currency:  strings.TrimSpace(currency),
		Note:      note,
		CreatedAt: NewTimestamp(now),
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrInvalidCategory
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Currency) == "" {
		return ErrInvalidCurrency
	}
	return nil
}
