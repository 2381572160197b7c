// Package services orchestrates the storage, query and aggregation layers
// behind the operations the CLI exposes. It is also the logging boundary:
// every call emits one structured event with the operation name, the
// affected record and the outcome.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/log"
	"kharcha/internal/query"
	"kharcha/internal/storage"
)

// ExpenseService wires the repository to the pure query and aggregation
// functions. One instance per process; not safe for concurrent use, matching
// the single-writer design of the store.
type ExpenseService struct {
	store           *storage.Repository
	defaultCurrency string
	logger          *log.Logger
	now             func() time.Time
}

// NewExpenseService creates a service over the given repository. A nil
// logger disables operation logging.
func NewExpenseService(store *storage.Repository, defaultCurrency string, logger *log.Logger) *ExpenseService {
	if logger == nil {
		logger = log.Discard()
	}
	return &ExpenseService{
		store:           store,
		defaultCurrency: defaultCurrency,
		logger:          logger.WithComponent(log.ComponentService),
		now:             time.Now,
	}
}

// Load reads the ledger from disk. Safe to call repeatedly; each call
// replaces the in-memory collection.
func (s *ExpenseService) Load(ctx context.Context) error {
	err := s.store.Load(ctx)
	s.logOp(log.OpLoad, "", err, log.FieldCount, s.store.Len(), log.FieldPath, s.store.Path())
	return err
}

// AddParams carries the fields for a new expense. A zero Date means today;
// an empty Currency means the configured default.
type AddParams struct {
	Date     core.Date
	Category string
	Amount   core.Money
	Currency string
	Note     string
}

// Add validates the fields, stores the new expense and persists the ledger.
func (s *ExpenseService) Add(ctx context.Context, p AddParams) (core.Expense, error) {
	now := s.now()
	date := p.Date
	if date.IsZero() {
		date = core.NewDate(now.Year(), int(now.Month()), now.Day())
	}
	currency := p.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	exp, err := core.NewExpense(date, p.Category, currency, p.Note, p.Amount, now)
	if err != nil {
		s.logOp(log.OpAdd, "", err)
		return core.Expense{}, err
	}

	stored, err := s.store.Add(ctx, exp)
	s.logOp(log.OpAdd, stored.ID, err,
		log.FieldCategory, exp.Category, log.FieldAmountCents, exp.Amount.Cents)
	if err != nil {
		return core.Expense{}, err
	}
	return stored, nil
}

// ListParams selects, orders and truncates a listing. Composition order is
// fixed: filter, then sort, then limit.
type ListParams struct {
	Filter     query.Filter
	SortKey    query.SortKey // empty means date ascending
	Descending bool
	Limit      *int // nil means no truncation
}

// List returns a read-only derived view of the ledger.
func (s *ExpenseService) List(ctx context.Context, p ListParams) ([]core.Expense, error) {
	rows := query.Apply(s.store.All(), p.Filter)

	key := p.SortKey
	if key == "" {
		key = query.SortDate
	}
	rows, err := query.SortBy(rows, key, p.Descending)
	if err != nil {
		s.logOp(log.OpList, "", err)
		return nil, err
	}

	if p.Limit != nil {
		rows, err = query.Limit(rows, *p.Limit)
		if err != nil {
			s.logOp(log.OpList, "", err)
			return nil, err
		}
	}

	s.logOp(log.OpList, "", nil, log.FieldCount, len(rows))
	return rows, nil
}

// Summary filters the ledger and aggregates per-category and grand totals.
func (s *ExpenseService) Summary(ctx context.Context, f query.Filter) (core.Summary, error) {
	sum := core.Summarize(query.Apply(s.store.All(), f))
	s.logOp(log.OpSummary, "", nil,
		log.FieldCount, sum.Count, log.FieldAmountCents, sum.GrandTotal.Cents)
	return sum, nil
}

// EditParams carries partial updates; nil fields keep the stored value.
// ID and CreatedAt are immutable and cannot appear here.
type EditParams struct {
	Date     *core.Date
	Category *string
	Amount   *core.Money
	Currency *string
	Note     *string
}

// IsZero reports whether no field would change.
func (p EditParams) IsZero() bool {
	return p.Date == nil && p.Category == nil && p.Amount == nil && p.Currency == nil && p.Note == nil
}

// Edit merges the partial fields over the stored record, re-validates the
// result and persists it.
func (s *ExpenseService) Edit(ctx context.Context, id string, p EditParams) (core.Expense, error) {
	existing, ok := s.store.Get(id)
	if !ok {
		err := fmt.Errorf("%w: %s", storage.ErrNotFound, id)
		s.logOp(log.OpEdit, id, err)
		return core.Expense{}, err
	}

	merged := existing
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.Category != nil {
		merged.Category = core.NormalizeCategory(*p.Category)
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Currency != nil {
		merged.Currency = *p.Currency
	}
	if p.Note != nil {
		merged.Note = *p.Note
	}

	updated, err := s.store.Update(ctx, id, merged)
	s.logOp(log.OpEdit, id, err)
	if err != nil {
		return core.Expense{}, err
	}
	return updated, nil
}

// Delete removes the record with the given ID.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	s.logOp(log.OpDelete, id, err)
	return err
}

// logOp emits one event per operation: name, affected record, outcome and
// the classified error kind on failure.
func (s *ExpenseService) logOp(op, id string, err error, extra ...any) {
	args := []any{log.FieldOperation, op}
	if id != "" {
		args = append(args, log.FieldExpenseID, id)
	}
	args = append(args, extra...)
	if err != nil {
		args = append(args, log.FieldSuccess, false,
			log.FieldErrorKind, ErrorKind(err), log.FieldError, err.Error())
		s.logger.Warn("operation failed", args...)
		return
	}
	args = append(args, log.FieldSuccess, true)
	s.logger.Info("operation completed", args...)
}

// ErrorKind maps an error to its stable taxonomy name, for logging and for
// the CLI's exit-code mapping.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, core.ErrInvalidCategory):
		return "invalid_category"
	case errors.Is(err, core.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, core.ErrInvalidCurrency):
		return "invalid_currency"
	case errors.Is(err, storage.ErrNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrCorruptData):
		return "corrupt_data"
	case errors.Is(err, storage.ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, query.ErrInvalidLimit):
		return "invalid_limit"
	case errors.Is(err, query.ErrInvalidSortKey):
		return "invalid_sort_key"
	default:
		return "io_error"
	}
}
