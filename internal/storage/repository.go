// Package storage persists the expense collection as a versioned JSON
// envelope on local disk. One file holds the whole ledger; every mutation
// rewrites it atomically (temp file + rename), so a reader never sees a
// truncated envelope.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kharcha/internal/core"
)

// SupportedVersion is the envelope schema version this build reads and
// writes. Newer versions are rejected rather than misread.
const SupportedVersion = 1

var (
	ErrNotFound           = errors.New("expense not found")
	ErrCorruptData        = errors.New("corrupted data file")
	ErrUnsupportedVersion = errors.New("unsupported data file version")
)

// envelope is the top-level on-disk structure.
type envelope struct {
	Version  int            `json:"version"`
	Expenses []core.Expense `json:"expenses"`
}

// Repository owns the in-memory collection for one data file. It is not
// safe for concurrent use; the tool is single-process by design and two
// processes racing on the same file resolve as last-writer-wins.
type Repository struct {
	path     string
	now      func() time.Time
	expenses []core.Expense
}

// New creates a repository for the given data file, ensuring the parent
// directory exists. The file itself is created on first persist.
func New(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &Repository{path: path, now: time.Now}, nil
}

// Path returns the backing file location.
func (r *Repository) Path() string {
	return r.path
}

// Load reads the envelope from disk, replacing any previously loaded state.
// A missing file is an empty ledger, not an error. Returns
// ErrUnsupportedVersion for envelopes newer than SupportedVersion and
// ErrCorruptData for anything unparsable.
func (r *Repository) Load(_ context.Context) error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.expenses = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", r.path, err)
	}

	rows, err := decodeEnvelope(data)
	if err != nil {
		return fmt.Errorf("%s: %w", r.path, err)
	}
	r.expenses = rows
	return nil
}

func decodeEnvelope(data []byte) ([]core.Expense, error) {
	trimmed := bytes.TrimSpace(data)

	// Pre-versioning files were a bare array of records. Accept them; the
	// next mutation rewrites the file in the versioned form.
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []core.Expense
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		return rows, nil
	}

	// Check the version before touching the records: a newer envelope may
	// encode them differently.
	var header struct {
		Version  int             `json:"version"`
		Expenses json.RawMessage `json:"expenses"`
	}
	if err := json.Unmarshal(trimmed, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if header.Version > SupportedVersion {
		return nil, fmt.Errorf("%w: file version %d, supported up to %d",
			ErrUnsupportedVersion, header.Version, SupportedVersion)
	}
	if header.Version < 1 {
		return nil, fmt.Errorf("%w: missing or invalid version field", ErrCorruptData)
	}

	var rows []core.Expense
	if len(header.Expenses) > 0 {
		if err := json.Unmarshal(header.Expenses, &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
	}
	return rows, nil
}

// Add assigns a unique ID to exp, appends it and persists the collection.
// IDs collide when two expenses for the same date are created within one
// clock second; a numeric suffix disambiguates.
func (r *Repository) Add(_ context.Context, exp core.Expense) (core.Expense, error) {
	if err := exp.Validate(); err != nil {
		return core.Expense{}, err
	}

	base := core.GenerateID(exp.Date, r.now())
	id := base
	for seq := 2; r.contains(id); seq++ {
		id = core.DisambiguateID(base, seq)
	}
	exp.ID = id

	next := append(append([]core.Expense(nil), r.expenses...), exp)
	if err := r.persist(next); err != nil {
		return core.Expense{}, err
	}
	r.expenses = next
	return exp, nil
}

// Update replaces the record with the given ID. The caller supplies the
// fully merged record; ID and CreatedAt are taken from the stored one.
func (r *Repository) Update(_ context.Context, id string, exp core.Expense) (core.Expense, error) {
	if err := exp.Validate(); err != nil {
		return core.Expense{}, err
	}

	idx := r.indexOf(id)
	if idx < 0 {
		return core.Expense{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	exp.ID = r.expenses[idx].ID
	exp.CreatedAt = r.expenses[idx].CreatedAt

	next := append([]core.Expense(nil), r.expenses...)
	next[idx] = exp
	if err := r.persist(next); err != nil {
		return core.Expense{}, err
	}
	r.expenses = next
	return exp, nil
}

// Delete removes the record with the given ID and persists. On any failure
// the in-memory collection is left unchanged.
func (r *Repository) Delete(_ context.Context, id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := append([]core.Expense(nil), r.expenses[:idx]...)
	next = append(next, r.expenses[idx+1:]...)
	if err := r.persist(next); err != nil {
		return err
	}
	r.expenses = next
	return nil
}

// Get returns the record with the given ID.
func (r *Repository) Get(id string) (core.Expense, bool) {
	if idx := r.indexOf(id); idx >= 0 {
		return r.expenses[idx], true
	}
	return core.Expense{}, false
}

// All returns the collection in insertion order.
func (r *Repository) All() []core.Expense {
	return append([]core.Expense(nil), r.expenses...)
}

// Len returns the number of loaded records.
func (r *Repository) Len() int {
	return len(r.expenses)
}

func (r *Repository) indexOf(id string) int {
	for i, e := range r.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) contains(id string) bool {
	return r.indexOf(id) >= 0
}

// persist writes the full envelope to a temp file in the data directory and
// renames it over the target, so an interrupted write never leaves a
// truncated ledger behind.
func (r *Repository) persist(rows []core.Expense) error {
	env := envelope{Version: SupportedVersion, Expenses: rows}
	if env.Expenses == nil {
		env.Expenses = []core.Expense{}
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".expenses-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
