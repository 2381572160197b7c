package cli

import (
	"errors"

	"kharcha/internal/core"
	"kharcha/internal/query"
	"kharcha/internal/storage"
)

// Exit codes. Each error taxonomy member maps to a distinct, stable code so
// scripts can branch on the failure kind.
const (
	ExitOK                 = 0
	ExitUsage              = 1
	ExitValidation         = 2
	ExitNotFound           = 3
	ExitCorruptData        = 4
	ExitUnsupportedVersion = 5
	ExitInvalidLimit       = 6
	ExitIO                 = 7
)

// ExitCode maps an error from the core layers to its exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrInvalidCategory),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidCurrency):
		return ExitValidation
	case errors.Is(err, storage.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, storage.ErrCorruptData):
		return ExitCorruptData
	case errors.Is(err, storage.ErrUnsupportedVersion):
		return ExitUnsupportedVersion
	case errors.Is(err, query.ErrInvalidLimit):
		return ExitInvalidLimit
	case errors.Is(err, query.ErrInvalidSortKey):
		return ExitUsage
	default:
		return ExitIO
	}
}
