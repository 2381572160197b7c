package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldExpenseID   = "expense_id"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldCount       = "count"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldErrorKind   = "error_kind"
	FieldPath        = "path"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentService = "service"
	ComponentStorage = "storage"
	ComponentExport  = "export"
)

// Operations defines standard operation names.
const (
	OpAdd     = "add"
	OpList    = "list"
	OpSummary = "summary"
	OpEdit    = "edit"
	OpDelete  = "delete"
	OpExport  = "export"
	OpLoad    = "load"
)
