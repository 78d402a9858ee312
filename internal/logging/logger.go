// Package logging provides the structured logging abstraction used across the ledger.
// The rest of the code depends on Logger; logrus is only referenced here.
package logging

// Logger defines structured logging for the application
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Common field keys
const (
	FieldComponent = "component"
	FieldPayer     = "payer"
	FieldAmount    = "amount"
	FieldRecords   = "records"
	FieldTransfers = "transfers"
	FieldStore     = "store"
	FieldKey       = "key"
)
