package parser

import (
	"errors"
	"fmt"
)

var errRequired = errors.New("value is required")

// SchemaError reports a row whose column count does not match the expected schema.
type SchemaError struct {
	Expected int
	Got      int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("expected %d columns, got %d", e.Expected, e.Got)
}

// FormatError reports a field whose text does not match its declared type.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
