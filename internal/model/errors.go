package model

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is wrapped by every RecordError.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError identifies a tagged line that could not be parsed.
type RecordError struct {
	Line   int    // 1-based
	Tag    string // "point" or "face"
	Field  string // offending token, empty when the line is short
	Reason string
}

func (e *RecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: %s record: %s %q", e.Line, e.Tag, e.Reason, e.Field)
	}
	return fmt.Sprintf("line %d: %s record: %s", e.Line, e.Tag, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }
