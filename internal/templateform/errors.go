package templateform

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for any operation on a submitted or cancelled form
var ErrClosed = errors.New("form is closed")

// ValidationError reports a draft field that blocks submission
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// FieldOf returns the field of a ValidationError anywhere in err's chain
func FieldOf(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field, true
	}
	return "", false
}
