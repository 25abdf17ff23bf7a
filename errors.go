package pgrange

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned by Encode and Decode when the element type has no entry in the type table.
var ErrUnsupportedType = errors.New("unsupported range element type")

// FormatError is returned when binary range data is empty, truncated or inconsistent with its flags.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "invalid binary range: " + e.Msg
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

func unknownBoundTypeError(side string, bt BoundType) error {
	return fmt.Errorf("unknown %s bound type: %v", side, bt)
}
