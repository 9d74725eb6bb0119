package schedule

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which scheduling rule a validation failed on.
type ErrorKind string

const (
	KindFormat              ErrorKind = "format"
	KindDurationUnavailable ErrorKind = "duration_unavailable"
	KindDayOverflow         ErrorKind = "day_overflow"
	KindInternalOverlap     ErrorKind = "internal_overlap"
	KindCrossShowOverlap    ErrorKind = "cross_show_overlap"
	KindExactDuplicate      ErrorKind = "exact_duplicate"
	KindWindow              ErrorKind = "window"
	KindPartialMove         ErrorKind = "partial_move"
)

// Error carries one scheduling violation. Validation is fail-fast, so a
// single Error always describes the first rule broken, never a batch.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the ErrorKind from err, unwrapping as needed.
// Returns "" when err is nil or not a scheduling error.
func KindOf(err error) ErrorKind {
	var schedErr *Error
	if errors.As(err, &schedErr) {
		return schedErr.Kind
	}
	return ""
}
