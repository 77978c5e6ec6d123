package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the referenced group does not exist.
	ErrNotFound = errors.New("group not found")

	// ErrMemberNotInGroup means an expense payer is not a member of the group.
	ErrMemberNotInGroup = errors.New("member not found in group")
)

// ValidationError reports missing or invalid input fields.
type ValidationError struct {
	// Fields lists the offending input fields, in request order.
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", strings.Join(e.Fields, ", "), e.Reason)
}

func missingFields(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: "missing required fields"}
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
