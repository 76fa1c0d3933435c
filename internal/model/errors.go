package model

import "fmt"

// ConstraintError reports a raw value that does not satisfy its field's grammar.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

// Suggestion returns a short hint naming the offending field.
func (e *ConstraintError) Suggestion() string {
	return fmt.Sprintf("Check the value given for '%s'", e.Field)
}

func constraintError(field, message string) *ConstraintError {
	return &ConstraintError{Field: field, Message: message}
}
