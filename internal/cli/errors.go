package cli

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/clientbook/internal/commands"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/parser"
	"github.com/aidanlsb/clientbook/internal/store"
	"github.com/aidanlsb/clientbook/internal/transfer"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Command line errors
	ErrInvalidFormat       = "INVALID_FORMAT"
	ErrConstraintViolation = "CONSTRAINT_VIOLATION"
	ErrNotEdited           = "NOT_EDITED"
	ErrUnknownCommand      = "UNKNOWN_COMMAND"

	// Execution errors
	ErrInvalidIndex    = "INVALID_INDEX"
	ErrDuplicateClient = "DUPLICATE_CLIENT"

	// Store errors
	ErrDatabaseError = "DATABASE_ERROR"
	ErrBookLocked    = "BOOK_LOCKED"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"
	ErrImportInvalid  = "IMPORT_INVALID"

	// General errors
	ErrInvalidInput = "INVALID_INPUT"
	ErrInternal     = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnDuplicateSkipped = "DUPLICATE_SKIPPED"
	WarnViewIgnored      = "VIEW_IGNORED"
	WarnViewNotSaved     = "VIEW_NOT_SAVED"
)

// suggester is implemented by errors that carry a follow-up hint.
type suggester interface {
	Suggestion() string
}

// classification is the envelope view of an error.
type classification struct {
	Code       string
	Suggestion string
	Details    map[string]interface{}
}

// classifyError maps err to a stable code. Errors it does not recognise
// get fallback.
func classifyError(err error, fallback string) classification {
	var (
		formatErr     *parser.FormatError
		constraintErr *model.ConstraintError
		unknownErr    *commands.UnknownCommandError
		recordErr     *transfer.RecordError
		corruptErr    *store.CorruptRecordError
	)

	c := classification{Code: fallback}
	switch {
	case errors.As(err, &recordErr):
		c.Code = ErrImportInvalid
		c.Details = map[string]interface{}{"source": recordErr.Source}
		if errors.As(err, &constraintErr) {
			c.Details["field"] = constraintErr.Field
		}
	case errors.As(err, &corruptErr):
		c.Code = ErrDatabaseError
		c.Details = map[string]interface{}{"id": corruptErr.ID}
		c.Suggestion = fmt.Sprintf("Stored row %d no longer validates; fix it in the data file or run 'cbook clear' to start over", corruptErr.ID)
	case errors.As(err, &formatErr):
		c.Code = ErrInvalidFormat
	case errors.As(err, &constraintErr):
		c.Code = ErrConstraintViolation
		c.Details = map[string]interface{}{"field": constraintErr.Field}
	case errors.As(err, &unknownErr):
		c.Code = ErrUnknownCommand
		c.Details = map[string]interface{}{"word": unknownErr.Word}
		if unknownErr.Closest != "" {
			c.Details["closest"] = unknownErr.Closest
		}
	case errors.Is(err, commands.ErrNotEdited):
		c.Code = ErrNotEdited
		c.Suggestion = commands.Usage("edit")
	case errors.Is(err, commands.ErrInvalidIndex):
		c.Code = ErrInvalidIndex
		c.Suggestion = "Run 'cbook list' to see the current client numbers"
	case errors.Is(err, commands.ErrDuplicateClient):
		c.Code = ErrDuplicateClient
	case errors.Is(err, store.ErrLocked):
		c.Code = ErrBookLocked
		c.Suggestion = "Close the other cbook session and try again"
	}

	if c.Suggestion == "" {
		var s suggester
		if errors.As(err, &s) {
			c.Suggestion = s.Suggestion()
		}
	}
	return c
}
