package generator

import (
	"errors"
	"strings"

	"github.com/invoicr/invoicr/internal/domain/einvoice"
)

// ErrNoFormatAvailable means neither the requested country nor any format
// preference yields a registry descriptor.
var ErrNoFormatAvailable = errors.New("no e-invoice format available")

// ValidationFailedError aborts generation when the invoice context fails
// validation and SkipValidation is not set. It carries the full validation
// result so callers can present every violated rule at once.
type ValidationFailedError struct {
	Validation einvoice.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return "e-invoice validation failed: " + strings.Join(e.Validation.Errors, "; ")
}

// AsValidationFailed unwraps err into a *ValidationFailedError if it is one.
func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	var vErr *ValidationFailedError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
