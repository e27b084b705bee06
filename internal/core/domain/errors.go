// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError reports form input that failed domain validation.
// Fields holds the names of every offending field so the presentation
// layer can highlight them all at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError reports an operation that referenced a product id
// absent from the catalog.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
