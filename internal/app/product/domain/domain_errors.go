package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrProductNotFound = errors.New("product not found")

	// Read errors
	ErrMalformedPhoto = errors.New("product photo is not a JSON list of references")
	ErrInvalidSort    = errors.New("sort field or direction is not allowed")

	// Creation errors
	ErrInvalidTitle       = errors.New("product title must be between 2 and 20 characters")
	ErrInvalidDescription = errors.New("product description must be between 2 and 250 characters")
	ErrInvalidPrice       = errors.New("product price must be positive")
	ErrMissingAttribute   = errors.New("product attribute is required")
	ErrMissingPhoto       = errors.New("product needs at least one photo")
	ErrMissingOwner       = errors.New("product owner is required")
)

// ValidationError collects every rejected field of a product submission.
// Each field maps to the sentinel describing why it was rejected.
type ValidationError struct {
	Fields map[string]error
}

func (e *ValidationError) add(field string, err error) {
	if e.Fields == nil {
		e.Fields = make(map[string]error)
	}
	e.Fields[field] = err
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

// Error lists the rejected fields in a stable order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name].Error())
	}
	return "invalid product: " + strings.Join(parts, "; ")
}

// Unwrap exposes the field sentinels to errors.Is.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, err := range e.Fields {
		errs = append(errs, err)
	}
	return errs
}
