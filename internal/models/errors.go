package models

import "fmt"

// ValidationError indicates malformed input: blank required fields,
// over-length strings, malformed color codes, negative quantities or money.
// Handlers map it to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NotFoundError indicates a referenced ID does not resolve.
// Handlers map it to 404; it is never retried automatically.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// DuplicatePartnerError indicates a variant already carries a stock record
// for the given partner. At most one active stock entry may exist per
// (variant, partner) pair.
type DuplicatePartnerError struct {
	VariantID string
	PartnerID string
}

func (e *DuplicatePartnerError) Error() string {
	return fmt.Sprintf("variant %s already has a stock record for partner %s", e.VariantID, e.PartnerID)
}

// ConflictError indicates a uniqueness violation, e.g. a SKU that is
// already taken. Handlers map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
