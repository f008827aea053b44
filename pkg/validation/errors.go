package validation

import (
	"errors"
	"fmt"
)

// ValidationErrorItem is a single field-level failure reported by the model
// validator. Path holds one segment only: the field on the validated model.
type ValidationErrorItem struct {
	Message  string `json:"message"`
	Type     string `json:"type,omitempty"`
	Path     any    `json:"path"`
	Value    any    `json:"value,omitempty"`
	Original error  `json:"-"`
}

// NewValidationErrorItem creates an item without an underlying error
func NewValidationErrorItem(path any, message, rule string, value any) ValidationErrorItem {
	return ValidationErrorItem{
		Message: message,
		Type:    rule,
		Path:    path,
		Value:   value,
	}
}

// NestedItem creates an item for path whose underlying error carries errs as
// sub-field failures. Flattening it yields errs with path prepended.
func NestedItem(path any, errs []FieldValidation) ValidationErrorItem {
	return ValidationErrorItem{
		Message:  ErrValidationFailed.Error(),
		Type:     "nested",
		Path:     path,
		Original: &SubfieldsError{Errors: errs},
	}
}

// ValidationError is the model-level validation failure: an ordered list of
// field items.
type ValidationError struct {
	Message string                `json:"message"`
	Errors  []ValidationErrorItem `json:"errors"`
}

// NewValidationError creates a ValidationError holding items
func NewValidationError(items ...ValidationErrorItem) *ValidationError {
	return &ValidationError{
		Message: ErrValidationFailed.Error(),
		Errors:  items,
	}
}

func (e *ValidationError) Error() string {
	message := e.Message
	if message == "" {
		message = ErrValidationFailed.Error()
	}
	switch len(e.Errors) {
	case 0:
		return message
	case 1:
		return fmt.Sprintf("%s: %v %s", message, e.Errors[0].Path, DefaultFormatItemMessage(e.Errors[0]))
	default:
		return fmt.Sprintf("%s: %d field errors", message, len(e.Errors))
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsValidationError finds the first *ValidationError in err's chain
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// IsValidation reports whether err represents a validation failure of any
// shape this package understands.
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	_, ok := asPlaygroundErrors(err)
	return ok
}
