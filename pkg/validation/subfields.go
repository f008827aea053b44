package validation

import (
	"errors"
	"iter"
	"slices"
)

// ErrValidationFailed matches every validation error produced by this package.
var ErrValidationFailed = errors.New("validation failed")

// SubfieldsError is returned by validators built with ValidateSubfields.
// It carries the full list of sub-field failures so they can be recovered
// when the error is attached to an ORM validation item.
type SubfieldsError struct {
	Errors []FieldValidation `json:"errors"`
}

func (e *SubfieldsError) Error() string {
	return ErrValidationFailed.Error()
}

func (e *SubfieldsError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidateSubfields wraps a validator that yields sub-field failures for a
// composite value. The returned function drains the whole sequence and
// returns a *SubfieldsError holding every yielded failure, or nil when the
// sequence is empty.
func ValidateSubfields[T any](validator func(T) iter.Seq[FieldValidation]) func(T) error {
	return func(value T) error {
		seq := validator(value)
		if seq == nil {
			return nil
		}
		errs := slices.Collect(seq)
		if len(errs) > 0 {
			return &SubfieldsError{Errors: errs}
		}
		return nil
	}
}

// AsSubfieldsError finds the first *SubfieldsError in err's chain
func AsSubfieldsError(err error) (*SubfieldsError, bool) {
	var subErr *SubfieldsError
	if errors.As(err, &subErr) {
		return subErr, true
	}
	return nil, false
}
