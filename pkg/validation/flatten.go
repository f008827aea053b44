package validation

// FlattenOptions controls FlattenValidationErrors.
type FlattenOptions struct {
	// FormatItemMessage renders items that carry no nested failures.
	// Defaults to DefaultFormatItemMessage.
	FormatItemMessage func(item ValidationErrorItem) string
}

// DefaultFormatItemMessage prefers the underlying error's message over the
// item's own message.
func DefaultFormatItemMessage(item ValidationErrorItem) string {
	if item.Original != nil {
		return item.Original.Error()
	}
	return item.Message
}

// FlattenValidationErrors turns err into a flat list of FieldValidation.
//
// Items whose Original error is (or wraps) a *SubfieldsError expand into one
// record per nested failure with the item's path prepended. A nested error
// with an empty list contributes nothing. Every other item yields a single
// record whose message comes from opts.FormatItemMessage.
func FlattenValidationErrors(err *ValidationError, opts *FlattenOptions) []FieldValidation {
	formatItemMessage := DefaultFormatItemMessage
	if opts != nil && opts.FormatItemMessage != nil {
		formatItemMessage = opts.FormatItemMessage
	}

	flattened := []FieldValidation{}
	if err == nil {
		return flattened
	}

	for _, item := range err.Errors {
		if nested, ok := nestedErrors(item); ok {
			for _, fv := range nested {
				flattened = append(flattened, FieldValidation{
					Path:    fv.Path.Prepend(item.Path),
					Message: fv.Message,
				})
			}
			continue
		}
		flattened = append(flattened, FieldValidation{
			Path:    Path{item.Path},
			Message: formatItemMessage(item),
		})
	}
	return flattened
}

func nestedErrors(item ValidationErrorItem) ([]FieldValidation, bool) {
	if item.Original == nil {
		return nil, false
	}
	subErr, ok := AsSubfieldsError(item.Original)
	if !ok {
		return nil, false
	}
	return subErr.Errors, true
}

// Flatten accepts any validation error understood by this package and
// returns its flattened records. The boolean is false when err is not a
// validation error.
func Flatten(err error, opts *FlattenOptions) ([]FieldValidation, bool) {
	if err == nil {
		return nil, false
	}
	if validationErr, ok := AsValidationError(err); ok {
		return FlattenValidationErrors(validationErr, opts), true
	}
	if subErr, ok := AsSubfieldsError(err); ok {
		return append([]FieldValidation{}, subErr.Errors...), true
	}
	if fieldErrs, ok := asPlaygroundErrors(err); ok {
		return FlattenValidationErrors(FromValidatorErrors(fieldErrs), opts), true
	}
	return nil, false
}
