package validation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// FromValidatorErrors converts go-playground field errors into a
// ValidationError. Errors on a top-level field become plain items. Errors
// below a top-level field (range.min, tags[0].name) are grouped into one
// nested item for that field so that flattening restores the full path.
func FromValidatorErrors(fieldErrs validator.ValidationErrors) *ValidationError {
	var items []ValidationErrorItem
	nestedIndex := make(map[string]int)

	for _, fe := range fieldErrs {
		path := fieldPath(fe)
		top, rest := path[0], path[1:]

		if len(rest) == 0 {
			items = append(items, NewValidationErrorItem(top, TagMessage(fe), fe.Tag(), fe.Value()))
			continue
		}

		sub := FieldValidation{Path: rest, Message: TagMessage(fe)}
		key := fmt.Sprint(top)
		if i, ok := nestedIndex[key]; ok {
			subErr := items[i].Original.(*SubfieldsError)
			subErr.Errors = append(subErr.Errors, sub)
			continue
		}
		nestedIndex[key] = len(items)
		items = append(items, NestedItem(top, []FieldValidation{sub}))
	}

	return NewValidationError(items...)
}

// fieldPath resolves the path of fe relative to the validated struct.
func fieldPath(fe validator.FieldError) Path {
	path := ParseNamespace(fe.Namespace())
	if len(path) > 1 {
		// drop the root struct name
		return path[1:]
	}
	return Path{fe.Field()}
}

// ParseNamespace splits a go-playground namespace such as
// "Listing.tags[0].name" into path segments. Bracketed indexes become ints
// and bracketed map keys stay strings.
func ParseNamespace(namespace string) Path {
	var path Path
	start := 0
	for i := 0; i < len(namespace); i++ {
		switch namespace[i] {
		case '.':
			if i > start {
				path = append(path, namespace[start:i])
			}
			start = i + 1
		case '[':
			if i > start {
				path = append(path, namespace[start:i])
			}
			// Map keys may contain dots and brackets; the key runs to the
			// first "]" that closes the segment.
			end := closingBracket(namespace, i+1)
			path = append(path, bracketSegment(namespace[i+1:end]))
			i = end
			start = end + 1
		}
	}
	if start < len(namespace) {
		path = append(path, namespace[start:])
	}
	return path
}

// closingBracket returns the index of the "]" ending the segment opened
// before from, or len(s) when it is missing.
func closingBracket(s string, from int) int {
	for j := from; j < len(s); j++ {
		if s[j] == ']' && (j+1 == len(s) || s[j+1] == '.' || s[j+1] == '[') {
			return j
		}
	}
	return len(s)
}

func bracketSegment(key string) any {
	if index, err := strconv.Atoi(key); err == nil {
		return index
	}
	return key
}

func asPlaygroundErrors(err error) (validator.ValidationErrors, bool) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs, true
	}
	return nil, false
}

// TagMessage returns a user-facing message for a failed validation tag
func TagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "numeric":
		return "must be a number"
	case "alpha":
		return "must contain only letters"
	case "alphanum":
		return "must contain only letters and numbers"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("validation failed for rule '%s'", fe.Tag())
	}
}
