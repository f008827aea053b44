package validation

import (
	"fmt"
	"strings"
)

// Path is the location of a field inside a (possibly nested) document.
// Each segment is either a string (property name) or an int (index).
type Path []any

// String renders the path as "range.min" or "tags[0].name". A leading
// index has no brackets: "3.range.min".
func (p Path) String() string {
	var b strings.Builder
	for i, segment := range p {
		if index, ok := pathIndex(segment); ok {
			if i == 0 {
				b.WriteString(index)
			} else {
				fmt.Fprintf(&b, "[%s]", index)
			}
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprint(&b, segment)
	}
	return b.String()
}

func pathIndex(segment any) (string, bool) {
	switch n := segment.(type) {
	case int, int8, int16, int32, int64:
		return fmt.Sprint(n), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(n), true
	}
	return "", false
}

// Prepend returns a new path with segment in front of p.
func (p Path) Prepend(segment any) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, segment)
	return append(out, p...)
}

// FieldValidation is one validation failure at a specific location.
type FieldValidation struct {
	Path    Path   `json:"path"`
	Message string `json:"message"`
}

// NewFieldValidation creates a FieldValidation for the given path segments
func NewFieldValidation(message string, path ...any) FieldValidation {
	return FieldValidation{
		Path:    Path(path),
		Message: message,
	}
}

func (fv FieldValidation) String() string {
	return fmt.Sprintf("%s: %s", fv.Path, fv.Message)
}
