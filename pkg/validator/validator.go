package validator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	playground "github.com/go-playground/validator/v10"
)

var (
	ErrNotStruct    = errors.New("model must be a struct or a pointer to a struct")
	ErrNilModel     = errors.New("model is nil")
	ErrUnknownField = errors.New("unknown field")
	ErrFieldType    = errors.New("unexpected field type")
)

// FieldFunc validates the value of a single model field. A returned error
// is reported as an item whose Original is that error.
type FieldFunc func(value any) error

// Field adapts a typed field validator, such as the function returned by
// validation.ValidateSubfields, to a FieldFunc.
func Field[T any](fn func(T) error) FieldFunc {
	return func(value any) error {
		typed, ok := value.(T)
		if !ok {
			var zero T
			return fmt.Errorf("%w: expected %T, got %T", ErrFieldType, zero, value)
		}
		return fn(typed)
	}
}

// Validator runs struct tag rules and per-field validators against a model
// and reports failures as *validation.ValidationError.
type Validator struct {
	structValidator *playground.Validate

	mu     sync.RWMutex
	fields map[reflect.Type]map[string][]FieldFunc
}

// New creates a validator whose paths use json field names
func New() *Validator {
	structValidator := playground.New()
	structValidator.RegisterTagNameFunc(fieldName)

	return &Validator{
		structValidator: structValidator,
		fields:          make(map[reflect.Type]map[string][]FieldFunc),
	}
}

// Struct exposes the underlying go-playground instance, e.g. for
// registering custom tags.
func (v *Validator) Struct() *playground.Validate {
	return v.structValidator
}

// RegisterFieldFunc attaches fn to the field of model named field (json
// name). Several funcs may be registered for one field; they run in
// registration order.
func (v *Validator) RegisterFieldFunc(model any, field string, fn FieldFunc) error {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, model)
	}
	if _, ok := lookupField(t, field); !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, t.Name(), field)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.fields[t] == nil {
		v.fields[t] = make(map[string][]FieldFunc)
	}
	v.fields[t][field] = append(v.fields[t][field], fn)
	return nil
}

// ValidateStruct validates struct tags only and returns go-playground's error as is
func (v *Validator) ValidateStruct(model any) error {
	return v.structValidator.Struct(model)
}

// Validate performs complete validation (struct tags + field funcs).
// Items follow field declaration order; for one field, tag failures come
// before field func failures.
func (v *Validator) Validate(model any) error {
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrNilModel
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, model)
	}

	var tagItems []validation.ValidationErrorItem
	if err := v.structValidator.Struct(model); err != nil {
		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		tagItems = validation.FromValidatorErrors(fieldErrs).Errors
	}

	byField := make(map[string][]validation.ValidationErrorItem)
	for _, item := range tagItems {
		key := fmt.Sprint(item.Path)
		byField[key] = append(byField[key], item)
	}

	funcs := v.fieldFuncs(rv.Type())

	var items []validation.ValidationErrorItem
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := fieldName(sf)

		items = append(items, byField[name]...)
		delete(byField, name)

		for _, fn := range funcs[name] {
			value := rv.Field(i).Interface()
			if err := fn(value); err != nil {
				items = append(items, validation.ValidationErrorItem{
					Message:  err.Error(),
					Type:     "custom",
					Path:     name,
					Value:    value,
					Original: err,
				})
			}
		}
	}

	// Tag failures on fields not matched above (embedded structs).
	for _, item := range tagItems {
		if _, ok := byField[fmt.Sprint(item.Path)]; ok {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil
	}
	return validation.NewValidationError(items...)
}

// fieldFuncs snapshots the funcs registered for t.
func (v *Validator) fieldFuncs(t reflect.Type) map[string][]FieldFunc {
	v.mu.RLock()
	defer v.mu.RUnlock()

	funcs := make(map[string][]FieldFunc, len(v.fields[t]))
	for name, fns := range v.fields[t] {
		funcs[name] = slices.Clone(fns)
	}
	return funcs
}

func lookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.IsExported() && fieldName(sf) == name {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

// fieldName returns the json name of a field, falling back to the Go name.
func fieldName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}
