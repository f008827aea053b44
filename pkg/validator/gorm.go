package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"gorm.io/gorm"
)

const (
	pluginName         = "fieldvalidation"
	createCallbackName = "fieldvalidation:before_create"
	updateCallbackName = "fieldvalidation:before_update"
	gormCreateCallback = "gorm:create"
	gormUpdateCallback = "gorm:update"
	batchFailedMessage = "batch validation failed"
)

// GormPlugin validates models before gorm creates or updates them. A failed
// validation is added to the statement as *validation.ValidationError and
// the write is skipped.
type GormPlugin struct {
	validator *Validator
	logger    *slog.Logger
}

// NewGormPlugin creates the plugin; install it with db.Use.
func NewGormPlugin(v *Validator, logger *slog.Logger) *GormPlugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormPlugin{
		validator: v,
		logger:    logger,
	}
}

func (p *GormPlugin) Name() string {
	return pluginName
}

func (p *GormPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before(gormCreateCallback).Register(createCallbackName, p.validate); err != nil {
		return fmt.Errorf("failed to register create callback: %w", err)
	}
	if err := db.Callback().Update().Before(gormUpdateCallback).Register(updateCallbackName, p.validateUpdate); err != nil {
		return fmt.Errorf("failed to register update callback: %w", err)
	}
	return nil
}

// validateUpdate validates full-row writes such as Save. Partial updates,
// where the values differ from the model (Model(&row).Updates(...)), are
// skipped.
func (p *GormPlugin) validateUpdate(db *gorm.DB) {
	if db.Statement == nil || isPartialUpdate(db.Statement) {
		return
	}
	p.validate(db)
}

func (p *GormPlugin) validate(db *gorm.DB) {
	if db.Error != nil || db.Statement == nil || db.Statement.Dest == nil {
		return
	}

	// Column updates carry a map, not a model.
	switch db.Statement.Dest.(type) {
	case map[string]interface{}, *map[string]interface{}, []map[string]interface{}:
		return
	}

	rv := db.Statement.ReflectValue
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return
	}

	var err error
	switch rv.Kind() {
	case reflect.Struct:
		err = p.validator.Validate(addressable(rv))
	case reflect.Slice, reflect.Array:
		err = p.validateBatch(rv)
	default:
		return
	}
	if err == nil {
		return
	}

	if verr, ok := validation.AsValidationError(err); ok {
		p.logger.Debug("Model validation failed",
			"table", db.Statement.Table,
			"errors", len(validation.FlattenValidationErrors(verr, nil)))
	}
	db.AddError(err)
}

// validateBatch validates every element and reports failures under the
// element index.
func (p *GormPlugin) validateBatch(rv reflect.Value) error {
	var items []validation.ValidationErrorItem
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
			if elem.IsNil() {
				break
			}
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			continue
		}

		err := p.validator.Validate(addressable(elem))
		if err == nil {
			continue
		}
		var verr *validation.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		items = append(items, validation.NestedItem(i, validation.FlattenValidationErrors(verr, nil)))
	}

	if len(items) == 0 {
		return nil
	}
	batchErr := validation.NewValidationError(items...)
	batchErr.Message = batchFailedMessage
	return batchErr
}

// isPartialUpdate reports whether the statement writes values other than
// its model.
func isPartialUpdate(stmt *gorm.Statement) bool {
	if stmt.Model == nil || stmt.Dest == nil {
		return false
	}
	model, dest := reflect.ValueOf(stmt.Model), reflect.ValueOf(stmt.Dest)
	if model.Type() != dest.Type() {
		return true
	}
	switch model.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return model.Pointer() != dest.Pointer()
	}
	return false
}

func addressable(rv reflect.Value) any {
	if rv.CanAddr() {
		return rv.Addr().Interface()
	}
	return rv.Interface()
}
