package models

import (
	"iter"
	"time"

	"github.com/SAP-F-2025/fieldvalidation/pkg/validation"
	"github.com/SAP-F-2025/fieldvalidation/pkg/validator"
	"gorm.io/datatypes"
)

// Range is a price range stored as a JSON sub-document
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Tag struct {
	Name string `json:"name" validate:"required,max=32"`
}

type Listing struct {
	ID    uint                      `json:"id" gorm:"primaryKey"`
	Name  string                    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Price float64                   `json:"price" validate:"gte=0"`
	Range datatypes.JSONType[Range] `json:"range" gorm:"type:jsonb"`
	Tags  []Tag                     `json:"tags" gorm:"serializer:json" validate:"omitempty,max=10,dive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewListing builds a listing with its range wrapped for the JSON column
func NewListing(name string, price float64, r Range, tags ...Tag) *Listing {
	return &Listing{
		Name:  name,
		Price: price,
		Range: datatypes.NewJSONType(r),
		Tags:  tags,
	}
}

// ValidateRange yields a failure for each bound of an inverted or empty range
func ValidateRange(r Range) iter.Seq[validation.FieldValidation] {
	return func(yield func(validation.FieldValidation) bool) {
		if r.Min < 0 {
			if !yield(validation.NewFieldValidation("must not be negative", "min")) {
				return
			}
		}
		if r.Min >= r.Max {
			if !yield(validation.NewFieldValidation("must be < max", "min")) {
				return
			}
			yield(validation.NewFieldValidation("must be > min", "max"))
		}
	}
}

var validateRange = validation.ValidateSubfields(ValidateRange)

// RegisterValidators attaches the listing field validators to v
func RegisterValidators(v *validator.Validator) error {
	return v.RegisterFieldFunc(Listing{}, "range", validator.Field(func(r datatypes.JSONType[Range]) error {
		return validateRange(r.Data())
	}))
}
