package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limits struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"required"`
}

type label struct {
	Name string `json:"name" validate:"required"`
}

type account struct {
	Email  string  `json:"email" validate:"required,email"`
	Limits limits  `json:"limits"`
	Labels []label `json:"labels" validate:"dive"`
}

func newTestValidate() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return validate
}

func TestFromValidatorErrors(t *testing.T) {
	err := newTestValidate().Struct(account{
		Limits: limits{Min: -1},
		Labels: []label{{Name: "ok"}, {}},
	})
	fieldErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	verr := FromValidatorErrors(fieldErrs)
	require.Len(t, verr.Errors, 3)

	assert.Equal(t, "email", verr.Errors[0].Path)
	assert.Equal(t, "required", verr.Errors[0].Type)
	assert.Nil(t, verr.Errors[0].Original)

	assert.Equal(t, "limits", verr.Errors[1].Path)
	assert.Equal(t, "labels", verr.Errors[2].Path)

	assert.Equal(t, []FieldValidation{
		{Path: Path{"email"}, Message: "is required"},
		{Path: Path{"limits", "min"}, Message: "must be greater than or equal to 0"},
		{Path: Path{"limits", "max"}, Message: "is required"},
		{Path: Path{"labels", 1, "name"}, Message: "is required"},
	}, FlattenValidationErrors(verr, nil))
}

func TestFlatten_PlaygroundErrors(t *testing.T) {
	err := newTestValidate().Struct(account{Email: "not-an-email", Limits: limits{Max: 1}})

	got, ok := Flatten(err, nil)
	require.True(t, ok)
	assert.Equal(t, []FieldValidation{
		{Path: Path{"email"}, Message: "must be a valid email address"},
	}, got)
	assert.True(t, IsValidation(err))
}

func TestParseNamespace(t *testing.T) {
	cases := []struct {
		namespace string
		want      Path
	}{
		{"", nil},
		{"Listing.name", Path{"Listing", "name"}},
		{"Listing.tags[0].name", Path{"Listing", "tags", 0, "name"}},
		{"Grid.cells[1][2]", Path{"Grid", "cells", 1, 2}},
		{"Env.labels[region]", Path{"Env", "labels", "region"}},
		{"Env.labels[app.kubernetes.io/name]", Path{"Env", "labels", "app.kubernetes.io/name"}},
		{"Env.labels[a.b].value", Path{"Env", "labels", "a.b", "value"}},
		{"Env.labels[a.b", Path{"Env", "labels", "a.b"}},
	}

	for _, tc := range cases {
		t.Run(tc.namespace, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNamespace(tc.namespace))
		})
	}
}

func TestFromValidatorErrors_DottedMapKey(t *testing.T) {
	type settings struct {
		Labels map[string]string `json:"labels" validate:"dive,max=3"`
	}

	got, ok := Flatten(newTestValidate().Struct(settings{Labels: map[string]string{"a.b": "long"}}), nil)
	require.True(t, ok)
	assert.Equal(t, []FieldValidation{
		{Path: Path{"labels", "a.b"}, Message: "must be at most 3"},
	}, got)
}
