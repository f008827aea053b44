package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	cases := []struct {
		path Path
		want string
	}{
		{Path{}, ""},
		{Path{"name"}, "name"},
		{Path{"range", "min"}, "range.min"},
		{Path{"tags", 0, "name"}, "tags[0].name"},
		{Path{3, "range", "max"}, "3.range.max"},
		{Path{"tags", int64(2)}, "tags[2]"},
		{Path{uint(4), "name"}, "4.name"},
		{Path{"matrix", 1, 2}, "matrix[1][2]"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.path.String())
	}
}

func TestPathPrepend(t *testing.T) {
	base := Path{"min"}
	got := base.Prepend("range")

	assert.Equal(t, Path{"range", "min"}, got)
	assert.Equal(t, Path{"min"}, base)
}

func TestFieldValidationString(t *testing.T) {
	fv := NewFieldValidation("is required", "tags", 0, "name")
	assert.Equal(t, "tags[0].name: is required", fv.String())
}
