package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(fstest.MapFS{
		"schemas/test.schema.json": {Data: []byte(testSchema)},
	})

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, errorMsg: "age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, errorMsg: "age"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "schemas/test.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator(fstest.MapFS{})
	err := v.ValidateBytes([]byte(`{}`), "nope.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"min=1,max=5"`
	Kind  string `validate:"oneof=a b"`
}

func TestValidateStruct(t *testing.T) {
	v := Get()
	assert.Same(t, v, Get())

	assert.NoError(t, v.ValidateStruct(sample{Name: "x", Count: 3, Kind: "a"}))

	err := v.ValidateStruct(sample{Count: 9, Kind: "c"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "sample.Name is required")
	assert.Contains(t, err.Error(), "sample.Count must be at most 5")
	assert.Contains(t, err.Error(), "sample.Kind must be one of [a b]")
}
