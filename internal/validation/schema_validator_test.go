package validation

import (
	"strings"
	"testing"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	if err := v.Register("person.schema.json", []byte(personSchema)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{"valid data", `{"name": "John", "age": 30}`, false, ""},
		{"valid data without optional field", `{"name": "Jane"}`, false, ""},
		{"missing required field", `{"age": 25}`, true, "required"},
		{"wrong type for field", `{"name": "John", "age": "thirty"}`, true, "type"},
		{"negative age", `{"name": "John", "age": -1}`, true, "minimum"},
		{"malformed json", `{"name": `, true, "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes("person.schema.json", []byte(tt.data))
			if tt.wantError {
				if err == nil {
					t.Fatalf("Expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateGoValues(t *testing.T) {
	v := NewSchemaValidator()
	if err := v.Register("person.schema.json", []byte(personSchema)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Plain Go ints, as produced by a YAML decoder
	doc := map[string]any{"name": "Ana", "age": 41}
	if err := v.Validate("person.schema.json", doc); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.Validate("missing.schema.json", map[string]any{})
	if err == nil || !strings.Contains(err.Error(), "not registered") {
		t.Errorf("Expected not registered error, got %v", err)
	}
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	v := NewSchemaValidator()
	if err := v.Register("broken.schema.json", []byte(`{"type": `)); err == nil {
		t.Error("Expected error for malformed schema")
	}
}
