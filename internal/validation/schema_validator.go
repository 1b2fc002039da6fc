package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates decoded documents against registered JSON schemas
type SchemaValidator interface {
	// Register compiles schemaJSON and stores it under id
	Register(id string, schemaJSON []byte) error
	// Validate checks a decoded document (maps, slices, scalars) against schema id
	Validate(id string, doc any) error
	// ValidateBytes parses JSON data and checks it against schema id
	ValidateBytes(id string, data []byte) error
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) Register(id string, schemaJSON []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[id]; ok {
		return nil
	}

	schemaDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
	if err != nil {
		return fmt.Errorf("failed to parse schema JSON %s: %w", id, err)
	}

	if err := v.compiler.AddResource(id, schemaDoc); err != nil {
		return fmt.Errorf("failed to add schema resource %s: %w", id, err)
	}

	schema, err := v.compiler.Compile(id)
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", id, err)
	}

	v.schemas[id] = schema
	return nil
}

func (v *validator) Validate(id string, doc any) error {
	v.mu.RLock()
	schema, ok := v.schemas[id]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("schema %s is not registered", id)
	}

	// Round trip through JSON so YAML decoded values reach the validator as JSON types
	normalized, err := normalize(doc)
	if err != nil {
		return err
	}

	if err := schema.Validate(normalized); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *validator) ValidateBytes(id string, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.Validate(id, doc)
}

func normalize(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return out, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" {
		*errors = append(*errors, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
