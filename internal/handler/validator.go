package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mt2web/mt2web/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("work_kind", validateEnum(func(s string) error {
		_, err := domain.ParseWorkKind(s)
		return err
	}))
	_ = v.RegisterValidation("work_type", validateEnum(func(s string) error {
		_, err := domain.ParseWorkType(s)
		return err
	}))
	_ = v.RegisterValidation("report_type", validateEnum(func(s string) error {
		_, err := domain.ParseReportType(s)
		return err
	}))
	_ = v.RegisterValidation("character_name", func(fl validator.FieldLevel) bool {
		return domain.ValidateName(strings.TrimSpace(fl.Field().String())) == nil
	})

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required", "required_if":
			errs[field] = "This field is required"
		case "work_kind":
			errs[field] = "Must be one of: attack, duel, sleep"
		case "work_type":
			errs[field] = "Must be one of: 15s, 10m, 1h"
		case "report_type":
			errs[field] = "Invalid report type"
		case "character_name":
			errs[field] = ErrMsgInvalidNameError
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateEnum adapts a domain parser into a tag validator.
// Empty values pass; pair with required when the field is mandatory.
func validateEnum(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return parse(value) == nil
	}
}
