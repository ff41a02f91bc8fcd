package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("record_ids", validateRecordIDs)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// EchoValidator adapts Validator to Echo's Validator interface.
type EchoValidator struct {
	validator *Validator
}

// NewEchoValidator wraps the shared validator for registration on an Echo instance.
func NewEchoValidator() *EchoValidator {
	return &EchoValidator{validator: GetValidator()}
}

// Validate implements echo.Validator.
func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.validator.GetValidate().Struct(i)
}

// Custom validation functions

// validateRecordIDs accepts a comma-separated list that contains at least one
// non-blank entry. Whitespace padding and empty segments are tolerated.
func validateRecordIDs(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) != "" {
			return true
		}
	}
	return false
}
