// Package validator wraps go-playground/validator for configuration checks.
//
// Failures are reported as one error chain rooted at ErrValidationFailed,
// holding one readable message per offending field.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed roots every error returned by Validate and Var.
var ErrValidationFailed = errors.New("validation failed")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Report fields by the name they carry in YAML or env files.
	validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"yaml", "envconfig"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	// positive_duration rejects zero and negative time.Duration values.
	_ = validator.RegisterValidation("positive_duration", func(fl gvalidator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(time.Duration)
		return ok && d > 0
	})
}

// formatError turns validator errors into the ErrValidationFailed chain.
// Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Namespace()
		if field == "" {
			field = validationErr.Field()
		}

		errs = append(errs, fmt.Errorf(errStringFormat,
			field,
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(endpoint, "url").
func Var(value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(err)
	}

	return nil
}
