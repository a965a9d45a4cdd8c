package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const fieldTag = "field"

type Validator struct {
	Validator *validator.Validate
}

type ValidationError struct {
	Field   string
	Tag     string
	Value   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

// New returns a validator that reports fields by their `field` tag, falling back
// to the Go field name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get(fieldTag)
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{Validator: v}
}

func (v *Validator) Validate(i any) error {
	if err := v.Validator.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return formatValidationErrors(validationErrs)
		}

		return err
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrs := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}

		validationErrs = append(validationErrs, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: errorMessage(field, err),
		})
	}

	return validationErrs
}

func errorMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, err.Param(), fmt.Sprint(err.Value()))
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}
