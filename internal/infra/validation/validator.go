// Package validation checks request DTOs against declarative struct-tag rules.
//
// Rules use go-playground/validator tags (`validate:"required,email,min=6"`).
// Messages come from a `msg` tag: either one message for every rule of the
// field, or per-rule messages such as `msg:"required=Email Required;email=Valid Email Required"`.
// Fields tagged `redact:"true"` never echo their value back.
package validation

import (
	"reflect"
	"strings"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator is stateless after construction and safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator that reports fields by their JSON names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// NewInputValidator exposes the Validator as the domain interface.
func NewInputValidator() service.InputValidator {
	return New()
}

// Validate returns nil or a *domainerrors.ValidationError with every violation in field order.
func (v *Validator) Validate(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	structType := reflect.TypeOf(input)
	for structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	violations := make([]domainerrors.Violation, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		field, _ := structType.FieldByName(fieldErr.StructField())

		violation := domainerrors.Violation{
			Field:   fieldErr.Field(),
			Message: ruleMessage(field.Tag.Get("msg"), fieldErr),
		}
		if field.Tag.Get("redact") != "true" {
			violation.Value = fieldErr.Value()
		}

		violations = append(violations, violation)
	}

	return domainerrors.NewValidationError(violations)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

// ruleMessage picks the message for the failed rule out of a msg tag.
func ruleMessage(tag string, fieldErr validator.FieldError) string {
	if tag != "" && !strings.Contains(tag, "=") {
		return tag
	}

	for _, entry := range strings.Split(tag, ";") {
		rule, message, found := strings.Cut(entry, "=")
		if found && strings.TrimSpace(rule) == fieldErr.Tag() {
			return strings.TrimSpace(message)
		}
	}

	return defaultMessage(fieldErr)
}

func defaultMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
