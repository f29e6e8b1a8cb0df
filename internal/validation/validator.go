package validation

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskman/internal/errors"
)

// emailPattern matches the simple local@domain.tld shape; deliberately looser
// than full RFC 5322 address syntax.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has the required two-part shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface and translates the first failing check into a human-readable
// message, matching the fail-fast contract of the handlers.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a RequestValidator with the email-shape rule registered.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.NewValidationError(messageFor(fieldErrs[0]))
	}
	return errors.NewValidationError("invalid request payload")
}

func messageFor(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email_shape":
		return "invalid email format"
	case "oneof":
		return fmt.Sprintf("invalid %s, must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be a positive number", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldLabel maps struct field names to the names callers see on the wire.
func fieldLabel(name string) string {
	switch name {
	case "UserID":
		return "user ID"
	default:
		return strings.ToLower(name)
	}
}
