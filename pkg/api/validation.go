package api

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

// fieldMessages maps a JSON field name and a failing rule to the message returned to the caller.
var fieldMessages = map[string]map[string]string{ // nolint: gochecknoglobals
	"username": {
		"notblank": "Username is required",
		"min":      "Username should be between 2 and 30 characters long",
		"max":      "Username should be between 2 and 30 characters long",
	},
	"email": {
		"notblank": "Email is required",
		"email":    "Invalid email format",
	},
	"password": {
		"notblank": "Password is required",
		"min":      "Password should be at least 4 characters long",
	},
	"firstName": {
		"notblank": "First name is required",
	},
	"lastName": {
		"notblank": "Last name is required",
	},
}

// ValidationError carries every failing field of a request, keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(names, ", "))
}

// Validator checks request DTOs. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	err := v.RegisterValidation("notblank", validators.NotBlank)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register notblank validation")
	}

	return &Validator{validate: v}, nil
}

// Validate returns a *ValidationError when req violates a constraint.
func (v *Validator) Validate(req UserRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate user request")
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, ok := fields[fe.Field()]; ok {
			continue
		}
		fields[fe.Field()] = message(fe.Field(), fe.Tag())
	}

	return &ValidationError{Fields: fields}
}

func message(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
