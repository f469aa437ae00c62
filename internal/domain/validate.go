package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs the validate tags of v and returns the first failure as a ValidationError
func ValidateStruct(v interface{}) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return NewValidationError(err.Error())
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "oneof":
		return NewValidationError(fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
	case "gte", "min":
		return NewValidationError(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
	case "email":
		return NewValidationError(fmt.Sprintf("%s is not a valid email", fe.Field()))
	default:
		return NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
