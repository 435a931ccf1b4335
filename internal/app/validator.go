package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ShortPathTag is validation tag for short paths.
const ShortPathTag = "shortpath"

// NewValidator creates validator with registered shortpath tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation fails only on empty tag or nil func
	_ = v.RegisterValidation(ShortPathTag, func(fl validator.FieldLevel) bool {
		return pathRegexp.MatchString(fl.Field().String())
	})
	return v
}

// ValidationMessage converts validator errors to human readable message.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "The request is invalid."
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, " ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = "Path"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "url":
		return fmt.Sprintf("The %s field is not a valid URL.", field)
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters long.", field, fe.Param())
	case ShortPathTag:
		return fmt.Sprintf("The %s field must match the regular expression '^[a-zA-Z0-9_-]*$'.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
