// Package validation holds the shared validator instance and the custom
// rules used by storefront forms.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// PhonePattern is the accepted shipping phone format: +380 and nine digits.
var PhonePattern = regexp.MustCompile(`^\+380\d{9}$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator with custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("ua_phone", func(fl validator.FieldLevel) bool {
			return PhonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		instance = v
	})
	return instance
}

// Struct validates s and, on failure, returns sentinel wrapped with a short
// description of the first failing field.
func Struct(s any, sentinel error) error {
	return describeErr(Validator().Struct(s), sentinel)
}

func describeErr(err error, sentinel error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", sentinel, Describe(fieldErrs[0]))
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

// Var validates a single value against tag the same way Struct does.
func Var(v any, tag string, sentinel error) error {
	return describeErr(Validator().Var(v, tag), sentinel)
}

func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "ua_phone":
		return fmt.Sprintf("%s must match +380XXXXXXXXX", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
