package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

var exerciseTypes = map[string]struct{}{
	"running":  {},
	"strength": {},
	"yoga":     {},
	"walking":  {},
	"cycling":  {},
	"swimming": {},
	"hiit":     {},
	"dance":    {},
	"other":    {},
}

var moodTags = map[string]struct{}{
	"anxious":     {},
	"stressed":    {},
	"low_energy":  {},
	"restless":    {},
	"sad":         {},
	"angry":       {},
	"calm":        {},
	"happy":       {},
	"energetic":   {},
	"focused":     {},
	"grateful":    {},
	"overwhelmed": {},
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("exercise_type", func(fl validator.FieldLevel) bool {
			_, ok := exerciseTypes[fl.Field().String()]
			return ok
		})
		validate.RegisterValidation("mood_tag", func(fl validator.FieldLevel) bool {
			_, ok := moodTags[fl.Field().String()]
			return ok
		})
	})
}

// validateRequest runs struct validation. Field errors are joined under
// errorvalues.ErrValidation so handlers can answer 422.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
