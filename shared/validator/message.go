package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} must not be null",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param}",
		"min":      "{field} must be at least {param}",
		"email":    "{field} must be a valid email address",
		"mail":     "{field} must be a valid email address",
		"isodate":  "{field} must be in the format YYYY-MM-DD",
		"phone":    "{field} must be in the E.164 format",
	}
)

func describe(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	all := collect(err)
	if len(all) == 0 {
		return err.Error()
	}

	return all[0]
}

// collect returns one message per failed field, in struct order.
func collect(err error) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	result := make([]string, 0, len(valErrors))
	for _, valErr := range valErrors {
		result = append(result, describe(valErr))
	}

	return result
}
