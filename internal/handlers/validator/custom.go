package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var profileNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9_-]*[a-z0-9])?$`)

func profileNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return profileNameRegex.MatchString(val)
}
