package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidField reports the first field of a form that failed validation.
type ErrInvalidField struct {
	error
	Field string
	Tag   string
}

func newErrInvalidField(fe validator.FieldError) *ErrInvalidField {
	return &ErrInvalidField{
		error: errors.New(message(fe)),
		Field: fe.Field(),
		Tag:   fe.Tag(),
	}
}
