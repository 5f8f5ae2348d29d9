package api

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct tags of a decoded request body.
func Validate(v any) error {
	return validate.Struct(v)
}
