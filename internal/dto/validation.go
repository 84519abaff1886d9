package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// seriesKeyPattern accepts metal names, product labels and currency codes.
var seriesKeyPattern = regexp.MustCompile(`^[\p{L}\p{N} ._/()-]{1,64}$`)

// RegisterValidations adds the custom binding rules used by the query DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("serieskey", func(fl validator.FieldLevel) bool {
		return seriesKeyPattern.MatchString(fl.Field().String())
	})
}
