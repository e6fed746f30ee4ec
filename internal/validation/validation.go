// Package validation builds the request validator shared by all handlers.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/motoportal-api/internal/hours"
)

// New returns a validator with the portal's custom tags registered:
//
//	weekdays  a day spec such as "Пн-Пт", "Сб", "mon, wed"
//
// The validator caches struct metadata, so build one at startup and share it.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// RegisterValidation only fails for an empty tag or a nil func.
	if err := v.RegisterValidation("weekdays", weekdays); err != nil {
		panic(err)
	}
	return v
}

func weekdays(fl validator.FieldLevel) bool {
	_, ok := hours.ParseDays(fl.Field().String())
	return ok
}
