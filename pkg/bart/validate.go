package bart

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/bart/pkg/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// station passes for an empty value, combine it with required when the
	// station is mandatory.
	v.RegisterValidation("station", func(fl validator.FieldLevel) bool {
		abbr := fl.Field().String()
		return abbr == "" || constants.Station(abbr).Valid()
	})

	return v
}

// Validate checks the `validate` struct tags of request options.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}
