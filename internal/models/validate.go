package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingID       = errors.New("entry id is required")
	ErrMissingDate     = errors.New("entry date is required")
	ErrInvalidQuality  = errors.New("quality must be one of great, okay, poor")
	ErrHoursOutOfRange = errors.New("hours must be between 0 and 24")
)

var validate = validator.New()

// Validate checks the entry against its field constraints. Field failures
// are reported as the matching sentinel error.
func (e SleepEntry) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case "ID":
		return ErrMissingID
	case "Date":
		return ErrMissingDate
	case "Quality":
		return ErrInvalidQuality
	case "Hours":
		return ErrHoursOutOfRange
	default:
		return fe
	}
}
