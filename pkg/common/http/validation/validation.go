package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsRequestValid runs struct-tag validation on a request DTO and returns
// a human-readable message when it fails.
func IsRequestValid(req any) (bool, string) {
	if err := validate.Struct(req); err != nil {
		return false, err.Error()
	}
	return true, ""
}
