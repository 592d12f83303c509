package handlers

import (
	"errors"

	"github.com/rogerio-castellano/commerce-dashboard/internal/repo"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validationErrors reports whether err is a repository validation failure and
// converts its field errors.
func validationErrors(err error) ([]ProductValidationError, bool) {
	var ve *repo.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	errs := make([]ProductValidationError, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		errs = append(errs, ProductValidationError{Field: f.Field, Description: f.Description})
	}
	return errs, true
}
