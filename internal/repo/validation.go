package repo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return isFinite(fl.Field().Float())
	})
	return v
}

// FieldError describes one rejected product field.
type FieldError struct {
	Field       string
	Description string
}

// ValidationError is returned by Add and Update when the resulting record is not
// acceptable. The repository is left untouched.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Description)
	}
	return "invalid product: " + strings.Join(msgs, "; ")
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ValidateProduct checks the invariants every stored product must satisfy. Besides
// the field tags, revenue must stay a finite number.
func ValidateProduct(p models.Product) error {
	ve := &ValidationError{}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Description: describe(fe)})
		}
	}
	if isFinite(p.Price) && !isFinite(p.Revenue()) {
		ve.Fields = append(ve.Fields, FieldError{Field: "Revenue", Description: "Revenue is out of range"})
	}
	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "finite":
		return fe.Field() + " must be a finite number"
	case "gte":
		return fmt.Sprintf("%s cannot be negative", fe.Field())
	default:
		return fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
}
