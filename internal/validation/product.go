package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// ErrInvalidProduct is returned when a typed product breaks a catalog
// invariant.
var ErrInvalidProduct = errors.New("invalid product")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// CheckProduct enforces the invariants every stored product must satisfy:
// non-blank name and category, price > 0, stock >= 0.
func CheckProduct(p models.Product) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field())+" ("+fe.Tag()+")")
		}
		return fmt.Errorf("%w: %s", ErrInvalidProduct, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
}
