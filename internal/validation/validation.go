// Package validation checks raw editor input before it is committed to the
// catalog and parses accepted input into a typed patch.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// Messages reported for failing fields.
const (
	MsgRequired         = "required"
	MsgPositivePrice    = "must be a positive number greater than 0"
	MsgNonNegativeStock = "must be a non-negative number"
	MsgWholeStock       = "must be a whole number"
)

// RequiredFields are checked on every submission. Stock is only checked
// when a value was supplied.
var RequiredFields = []string{models.FieldName, models.FieldCategory, models.FieldPrice}

// ValidateField checks a single raw field value and returns its error
// message, or "" when the value passes.
func ValidateField(field, raw string) string {
	switch field {
	case models.FieldName, models.FieldCategory:
		if strings.TrimSpace(raw) == "" {
			return MsgRequired
		}
	case models.FieldPrice:
		if raw == "" {
			return MsgRequired
		}
		v, ok := parseNumber(raw)
		if !ok || v <= 0 {
			return MsgPositivePrice
		}
	case models.FieldStock:
		if strings.TrimSpace(raw) == "" {
			return ""
		}
		v, ok := parseNumber(raw)
		if !ok || v < 0 {
			return MsgNonNegativeStock
		}
		if v != math.Trunc(v) || v > math.MaxInt32 {
			return MsgWholeStock
		}
	}
	return ""
}

// ValidateRecord checks every field of in. The result only contains
// failing fields; an empty map means the input may be committed.
func ValidateRecord(in models.ProductInput) models.FieldErrors {
	errs := models.FieldErrors{}
	for _, field := range RequiredFields {
		if msg := ValidateField(field, in.Get(field)); msg != "" {
			errs[field] = msg
		}
	}
	if strings.TrimSpace(in.Stock) != "" {
		if msg := ValidateField(models.FieldStock, in.Stock); msg != "" {
			errs[models.FieldStock] = msg
		}
	}
	return errs
}

// Parse validates in and converts it into a patch that replaces every
// field. Text fields are trimmed and an omitted or blank stock becomes 0. When in
// is not acceptable the field errors are returned and the patch is empty.
func Parse(in models.ProductInput) (models.ProductPatch, models.FieldErrors) {
	if errs := ValidateRecord(in); len(errs) > 0 {
		return models.ProductPatch{}, errs
	}

	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	description := strings.TrimSpace(in.Description)
	price, _ := parseNumber(in.Price)
	stock := 0
	if v, ok := parseNumber(in.Stock); ok {
		stock = int(v)
	}

	return models.ProductPatch{
		Name:        &name,
		Price:       &price,
		Category:    &category,
		Stock:       &stock,
		Description: &description,
	}, nil
}

// FormatInput renders p the way the editor shows an existing record.
func FormatInput(p models.Product) models.ProductInput {
	return models.ProductInput{
		Name:        p.Name,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		Stock:       strconv.Itoa(p.Stock),
		Description: p.Description,
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
