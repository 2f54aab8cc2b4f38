package models

// Product represents a sellable item in the catalog.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name" validate:"notblank"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category" validate:"notblank"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Description string  `json:"description"`
}

// ProductPatch holds the parsed fields of a submitted form.
// A nil field leaves the corresponding Product field untouched.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Stock       *int
	Description *string
}

// Apply merges the patch over p. The ID is never changed.
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	return p
}

// ProductInput is the raw editor payload. Every field is kept as text
// exactly as the user typed it.
type ProductInput struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
}

// Get returns the raw value of the named field.
func (in ProductInput) Get(field string) string {
	switch field {
	case FieldName:
		return in.Name
	case FieldPrice:
		return in.Price
	case FieldCategory:
		return in.Category
	case FieldStock:
		return in.Stock
	case FieldDescription:
		return in.Description
	}
	return ""
}

// Set returns a copy of in with the named field replaced. Unknown fields
// are ignored.
func (in ProductInput) Set(field, value string) ProductInput {
	switch field {
	case FieldName:
		in.Name = value
	case FieldPrice:
		in.Price = value
	case FieldCategory:
		in.Category = value
	case FieldStock:
		in.Stock = value
	case FieldDescription:
		in.Description = value
	}
	return in
}

// Editor field names.
const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldStock       = "stock"
	FieldDescription = "description"
)

// Fields lists every editor field in display order.
var Fields = []string{FieldName, FieldPrice, FieldCategory, FieldStock, FieldDescription}

// IsField reports whether name is a known editor field.
func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// FieldErrors maps a field name to its validation message. Only failing
// fields are present.
type FieldErrors map[string]string

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}
