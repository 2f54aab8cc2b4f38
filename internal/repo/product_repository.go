package repo

import (
	"errors"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// ProductRepository defines the primitive mutations of the product collection.
type ProductRepository interface {
	Insert(product models.Product) (models.Product, error)
	Replace(id int, patch models.ProductPatch) (models.Product, bool, error)
	Remove(id int) bool
	GetByID(id int) (models.Product, error)
	GetAll() []models.Product
	Len() int
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateID is returned when seeding with an id that is already stored.
	ErrDuplicateID = errors.New("duplicate product id")
)
