package repo

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/validation"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept newest first. Writers are serialised and readers get a
// copy of the current sequence.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Seed appends products that already carry an id, keeping their order.
// The id counter is moved past the highest seeded id.
func (r *InMemoryProductRepository) Seed(products ...models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if p.ID <= 0 {
			return fmt.Errorf("seed %q: id must be positive", p.Name)
		}
		if r.indexOf(p.ID) >= 0 {
			return fmt.Errorf("seed %q: %w %d", p.Name, ErrDuplicateID, p.ID)
		}
		if err := validation.CheckProduct(p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
		r.products = append(r.products, p)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return nil
}

// Insert assigns a fresh id and prepends the product.
func (r *InMemoryProductRepository) Insert(product models.Product) (models.Product, error) {
	if err := validation.CheckProduct(product); err != nil {
		return models.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = slices.Insert(r.products, 0, product)
	return product, nil
}

// Replace merges patch over the product with the given id in place.
// found is false, with no error, when the id is unknown.
func (r *InMemoryProductRepository) Replace(id int, patch models.ProductPatch) (models.Product, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, false, nil
	}

	updated := patch.Apply(r.products[i])
	if err := validation.CheckProduct(updated); err != nil {
		return models.Product{}, true, err
	}
	r.products[i] = updated
	return updated, true, nil
}

// Remove deletes the product with the given id and reports whether it existed.
func (r *InMemoryProductRepository) Remove(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.products = slices.Delete(r.products, i, i+1)
	return true
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// GetAll returns a snapshot of every product, newest first.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.products)
}

// Len returns the number of stored products.
func (r *InMemoryProductRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}

// Clear removes every product. Ids are not reused afterwards.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
}

func (r *InMemoryProductRepository) indexOf(id int) int {
	return slices.IndexFunc(r.products, func(p models.Product) bool { return p.ID == id })
}
