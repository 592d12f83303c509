package repo

import (
	"fmt"
	"slices"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// It is not safe for concurrent use; the owning dashboard session serializes access.
type InMemoryProductRepository struct {
	products []models.Product
	now      func() time.Time
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		now:      time.Now,
	}
}

// WithClock replaces the clock used to stamp new products.
func (r *InMemoryProductRepository) WithClock(now func() time.Time) *InMemoryProductRepository {
	r.now = now
	return r
}

func (r *InMemoryProductRepository) nextID() int {
	maxID := 0
	for _, p := range r.products {
		maxID = max(maxID, p.ID)
	}
	return maxID + 1
}

func (r *InMemoryProductRepository) indexOf(id int) int {
	return slices.IndexFunc(r.products, func(p models.Product) bool { return p.ID == id })
}

// Add stores a new product built from fields, assigning id and date.
func (r *InMemoryProductRepository) Add(fields models.ProductFields) (models.Product, error) {
	product := fields.Merge(models.Product{})
	product.ID = r.nextID()
	product.Date = r.now().Format(models.DateLayout)

	if err := ValidateProduct(product); err != nil {
		return models.Product{}, err
	}

	r.products = append(r.products, product)
	return product, nil
}

// Update merges fields into the product with the given id.
func (r *InMemoryProductRepository) Update(id int, fields models.ProductFields) (models.Product, bool, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, false, nil
	}

	updated := fields.Merge(r.products[i])
	if err := ValidateProduct(updated); err != nil {
		return models.Product{}, true, err
	}
	r.products[i] = updated
	return updated, true, nil
}

// Remove deletes the product with that id, reporting whether it existed.
func (r *InMemoryProductRepository) Remove(id int) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.products = slices.Delete(r.products, i, i+1)
	return true
}

// RemoveMany deletes every product whose id is in ids and returns how many went.
func (r *InMemoryProductRepository) RemoveMany(ids []int) int {
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	before := len(r.products)
	r.products = slices.DeleteFunc(r.products, func(p models.Product) bool {
		_, ok := drop[p.ID]
		return ok
	})
	return before - len(r.products)
}

// All returns a copy of every product in insertion order.
func (r *InMemoryProductRepository) All() []models.Product {
	return slices.Clone(r.products)
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// Replace swaps the whole collection, keeping the given ids. Used for seeding.
func (r *InMemoryProductRepository) Replace(products []models.Product) error {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatedID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	r.products = append([]models.Product{}, products...)
	return nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
