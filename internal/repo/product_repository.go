package repo

import (
	"errors"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

// ProductRepository defines the interface for product data operations.
//
// Unknown ids are never an error on mutation: Update reports found=false and
// Remove/RemoveMany simply remove nothing.
type ProductRepository interface {
	Add(fields models.ProductFields) (models.Product, error)
	Update(id int, fields models.ProductFields) (models.Product, bool, error)
	Remove(id int) bool
	RemoveMany(ids []int) int
	All() []models.Product
	GetByID(id int) (models.Product, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicatedID is returned when seed data carries the same id twice.
var ErrDuplicatedID = errors.New("duplicated product id")
