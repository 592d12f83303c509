package repo

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

//go:embed data/products.json
var bundledProducts []byte

// SeedSource loads the initial product list of a dashboard session.
type SeedSource interface {
	Load(ctx context.Context) ([]models.Product, error)
}

// EmbeddedSeed serves the catalog bundled into the binary.
type EmbeddedSeed struct{}

func (EmbeddedSeed) Load(context.Context) ([]models.Product, error) {
	return decodeProducts(bundledProducts)
}

// FileSeed reads a JSON product list from disk.
type FileSeed struct {
	Path string
}

func (s FileSeed) Load(context.Context) ([]models.Product, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return decodeProducts(data)
}

func decodeProducts(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode seed products: %w", err)
	}
	return products, nil
}

// FakeSeed generates Count random products. The same Seed always yields the same catalog.
type FakeSeed struct {
	Count int
	Seed  uint64
}

func (s FakeSeed) Load(context.Context) ([]models.Product, error) {
	faker := gofakeit.New(s.Seed)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	products := make([]models.Product, s.Count)
	for i := range products {
		products[i] = models.Product{
			ID:        i + 1,
			Name:      faker.ProductName(),
			Category:  faker.ProductCategory(),
			Price:     math.Round(faker.Price(5, 1500)*100) / 100,
			UnitsSold: faker.Number(0, 300),
			InStock:   faker.Number(0, 100),
			Date:      faker.DateRange(start, end).Format(models.DateLayout),
		}
	}
	return products, nil
}

// Seed fills r from src.
func Seed(ctx context.Context, r *InMemoryProductRepository, src SeedSource) error {
	products, err := src.Load(ctx)
	if err != nil {
		return err
	}
	return r.Replace(products)
}
