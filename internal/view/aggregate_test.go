package view

import (
	"testing"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_PerCategoryAndOverall(t *testing.T) {
	products := catalog()

	s := Aggregate(products, []string{"Electronics", "Home", "Clothing"}, 15)

	assert.Len(t, s.PerCategory, 3)
	electronics := s.PerCategory[0]
	assert.Equal(t, "Electronics", electronics.Category)
	assert.Equal(t, 1200.0*10+25*200, electronics.Revenue)
	assert.Equal(t, 210, electronics.Units)
	assert.Equal(t, 612.5, electronics.AvgPrice)
	assert.Equal(t, int64(613), electronics.AvgPriceRounded)
	assert.Equal(t, 1, electronics.LowStock)
	assert.Equal(t, 2, electronics.Products)

	home := s.PerCategory[1]
	assert.Equal(t, 39.0*50+25*120, home.Revenue)
	assert.Equal(t, 1, home.LowStock, "12 in stock is at/under 15")

	assert.Equal(t, len(products), s.Overall.TotalProducts)
	assert.Equal(t, "Electronics", s.Overall.BestCategory)
	assert.Equal(t, 3, s.Overall.LowStockItems)
	assert.Equal(t, 410, s.Overall.Units)
	assert.InDelta(t, 273.8, s.Overall.AvgPrice, 1e-9)
	assert.Equal(t, int64(274), s.Overall.AvgPriceRounded)
}

func TestAggregate_OverallCoversWholeFilteredSetNotJustRows(t *testing.T) {
	products := catalog()

	s := Aggregate(products, []string{"Home"}, 15)

	assert.Len(t, s.PerCategory, 1)
	assert.Equal(t, len(products), s.Overall.TotalProducts)
	assert.Equal(t, "Home", s.Overall.BestCategory)
}

func TestAggregate_EmptyInput(t *testing.T) {
	s := Aggregate(nil, []string{"A", "B"}, 15)

	assert.Zero(t, s.Overall.Revenue)
	assert.Zero(t, s.Overall.Units)
	assert.Zero(t, s.Overall.AvgPrice)
	assert.Zero(t, s.Overall.TotalProducts)
	for _, row := range s.PerCategory {
		assert.Zero(t, row.AvgPrice)
	}
	assert.Equal(t, "A", s.Overall.BestCategory, "ties go to the first row")

	assert.Equal(t, NoCategory, Aggregate(nil, nil, 15).Overall.BestCategory)
}

func TestAggregate_BestCategoryTieGoesToFirstOccurrence(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "A", Price: 10, UnitsSold: 2},
		{ID: 2, Category: "B", Price: 20, UnitsSold: 1},
	}

	s := Aggregate(products, []string{"B", "A"}, 15)

	assert.Equal(t, "B", s.Overall.BestCategory)
}

func TestAggregate_FallbackThreshold(t *testing.T) {
	products := []models.Product{
		{ID: 1, Category: "A", Price: 1, InStock: 15},
		{ID: 2, Category: "A", Price: 1, InStock: 16},
	}

	s := Aggregate(products, []string{"A"}, 0)

	assert.Equal(t, 1, s.Overall.LowStockItems)
}

func TestAggregate_RevenueIsNotRounded(t *testing.T) {
	products := []models.Product{{ID: 1, Category: "A", Price: 9.99, UnitsSold: 3}}

	s := Aggregate(products, []string{"A"}, 15)

	assert.InDelta(t, 29.97, s.Overall.Revenue, 1e-9)
	assert.Equal(t, int64(10), s.Overall.AvgPriceRounded)
}

func TestTopProductsAndPoints(t *testing.T) {
	products := catalog()

	top := TopProducts(products, 2)
	assert.Equal(t, []int{1, 2}, ids(top))

	points := Points(products[:1])
	assert.Equal(t, 12000.0, points[0].Revenue)
	assert.Equal(t, 360.0, points[0].ProfitMargin)
}
