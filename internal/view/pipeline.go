package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Matches reports whether p passes every filter of c.
// An empty category selection matches every category.
func Matches(p models.Product, c Criteria, categories map[string]struct{}) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Search)) {
		return false
	}
	if len(categories) > 0 {
		if _, ok := categories[p.Category]; !ok {
			return false
		}
	}
	if !c.Price.Contains(p.Price) || !c.UnitsSold.Contains(p.UnitsSold) || !c.InStock.Contains(p.InStock) {
		return false
	}
	if c.LowStockOnly && p.InStock > c.LowStockThreshold {
		return false
	}
	return true
}

// Filter keeps the products matching c, preserving their order.
func Filter(products []models.Product, c Criteria) []models.Product {
	categories := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat] = struct{}{}
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, c, categories) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy of products. Ties keep their input order in
// both directions.
func Sort(products []models.Product, field SortField, order SortOrder) []models.Product {
	out := slices.Clone(products)
	compare := comparator(field)
	if order == Descending {
		asc := compare
		compare = func(a, b models.Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func comparator(field SortField) func(a, b models.Product) int {
	switch field {
	case SortByCategory:
		col := collate.New(language.English, collate.IgnoreCase)
		return func(a, b models.Product) int { return col.CompareString(a.Category, b.Category) }
	case SortByPrice:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortByUnitsSold:
		return func(a, b models.Product) int { return cmp.Compare(a.UnitsSold, b.UnitsSold) }
	case SortByInStock:
		return func(a, b models.Product) int { return cmp.Compare(a.InStock, b.InStock) }
	case SortByDate:
		return func(a, b models.Product) int { return strings.Compare(a.Date, b.Date) }
	default:
		col := collate.New(language.English, collate.IgnoreCase)
		return func(a, b models.Product) int { return col.CompareString(a.Name, b.Name) }
	}
}

// ComputeView filters then sorts products according to c. Inputs are not modified.
func ComputeView(products []models.Product, c Criteria) []models.Product {
	return Sort(Filter(products, c), c.SortBy, c.SortOrder)
}
