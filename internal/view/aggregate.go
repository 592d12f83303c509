package view

import (
	"cmp"
	"math"
	"slices"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/samber/lo"
)

// NoCategory names the best category when there are no category rows.
const NoCategory = "N/A"

// profitRate is the flat margin the chart panel assumes for every product.
const profitRate = 0.3

type CategoryStats struct {
	Category        string  `json:"category"`
	Revenue         float64 `json:"revenue"`
	Units           int     `json:"units"`
	AvgPrice        float64 `json:"avgPrice"`
	AvgPriceRounded int64   `json:"avgPriceRounded"`
	LowStock        int     `json:"lowStock"`
	Products        int     `json:"products"`
}

type Overall struct {
	Revenue         float64 `json:"totalRevenue"`
	Units           int     `json:"totalUnits"`
	AvgPrice        float64 `json:"avgPrice"`
	AvgPriceRounded int64   `json:"avgPriceRounded"`
	BestCategory    string  `json:"bestCategory"`
	LowStockItems   int     `json:"lowStockItems"`
	TotalProducts   int     `json:"totalProducts"`
}

type Summary struct {
	PerCategory []CategoryStats `json:"perCategory"`
	Overall     Overall         `json:"overall"`
}

type totals struct {
	revenue  float64
	units    int
	avgPrice float64
	lowStock int
}

func sum(products []models.Product, threshold int) totals {
	t := totals{
		revenue:  lo.SumBy(products, func(p models.Product) float64 { return p.Revenue() }),
		units:    lo.SumBy(products, func(p models.Product) int { return p.UnitsSold }),
		lowStock: lo.CountBy(products, func(p models.Product) bool { return p.InStock <= threshold }),
	}
	if len(products) > 0 {
		t.avgPrice = lo.SumBy(products, func(p models.Product) float64 { return p.Price }) / float64(len(products))
	}
	return t
}

// Aggregate computes one row per category, in the given order, plus overall totals
// over the whole filtered set. A threshold <= 0 falls back to DefaultLowStockThreshold.
func Aggregate(filtered []models.Product, categories []string, threshold int) Summary {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	byCategory := lo.GroupBy(filtered, func(p models.Product) string { return p.Category })

	rows := make([]CategoryStats, 0, len(categories))
	for _, category := range categories {
		products := byCategory[category]
		t := sum(products, threshold)
		rows = append(rows, CategoryStats{
			Category:        category,
			Revenue:         t.revenue,
			Units:           t.units,
			AvgPrice:        t.avgPrice,
			AvgPriceRounded: int64(math.Round(t.avgPrice)),
			LowStock:        t.lowStock,
			Products:        len(products),
		})
	}

	t := sum(filtered, threshold)
	return Summary{
		PerCategory: rows,
		Overall: Overall{
			Revenue:         t.revenue,
			Units:           t.units,
			AvgPrice:        t.avgPrice,
			AvgPriceRounded: int64(math.Round(t.avgPrice)),
			BestCategory:    bestCategory(rows),
			LowStockItems:   t.lowStock,
			TotalProducts:   len(filtered),
		},
	}
}

// bestCategory picks the highest revenue row; the earliest row wins ties.
func bestCategory(rows []CategoryStats) string {
	if len(rows) == 0 {
		return NoCategory
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Revenue > best.Revenue {
			best = r
		}
	}
	return best.Category
}

// ProductPoint is one product as plotted by the chart panel.
type ProductPoint struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	UnitsSold    int     `json:"unitsSold"`
	Revenue      float64 `json:"revenue"`
	ProfitMargin float64 `json:"profitMargin"`
}

func Points(products []models.Product) []ProductPoint {
	return lo.Map(products, func(p models.Product, _ int) ProductPoint {
		return ProductPoint{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Price:        p.Price,
			UnitsSold:    p.UnitsSold,
			Revenue:      p.Revenue(),
			ProfitMargin: math.Round(p.Price*profitRate*100) / 100,
		}
	})
}

// TopProducts returns the n highest revenue products. Equal revenue keeps input order.
func TopProducts(products []models.Product, n int) []models.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Revenue(), a.Revenue()) })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
