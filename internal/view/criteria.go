// Package view holds the derived-state pipeline of the dashboard: filter criteria,
// filtering and sorting, aggregation, pagination and export. Everything here is a
// pure function of its arguments.
package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/samber/lo"
)

// DefaultLowStockThreshold applies when no explicit threshold is configured.
const DefaultLowStockThreshold = 15

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrUnknownPreset    = errors.New("unknown stock preset")
	ErrInvalidRange     = errors.New("range minimum is greater than maximum")
)

type SortField string

const (
	SortByName      SortField = "name"
	SortByCategory  SortField = "category"
	SortByPrice     SortField = "price"
	SortByUnitsSold SortField = "unitsSold"
	SortByInStock   SortField = "inStock"
	SortByDate      SortField = "date"
)

var sortFields = []SortField{SortByName, SortByCategory, SortByPrice, SortByUnitsSold, SortByInStock, SortByDate}

func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if !slices.Contains(sortFields, f) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
	return f, nil
}

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case Ascending, Descending:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
}

type number interface {
	~int | ~float64
}

// Range is an inclusive [Min, Max] interval.
type Range[T number] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range[T]) Valid() bool {
	return r.Min <= r.Max
}

// observedRange spans every value of key over products; [0,0] when empty.
func observedRange[T number](products []models.Product, key func(models.Product) T) Range[T] {
	if len(products) == 0 {
		return Range[T]{}
	}
	r := Range[T]{Min: key(products[0]), Max: key(products[0])}
	for _, p := range products[1:] {
		r.Min = min(r.Min, key(p))
		r.Max = max(r.Max, key(p))
	}
	return r
}

// StockPreset is a canned in-stock range plus low-stock flag.
type StockPreset string

const (
	PresetCritical StockPreset = "critical"
	PresetLow      StockPreset = "low"
	PresetGood     StockPreset = "good"
	PresetAll      StockPreset = "all"
)

// Criteria is the user's current search, filter and sort intent.
type Criteria struct {
	Search            string         `json:"search"`
	Categories        []string       `json:"categories"`
	Price             Range[float64] `json:"price"`
	UnitsSold         Range[int]     `json:"unitsSold"`
	InStock           Range[int]     `json:"inStock"`
	LowStockOnly      bool           `json:"lowStockOnly"`
	LowStockThreshold int            `json:"lowStockThreshold"`
	SortBy            SortField      `json:"sortBy"`
	SortOrder         SortOrder      `json:"sortOrder"`

	categoriesChosen bool
}

// AllCategories returns the distinct categories of products in order of first appearance.
func AllCategories(products []models.Product) []string {
	return lo.Uniq(lo.Map(products, func(p models.Product, _ int) string { return p.Category }))
}

// DefaultCriteria spans the observed ranges of products and selects every category.
func DefaultCriteria(products []models.Product, threshold int) Criteria {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	c := Criteria{
		Categories:        AllCategories(products),
		Price:             observedRange(products, func(p models.Product) float64 { return p.Price }),
		UnitsSold:         observedRange(products, func(p models.Product) int { return p.UnitsSold }),
		InStock:           observedRange(products, func(p models.Product) int { return p.InStock }),
		LowStockThreshold: threshold,
		SortBy:            SortByName,
		SortOrder:         Ascending,
	}
	c.categoriesChosen = len(c.Categories) > 0
	return c
}

// Clone returns a copy that shares no slices with c.
func (c Criteria) Clone() Criteria {
	c.Categories = slices.Clone(c.Categories)
	return c
}

// SetCategories records an explicit category selection.
func (c *Criteria) SetCategories(categories []string) {
	c.Categories = slices.Clone(categories)
	if c.Categories == nil {
		c.Categories = []string{}
	}
	c.categoriesChosen = true
}

// SyncCategories selects every observed category the first time any show up,
// unless the user already picked some. It never narrows or widens a later selection.
func (c *Criteria) SyncCategories(all []string) {
	if c.categoriesChosen || len(all) == 0 {
		return
	}
	if len(c.Categories) == 0 {
		c.Categories = slices.Clone(all)
	}
	c.categoriesChosen = true
}

// SyncRepository re-derives the ranges and the category selection from products the
// first time the repository shows any category. Afterwards it only keeps categoriesChosen.
func (c *Criteria) SyncRepository(products []models.Product) {
	if c.categoriesChosen {
		return
	}
	all := AllCategories(products)
	if len(all) == 0 {
		return
	}
	fresh := DefaultCriteria(products, c.LowStockThreshold)
	c.Price, c.UnitsSold, c.InStock = fresh.Price, fresh.UnitsSold, fresh.InStock
	c.SyncCategories(all)
}

// ApplyStockPreset sets the in-stock range and low-stock flag together.
func (c *Criteria) ApplyStockPreset(tier StockPreset, products []models.Product) error {
	switch tier {
	case PresetCritical:
		c.InStock = Range[int]{Min: 0, Max: 10}
		c.LowStockOnly = true
	case PresetLow:
		c.InStock = Range[int]{Min: 11, Max: 25}
		c.LowStockOnly = false
	case PresetGood:
		observed := observedRange(products, func(p models.Product) int { return p.InStock })
		c.InStock = Range[int]{Min: 26, Max: max(observed.Max, 100)}
		c.LowStockOnly = false
	case PresetAll:
		c.InStock = Range[int]{Min: 0, Max: 100}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreset, tier)
	}
	return nil
}

// Validate rejects ranges whose minimum exceeds their maximum and unknown sort settings.
func (c Criteria) Validate() error {
	switch {
	case !c.Price.Valid():
		return fmt.Errorf("price: %w", ErrInvalidRange)
	case !c.UnitsSold.Valid():
		return fmt.Errorf("unitsSold: %w", ErrInvalidRange)
	case !c.InStock.Valid():
		return fmt.Errorf("inStock: %w", ErrInvalidRange)
	}
	if _, err := ParseSortField(string(c.SortBy)); err != nil {
		return err
	}
	_, err := ParseSortOrder(string(c.SortOrder))
	return err
}

// CriteriaPatch carries the criteria fields a caller wants to change. Nil fields keep
// their current value.
type CriteriaPatch struct {
	Search            *string         `json:"search,omitempty"`
	Categories        *[]string       `json:"categories,omitempty"`
	Price             *Range[float64] `json:"price,omitempty"`
	UnitsSold         *Range[int]     `json:"unitsSold,omitempty"`
	InStock           *Range[int]     `json:"inStock,omitempty"`
	LowStockOnly      *bool           `json:"lowStockOnly,omitempty"`
	LowStockThreshold *int            `json:"lowStockThreshold,omitempty"`
	SortBy            *SortField      `json:"sortBy,omitempty"`
	SortOrder         *SortOrder      `json:"sortOrder,omitempty"`
}

// Apply returns a copy of c with the patch applied. c itself is left as is.
func (p CriteriaPatch) Apply(c Criteria) Criteria {
	c = c.Clone()
	if p.Search != nil {
		c.Search = *p.Search
	}
	if p.Categories != nil {
		c.SetCategories(*p.Categories)
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.UnitsSold != nil {
		c.UnitsSold = *p.UnitsSold
	}
	if p.InStock != nil {
		c.InStock = *p.InStock
	}
	if p.LowStockOnly != nil {
		c.LowStockOnly = *p.LowStockOnly
	}
	if p.LowStockThreshold != nil {
		c.LowStockThreshold = *p.LowStockThreshold
	}
	if p.SortBy != nil {
		c.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		c.SortOrder = *p.SortOrder
	}
	return c
}
