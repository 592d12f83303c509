package handlers

import (
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
)

// ProductRequest carries the fields to set. Absent fields are left unchanged on update.
type ProductRequest struct {
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	UnitsSold *int     `json:"unitsSold,omitempty"`
	InStock   *int     `json:"inStock,omitempty"`
}

func (req ProductRequest) fields() models.ProductFields {
	return models.ProductFields{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		UnitsSold: req.UnitsSold,
		InStock:   req.InStock,
	}
}

type ProductResponse struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	UnitsSold int     `json:"unitsSold"`
	InStock   int     `json:"inStock"`
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	LowStock  bool    `json:"lowStock,omitempty"`
}

func toProductResponse(p models.Product, threshold int) ProductResponse {
	return ProductResponse{
		Id:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		UnitsSold: p.UnitsSold,
		InStock:   p.InStock,
		Date:      p.Date,
		Revenue:   p.Revenue(),
		LowStock:  p.InStock <= threshold,
	}
}

type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	TotalCount int   `json:"totalCount"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
	Pages      []int `json:"pages"`
}

type ProductsPageResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type DeleteProductsRequest struct {
	IDs []int `json:"ids"`
}

type DeleteProductsResult struct {
	Deleted int `json:"deleted"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type SearchResult struct {
	Term    string `json:"term"`
	Pending bool   `json:"pending"`
}

type SummaryResponse struct {
	PerCategory []view.CategoryStats `json:"perCategory"`
	Overall     view.Overall         `json:"overall"`
	Top         []ProductResponse    `json:"topProducts"`
	Points      []view.ProductPoint  `json:"points"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
