package models

// DateLayout is the day-precision stamp used for product creation dates.
const DateLayout = "2006-01-02"

// Product represents one catalog item in a dashboard session.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name" validate:"required,notblank"`
	Category  string  `json:"category" validate:"required,notblank"`
	Price     float64 `json:"price" validate:"finite,gt=0"`
	UnitsSold int     `json:"unitsSold" validate:"gte=0"`
	InStock   int     `json:"inStock" validate:"gte=0"`
	Date      string  `json:"date"`
}

// Revenue is price times units sold. It is never rounded.
func (p Product) Revenue() float64 {
	return p.Price * float64(p.UnitsSold)
}

// ProductFields is a partial product record. Nil fields are left untouched by Merge.
type ProductFields struct {
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	UnitsSold *int     `json:"unitsSold,omitempty"`
	InStock   *int     `json:"inStock,omitempty"`
}

// Merge returns p with every present field of f applied.
func (f ProductFields) Merge(p Product) Product {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.Category != nil {
		p.Category = *f.Category
	}
	if f.Price != nil {
		p.Price = *f.Price
	}
	if f.UnitsSold != nil {
		p.UnitsSold = *f.UnitsSold
	}
	if f.InStock != nil {
		p.InStock = *f.InStock
	}
	return p
}
