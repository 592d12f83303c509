package view

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
)

var exportHeader = []string{"name", "category", "price", "unitsSold", "revenue", "date", "inStock"}

// WriteCSV writes products, in the given order, as delimited text with a header row.
func WriteCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.Name,
			p.Category,
			formatAmount(p.Price),
			strconv.Itoa(p.UnitsSold),
			formatAmount(p.Revenue()),
			p.Date,
			strconv.Itoa(p.InStock),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
