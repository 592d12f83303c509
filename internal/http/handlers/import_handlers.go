package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
	"go.uber.org/zap"
)

var requiredColumns = []string{"name", "category", "price"}

type csvRow struct {
	line   int
	fields models.ProductFields
	err    error
}

// parseCSV reads product rows keyed by header name. revenue and date columns are
// ignored since the server derives them.
func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		fields, err := parseRecord(record, index)
		rows = append(rows, csvRow{line: line, fields: fields, err: err})
	}
	return rows, nil
}

func parseRecord(record []string, index map[string]int) (models.ProductFields, error) {
	cell := func(col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var f models.ProductFields
	if v, ok := cell("name"); ok {
		f.Name = &v
	}
	if v, ok := cell("category"); ok {
		f.Category = &v
	}
	if v, ok := cell("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, errors.New("invalid price")
		}
		f.Price = &price
	}
	for col, dst := range map[string]**int{"unitssold": &f.UnitsSold, "instock": &f.InStock} {
		v, ok := cell(col)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid %s", col)
		}
		*dst = &n
	}
	return f, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns name, category and price are required; unitsSold and inStock are optional. Invalid rows are reported and skipped.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /products/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var fields []models.ProductFields
	position := map[int]int{}
	for i, rec := range records {
		if rec.err == nil {
			position[i] = len(fields)
			fields = append(fields, rec.fields)
		}
	}
	added, failed := d.ImportProducts(fields)

	errorsList := []ProductValidationError{}
	for i, rec := range records {
		err := rec.err
		if err == nil {
			err = failed[position[i]]
		}
		if err == nil {
			continue
		}
		if errs, ok := validationErrors(err); ok {
			for _, e := range errs {
				errorsList = append(errorsList, ProductValidationError{Field: e.Field, Description: fmt.Sprintf("row %d: %s", rec.line, e.Description)})
			}
			continue
		}
		errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rec.line, err)})
	}

	s.respond(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: len(added),
		Errors:                errorsList,
	})
}

// ExportProductsHandler godoc
// @Summary Export the filtered products as CSV
// @Description Every product passing the current criteria, in the current sort order.
// @Tags import
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Router /products/export [get]
func (s *Server) ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	v := d.View()
	filename := fmt.Sprintf("products_%s.csv", time.Now().Format(models.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := view.WriteCSV(w, v.Products); err != nil {
		s.log.Warn("csv export interrupted", zap.Error(err))
	}
}
