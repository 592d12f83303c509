package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/commerce-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
)

func importCSV(r http.Handler, content string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(content, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/products/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler(t *testing.T) {
	r, _ := newRouter(store.Options{})

	content := strings.Join([]string{
		"name,category,price,unitsSold,inStock",
		"Delta,C,5,2,8",
		",C,5,1,1",
		"Epsilon,C,abc,1,1",
		"Zeta,C,-1,1,1",
		"Eta,D,7,,",
	}, "\n")

	w := importCSV(r, content)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported products, got %d", resp.ImportedProductsCount)
	}

	expectPrefixes := []string{"row 3:", "row 4:", "row 5:"}
	if len(resp.Errors) != len(expectPrefixes) {
		t.Fatalf("expected %d errors, got %+v", len(expectPrefixes), resp.Errors)
	}
	for i, prefix := range expectPrefixes {
		if !strings.HasPrefix(resp.Errors[i].Description, prefix) {
			t.Errorf("error %d: expected prefix %q, got %q", i, prefix, resp.Errors[i].Description)
		}
	}
	if resp.Errors[0].Field != "Name" || resp.Errors[2].Field != "Price" {
		t.Errorf("unexpected error fields %+v", resp.Errors)
	}

	w = doRequest(r, http.MethodGet, "/categories", nil)
	var categories []string
	json.NewDecoder(w.Body).Decode(&categories)
	if !slices.Equal(categories, []string{"A", "B", "C", "D"}) {
		t.Errorf("expected categories A to D, got %v", categories)
	}

	// The category selection made at startup is kept, so new categories stay hidden
	// until selected.
	list, _ := listProducts(r, "")
	if list.Meta.TotalCount != 3 {
		t.Errorf("expected 3 visible products, got %d", list.Meta.TotalCount)
	}

	doRequest(r, http.MethodPut, "/criteria", view.CriteriaPatch{
		Categories: &[]string{"C", "D"},
		Price:      &view.Range[float64]{Min: 0, Max: 100},
		UnitsSold:  &view.Range[int]{Min: 0, Max: 100},
		InStock:    &view.Range[int]{Min: 0, Max: 100},
	})
	list, _ = listProducts(r, "")
	if !slices.Equal(productIDs(list), []int{4, 5}) {
		t.Errorf("expected imported products 4 and 5, got %v", productIDs(list))
	}
}

func TestImportProductsHandler_NonFiniteValues(t *testing.T) {
	r, _ := newRouter(store.Options{})

	content := strings.Join([]string{
		"name,category,price,unitsSold,inStock",
		"Omega,A,Inf,1,1",
		"Psi,A,NaN,1,1",
		"Chi,A,-Inf,1,1",
		"Phi,A,1e308,10,1",
	}, "\n")

	w := importCSV(r, content)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedProductsCount != 0 {
		t.Errorf("expected no imported products, got %d", resp.ImportedProductsCount)
	}

	expected := []handler.ProductValidationError{
		{Field: "Price", Description: "row 2: Price must be a finite number"},
		{Field: "Price", Description: "row 3: Price must be a finite number"},
		{Field: "Price", Description: "row 4: Price must be a finite number"},
		{Field: "Revenue", Description: "row 5: Revenue is out of range"},
	}
	if !slices.Equal(resp.Errors, expected) {
		t.Errorf("expected errors %+v, got %+v", expected, resp.Errors)
	}

	doRequest(r, http.MethodPut, "/criteria", view.CriteriaPatch{Categories: &[]string{"A"}})
	list, _ := listProducts(r, "")
	if list.Meta.TotalCount != 2 {
		t.Errorf("expected only the 2 seeded A products, got %d", list.Meta.TotalCount)
	}
}

func TestImportProductsHandler_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Missing price column", "name,category\nDelta,C"},
		{"Empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter(store.Options{})
			if w := importCSV(r, tt.content); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}

	t.Run("No file part", func(t *testing.T) {
		r, _ := newRouter(store.Options{})
		if w := doRequest(r, http.MethodPost, "/products/import", nil); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestExportProductsHandler(t *testing.T) {
	r, _ := newRouter(store.Options{})

	doRequest(r, http.MethodPut, "/criteria", view.CriteriaPatch{
		SortBy:    ptr(view.SortByPrice),
		SortOrder: ptr(view.Descending),
		Price:     &view.Range[float64]{Min: 15, Max: 30},
	})

	w := doRequest(r, http.MethodGet, "/products/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=\"products_") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	expected := "name,category,price,unitsSold,revenue,date,inStock\n" +
		"Gamma,B,30,3,90,2024-01-03,20\n" +
		"Beta,A,20,2,40,2024-01-02,50\n"
	if w.Body.String() != expected {
		t.Errorf("unexpected CSV:\n%s", w.Body.String())
	}
}
