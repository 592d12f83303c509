package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/commerce-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
)

func getSummary(t *testing.T, r http.Handler) handler.SummaryResponse {
	t.Helper()
	w := doRequest(r, http.MethodGet, "/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func TestGetSummaryHandler(t *testing.T) {
	r, _ := newRouter(store.Options{TopProducts: 2})

	resp := getSummary(t, r)

	if resp.Overall.Revenue != 140 {
		t.Errorf("expected total revenue 140, got %v", resp.Overall.Revenue)
	}
	if resp.Overall.Units != 6 {
		t.Errorf("expected 6 units, got %d", resp.Overall.Units)
	}
	if resp.Overall.BestCategory != "B" {
		t.Errorf("expected best category B, got %s", resp.Overall.BestCategory)
	}
	if resp.Overall.LowStockItems != 1 {
		t.Errorf("expected 1 low stock item, got %d", resp.Overall.LowStockItems)
	}
	if len(resp.PerCategory) != 2 || resp.PerCategory[0].Category != "A" || resp.PerCategory[0].Revenue != 50 {
		t.Errorf("unexpected per category rows %+v", resp.PerCategory)
	}
	if len(resp.Top) != 2 || resp.Top[0].Id != 3 {
		t.Errorf("expected product 3 to lead the top products, got %+v", resp.Top)
	}
	if len(resp.Points) != 3 {
		t.Errorf("expected a chart point per product, got %d", len(resp.Points))
	}
}

func TestGetSummaryHandler_FollowsFilters(t *testing.T) {
	r, _ := newRouter(store.Options{})

	doRequest(r, http.MethodPut, "/criteria", view.CriteriaPatch{Price: &view.Range[float64]{Min: 100, Max: 200}})
	resp := getSummary(t, r)

	if resp.Overall.TotalProducts != 0 || resp.Overall.Revenue != 0 || resp.Overall.AvgPrice != 0 {
		t.Errorf("expected empty aggregates, got %+v", resp.Overall)
	}
	if resp.Overall.BestCategory != "A" {
		t.Errorf("expected the first row to win the zero revenue tie, got %s", resp.Overall.BestCategory)
	}
}
