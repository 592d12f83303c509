package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/samber/lo"
)

// GetSummaryHandler godoc
// @Summary Aggregates of the filtered products
// @Description Per category and overall revenue, units, average price and low stock counts, plus the chart data.
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Router /summary [get]
func (s *Server) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	v := d.View()
	threshold := v.Criteria.LowStockThreshold
	s.respond(w, http.StatusOK, SummaryResponse{
		PerCategory: v.Summary.PerCategory,
		Overall:     v.Summary.Overall,
		Top: lo.Map(v.Top, func(p models.Product, _ int) ProductResponse {
			return toProductResponse(p, threshold)
		}),
		Points: v.Points,
	})
}
