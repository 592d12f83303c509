package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
)

// GetCriteriaHandler godoc
// @Summary Current filter and sort criteria
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.Criteria
// @Router /criteria [get]
func (s *Server) GetCriteriaHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, d.Criteria())
}

// UpdateCriteriaHandler godoc
// @Summary Change filter and sort criteria
// @Description Absent fields keep their value. Ranges with min above max and unknown sort settings are rejected.
// @Tags criteria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param criteria body view.CriteriaPatch true "Fields to change"
// @Success 200 {object} view.Criteria
// @Failure 400 {string} string "Invalid criteria"
// @Router /criteria [put]
func (s *Server) UpdateCriteriaHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	var patch view.CriteriaPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	c, err := d.UpdateCriteria(patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respond(w, http.StatusOK, c)
}

// SearchHandler godoc
// @Summary Type into the search box
// @Description The term is applied after the debounce delay unless flush is set. Each call replaces the pending term.
// @Tags criteria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search body SearchRequest true "Search term"
// @Param flush query bool false "Apply the term immediately"
// @Success 202 {object} SearchResult
// @Success 200 {object} SearchResult
// @Failure 400 {string} string "Invalid input"
// @Router /criteria/search [put]
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	var req SearchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	flush, _ := strconv.ParseBool(r.URL.Query().Get("flush"))
	if flush {
		d.SetSearch(req.Term)
		s.respond(w, http.StatusOK, SearchResult{Term: req.Term})
		return
	}

	d.TypeSearch(req.Term)
	s.respond(w, http.StatusAccepted, SearchResult{Term: req.Term, Pending: true})
}

// ApplyStockPresetHandler godoc
// @Summary Apply a stock health preset
// @Description critical: stock 0-10 and low stock only. low: 11-25. good: 26 and above. all: 0-100.
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Param tier path string true "critical, low, good or all"
// @Success 200 {object} view.Criteria
// @Failure 400 {string} string "Unknown preset"
// @Router /criteria/preset/{tier} [post]
func (s *Server) ApplyStockPresetHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	c, err := d.ApplyStockPreset(view.StockPreset(chi.URLParam(r, "tier")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respond(w, http.StatusOK, c)
}

// ResetCriteriaHandler godoc
// @Summary Reset criteria to their defaults
// @Description Ranges span the current products again, every category is selected and the search is cleared.
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.Criteria
// @Router /criteria/reset [post]
func (s *Server) ResetCriteriaHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, d.ResetCriteria())
}
