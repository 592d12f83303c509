package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/commerce-dashboard/internal/repo"
	"go.uber.org/zap"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the caller's dashboard. Id and date are assigned by the server.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := d.AddProduct(req.fields())
	if err != nil {
		s.writeProductError(w, err, "could not create product")
		return
	}

	s.respond(w, http.StatusCreated, toProductResponse(created, d.Criteria().LowStockThreshold))
}

// GetProductsHandler godoc
// @Summary List the current page of the dashboard table
// @Description Products that pass the current criteria, in the current sort order, paginated.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, clamped into the valid range"
// @Param pageSize query int false "Page size, changing it goes back to page 1"
// @Success 200 {object} ProductsPageResult
// @Failure 400 {string} string "Invalid query"
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	pageSize, err := queryInt(r, "pageSize", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.URL.Query().Has("pageSize") {
		if err := d.SetPageSize(pageSize); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	page, err := queryInt(r, "page", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.URL.Query().Has("page") {
		d.SetPage(page)
	}

	v := d.View()
	threshold := v.Criteria.LowStockThreshold
	resp := ProductsPageResult{
		Data: make([]ProductResponse, len(v.Page.Items)),
		Meta: Meta{
			Page:       v.Page.Page,
			PageSize:   v.Page.PageSize,
			TotalPages: v.Page.TotalPages,
			TotalCount: v.Page.TotalCount,
			HasNext:    v.Page.HasNext,
			HasPrev:    v.Page.HasPrev,
			Pages:      v.Pages,
		},
	}
	for i, p := range v.Page.Items {
		resp.Data[i] = toProductResponse(p, threshold)
	}

	s.respond(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := d.Product(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		s.log.Error("could not fetch product", zap.Int("id", id), zap.Error(err))
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	s.respond(w, http.StatusOK, toProductResponse(product, d.Criteria().LowStockThreshold))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Merges the given fields into the product. An unknown id is ignored.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Success 204 "Unknown product, nothing changed"
// @Failure 400 {array} ProductValidationError
// @Router /products/{id} [patch]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, found, err := d.UpdateProduct(id, req.fields())
	if err != nil {
		s.writeProductError(w, err, "could not update product")
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.respond(w, http.StatusOK, toProductResponse(updated, d.Criteria().LowStockThreshold))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the product. An unknown id is ignored.
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Failure 400 {string} string "Invalid ID"
// @Router /products/{id} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d.RemoveProduct(id)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProductsHandler godoc
// @Summary Delete several products
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body DeleteProductsRequest true "Ids to delete"
// @Success 200 {object} DeleteProductsResult
// @Failure 400 {string} string "Invalid input"
// @Router /products/delete [post]
func (s *Server) DeleteProductsHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}

	var req DeleteProductsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s.respond(w, http.StatusOK, DeleteProductsResult{Deleted: d.RemoveProducts(req.IDs)})
}

// GetCategoriesHandler godoc
// @Summary List every category present in the caller's products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /categories [get]
func (s *Server) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.session(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, d.Categories())
}

func (s *Server) writeProductError(w http.ResponseWriter, err error, msg string) {
	if errs, ok := validationErrors(err); ok {
		s.respond(w, http.StatusBadRequest, errs)
		return
	}
	s.log.Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	err := writeJSON(w, status, data)
	switch {
	case errors.Is(err, errEncodeJSON):
		s.log.Error("failed to encode JSON response", zap.Int("status", status), zap.Error(err))
		http.Error(w, "could not encode response", http.StatusInternalServerError)
	case err != nil:
		s.log.Warn("failed to write JSON response", zap.Error(err))
	}
}
