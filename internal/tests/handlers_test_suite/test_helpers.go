package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/auth"
	handler "github.com/rogerio-castellano/commerce-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/commerce-dashboard/internal/http/router"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
)

const jwtSecret = "test-secret"

var token string

func init() {
	var err error
	token, err = auth.GenerateToken(models.Identity{
		Subject:     "user-1",
		DisplayName: "Ada Lovelace",
		Email:       "ada@example.com",
	}, jwtSecret, time.Hour)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

type fixtureSeed struct{}

func (fixtureSeed) Load(context.Context) ([]models.Product, error) {
	return []models.Product{
		{ID: 1, Name: "Alpha", Category: "A", Price: 10, UnitsSold: 1, InStock: 5, Date: "2024-01-01"},
		{ID: 2, Name: "Beta", Category: "A", Price: 20, UnitsSold: 2, InStock: 50, Date: "2024-01-02"},
		{ID: 3, Name: "Gamma", Category: "B", Price: 30, UnitsSold: 3, InStock: 20, Date: "2024-01-03"},
	}, nil
}

// newRouter returns a router over fresh sessions seeded with the three fixture products.
func newRouter(opts store.Options) (http.Handler, *store.Sessions) {
	sessions := store.NewSessions(fixtureSeed{}, opts, nil)
	r := router.NewRouter(router.Deps{
		Server:   handler.NewServer(sessions, nil),
		Verifier: auth.NewVerifier(jwtSecret),
	})
	return r, sessions
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/products", p)
}

func listProducts(r http.Handler, query string) (handler.ProductsPageResult, int) {
	w := doRequest(r, http.MethodGet, "/products"+query, nil)
	var resp handler.ProductsPageResult
	_ = json.NewDecoder(w.Body).Decode(&resp)
	return resp, w.Code
}

func productIDs(resp handler.ProductsPageResult) []int {
	ids := make([]int, len(resp.Data))
	for i, p := range resp.Data {
		ids[i] = p.Id
	}
	return ids
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func ptr[T any](v T) *T { return &v }
