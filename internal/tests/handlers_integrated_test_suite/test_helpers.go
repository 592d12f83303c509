// Package handlers_integrated_test_suite runs the router against real Postgres and
// Redis instances. Tests skip when DATABASE_URL or REDIS_ADDR is not set.
package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/commerce-dashboard/internal/db"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/rogerio-castellano/commerce-dashboard/internal/redissvc"
)

const jwtSecret = "integration-secret"

var token string

func init() {
	var err error
	token, err = auth.GenerateToken(models.Identity{Subject: "integration-user", DisplayName: "Grace Hopper"}, jwtSecret, time.Hour)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func connectDatabase(t *testing.T) *sql.DB {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	database, err := db.Connect(t.Context(), dbURL)
	if err != nil {
		t.Fatalf("could not connect to database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	const schema = `CREATE TABLE IF NOT EXISTS seed_products (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL,
		price       NUMERIC(10, 2) NOT NULL,
		units_sold  INTEGER NOT NULL DEFAULT 0,
		in_stock    INTEGER NOT NULL DEFAULT 0,
		created_on  DATE NOT NULL
	)`
	if _, err := database.ExecContext(t.Context(), schema); err != nil {
		t.Fatalf("could not create seed table: %v", err)
	}
	clearSeedProducts(t, database)
	t.Cleanup(func() { clearSeedProducts(t, database) })
	return database
}

func clearSeedProducts(t *testing.T, database *sql.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := database.ExecContext(ctx, "TRUNCATE TABLE seed_products"); err != nil {
		t.Errorf("failed to truncate seed_products: %v", err)
	}
}

func insertSeedProduct(t *testing.T, database *sql.DB, p models.Product) {
	t.Helper()
	const query = `INSERT INTO seed_products (id, name, category, price, units_sold, in_stock, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := database.ExecContext(t.Context(), query, p.ID, p.Name, p.Category, p.Price, p.UnitsSold, p.InStock, p.Date); err != nil {
		t.Fatalf("failed to insert seed product: %v", err)
	}
}

func connectRedis(t *testing.T) *redissvc.RedisService {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rs, err := redissvc.Connect(t.Context(), addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}
	t.Cleanup(func() { rs.Close() })
	return rs
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
