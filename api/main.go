package main

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/commerce-dashboard/internal/cli"
)

// @title Commerce Dashboard API
// @version 1.0
// @description Per-user product catalog dashboard: filtering, sorting, pagination, aggregates and CSV import/export.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
