package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rogerio-castellano/commerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/commerce-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/commerce-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/commerce-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/commerce-dashboard/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/commerce-dashboard/docs"
)

const serviceName = "commerce-dashboard"

type Deps struct {
	Server    *handlers.Server
	Verifier  *auth.Verifier
	Visitors  *rl.Visitors
	Bans      ban.Store
	RateLimit mw.RateLimitOptions
	Log       *zap.Logger
}

func NewRouter(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	s := d.Server

	r := chi.NewRouter()
	r.Use(mw.Recovery(log))
	r.Use(mw.RequestLogging(log))
	r.Use(mw.PrometheusMetrics(serviceName))

	r.Get("/healthz", s.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if d.Visitors != nil && d.Bans != nil {
			r.Use(mw.RateLimit(d.Visitors, d.Bans, d.RateLimit, log))
		}
		r.Use(mw.Authenticate(d.Verifier, log))

		r.Get("/me", s.MeHandler)
		r.Delete("/me/session", s.SignOutHandler)

		r.Get("/products", s.GetProductsHandler)
		r.Post("/products", s.CreateProductHandler)
		r.Post("/products/delete", s.DeleteProductsHandler)
		r.Get("/products/export", s.ExportProductsHandler)
		r.Post("/products/import", s.ImportProductsHandler)
		r.Get("/products/{id}", s.GetProductByIDHandler)
		r.Patch("/products/{id}", s.UpdateProductHandler)
		r.Delete("/products/{id}", s.DeleteProductHandler)

		r.Get("/categories", s.GetCategoriesHandler)
		r.Get("/summary", s.GetSummaryHandler)

		r.Get("/criteria", s.GetCriteriaHandler)
		r.Put("/criteria", s.UpdateCriteriaHandler)
		r.Put("/criteria/search", s.SearchHandler)
		r.Post("/criteria/preset/{tier}", s.ApplyStockPresetHandler)
		r.Post("/criteria/reset", s.ResetCriteriaHandler)
	})

	return r
}
