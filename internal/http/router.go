package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http/importcsv"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/http/proforma"
)

func New(
	proformasV1 *proforma.Handler,
	importV1 *importcsv.Handler,
	materialityV1 *materiality.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/proformas", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			proformasV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/materiality", func(r chi.Router) {
			materialityV1.Routes(r)
		})
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}
