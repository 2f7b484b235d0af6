// Package server exposes the ledger over HTTP: record and document
// listings, analytics projections and multipart statement ingestion.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ekaraca/vakif-ledger/internal/analytics"
	"ekaraca/vakif-ledger/internal/config"
	"ekaraca/vakif-ledger/internal/ledger"
	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/textextract"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(store ledger.Store, ingestor *ledger.Ingestor, extractor textextract.Extractor, symbols analytics.SymbolSet, logger logging.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(newCORS(cfg.Server.AllowedOrigins).Handler)

	h := NewHandler(store, ingestor, extractor, symbols, logger, cfg.Server.MaxUploadBytes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/records", h.Records)
		r.Get("/documents", h.Documents)
		r.Post("/ingest", h.Ingest)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/stocks", h.StockAnalytics)
			r.Get("/monthly", h.MonthlyAnalytics)
		})
	})

	return r
}
