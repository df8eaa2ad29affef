package api

import (
	"net/http"
	"order-quote-service/internal/api/handlers"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	catalog *domain.Catalog,
	distances ports.DistanceIndex,
	quoteCache ports.QuoteCache,
) http.Handler {
	mux := http.NewServeMux()

	optionsHandler := &handlers.OptionsHandler{
		Catalog:   catalog,
		Distances: distances,
	}
	quoteHandler := &handlers.QuoteHandler{
		Catalog:   catalog,
		Distances: distances,
		Cache:     quoteCache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/options", optionsHandler.Options)
	mux.HandleFunc("/api/calculate", quoteHandler.Calculate)

	return loggingMiddleware(mux)
}
