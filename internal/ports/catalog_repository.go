package ports

import (
	"context"
	"order-quote-service/internal/domain"
)

// One origin->destination distance row as stored.
type DistanceRow struct {
	Origin      string
	Destination string
	Km          float64
}

// Port: a boundary for loading the catalog and distance snapshot from
// a data source. Implementations load once at startup; the returned
// structures are treated as immutable afterwards.
type CatalogRepository interface {
	// Retrieve every item with its per-city prices and stock.
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)

	// Retrieve all known city-to-city distance rows.
	LoadDistances(ctx context.Context) ([]DistanceRow, error)
}
