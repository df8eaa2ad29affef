package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/platform/obs"
	"order-quote-service/internal/ports"
)

// SQL-backed implementation of the CatalogRepository port. Works
// against both the SQLite server store and the Postgres ops store.
type SQLCatalogRepository struct{ DB *sql.DB }

func NewSQLCatalogRepository(db *sql.DB) *SQLCatalogRepository {
	return &SQLCatalogRepository{DB: db}
}

// LoadCatalog materializes the full item snapshot: one Item per items
// row, with price and stock maps joined in from city_stock.
func (s *SQLCatalogRepository) LoadCatalog(ctx context.Context) (_ *domain.Catalog, err error) {
	defer obs.Time(ctx, "catalog.repo.LoadCatalog")(&err)

	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	itemsQuery := `
	SELECT item_id, product_name, brand, type, rating, description
	FROM items
	ORDER BY item_id;
	`
	rows, err := s.DB.QueryContext(ctx, itemsQuery)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query items table: %w", err)
	}
	defer rows.Close()

	type itemRow struct {
		prices map[string]float64
		stock  map[string]int
		item   *domain.Item
	}

	order := make([]int, 0, 64)
	byID := make(map[int]*itemRow, 64)

	for rows.Next() {
		it := &domain.Item{}
		if err := rows.Scan(
			&it.ItemID, &it.ProductName, &it.Brand, &it.Type, &it.Rating, &it.Description,
		); err != nil {
			return nil, fmt.Errorf("load catalog: scan item row: %w", err)
		}

		order = append(order, it.ItemID)
		byID[it.ItemID] = &itemRow{
			prices: map[string]float64{},
			stock:  map[string]int{},
			item:   it,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: items iteration: %w", err)
	}

	stockQuery := `
	SELECT item_id, city, unit_price, units
	FROM city_stock
	ORDER BY item_id, city;
	`
	stockRows, err := s.DB.QueryContext(ctx, stockQuery)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query city_stock table: %w", err)
	}
	defer stockRows.Close()

	for stockRows.Next() {
		var (
			id    int
			city  string
			price float64
			units int
		)
		if err := stockRows.Scan(&id, &city, &price, &units); err != nil {
			return nil, fmt.Errorf("load catalog: scan city_stock row: %w", err)
		}

		row, ok := byID[id]
		if !ok {
			// Stock for an item with no items row is orphaned data; skip it.
			continue
		}
		row.prices[city] = price
		row.stock[city] = units
	}
	if err := stockRows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: city_stock iteration: %w", err)
	}

	items := make([]*domain.Item, 0, len(order))
	for _, id := range order {
		row := byID[id]
		it := domain.NewItem(id, row.item.ProductName, row.prices, row.stock)
		it.Brand = row.item.Brand
		it.Type = row.item.Type
		it.Rating = row.item.Rating
		it.Description = row.item.Description
		items = append(items, it)
	}

	return domain.NewCatalog(items), nil
}

// LoadDistances returns every stored distance row.
func (s *SQLCatalogRepository) LoadDistances(ctx context.Context) (_ []ports.DistanceRow, err error) {
	defer obs.Time(ctx, "catalog.repo.LoadDistances")(&err)

	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	query := `
	SELECT origin, destination, km
	FROM distances
	ORDER BY origin, destination;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load distances: query distances table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.DistanceRow, 0, 256)
	for rows.Next() {
		var r ports.DistanceRow
		if err := rows.Scan(&r.Origin, &r.Destination, &r.Km); err != nil {
			return nil, fmt.Errorf("load distances: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load distances: row iteration: %w", err)
	}

	return out, nil
}
