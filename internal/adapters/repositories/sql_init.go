package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the catalog database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createItemsQuery := `
	CREATE TABLE IF NOT EXISTS items (
		item_id INTEGER PRIMARY KEY,
		product_name TEXT NOT NULL,
		brand TEXT NOT NULL,
		type TEXT NOT NULL,
		rating REAL NOT NULL,
		description TEXT NOT NULL
	);
	`

	createCityStockQuery := `
	CREATE TABLE IF NOT EXISTS city_stock (
		item_id INTEGER NOT NULL,
		city TEXT NOT NULL,
		unit_price REAL NOT NULL,
		units INTEGER NOT NULL,
		PRIMARY KEY (item_id, city)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		km REAL NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_city_stock_city
	ON city_stock(city, item_id);
	`

	statements := []string{
		createItemsQuery,
		createCityStockQuery,
		createDistancesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Dialect selects the SQL flavor for seed statements. The schema DDL is
// portable but upsert syntax and placeholders are not.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) itemUpsert() string {
	if d == DialectPostgres {
		return `
		INSERT INTO items (item_id, product_name, brand, type, rating, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (item_id) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			brand = EXCLUDED.brand,
			type = EXCLUDED.type,
			rating = EXCLUDED.rating,
			description = EXCLUDED.description;
		`
	}
	return `
	INSERT OR REPLACE INTO items (item_id, product_name, brand, type, rating, description)
	VALUES (?, ?, ?, ?, ?, ?);
	`
}

func (d Dialect) stockUpsert() string {
	if d == DialectPostgres {
		return `
		INSERT INTO city_stock (item_id, city, unit_price, units)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id, city) DO UPDATE SET
			unit_price = EXCLUDED.unit_price,
			units = EXCLUDED.units;
		`
	}
	return `
	INSERT OR REPLACE INTO city_stock (item_id, city, unit_price, units)
	VALUES (?, ?, ?, ?);
	`
}

func (d Dialect) distanceUpsert() string {
	if d == DialectPostgres {
		return `
		INSERT INTO distances (origin, destination, km)
		VALUES ($1, $2, $3)
		ON CONFLICT (origin, destination) DO UPDATE SET
			km = EXCLUDED.km;
		`
	}
	return `
	INSERT OR REPLACE INTO distances (origin, destination, km)
	VALUES (?, ?, ?);
	`
}

// Seed file locations for the three catalog CSVs.
type SeedPaths struct {
	CityStockCSV string
	ProductsCSV  string
	DistancesCSV string
}

// Populate the database from the catalog CSV files. Existing rows with
// the same keys are replaced, so reseeding is idempotent.
func SeedFromCSV(db *sql.DB, dialect Dialect, paths SeedPaths) error {
	stockRows, err := loadCityStockCSV(paths.CityStockCSV)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	meta, err := loadProductMetadataCSV(paths.ProductsCSV)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	distRows, err := loadDistanceMatrixCSV(paths.DistancesCSV)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	itemStmt, err := tx.Prepare(dialect.itemUpsert())
	if err != nil {
		return fmt.Errorf("seed catalog: prepare items insert: %w", err)
	}
	defer itemStmt.Close()

	stockStmt, err := tx.Prepare(dialect.stockUpsert())
	if err != nil {
		return fmt.Errorf("seed catalog: prepare city_stock insert: %w", err)
	}
	defer stockStmt.Close()

	seenItems := map[int]struct{}{}
	for _, row := range stockRows {
		if _, ok := seenItems[row.ItemID]; !ok {
			seenItems[row.ItemID] = struct{}{}

			m := withMetadataDefaults(meta[row.ProductName])
			if _, err := itemStmt.Exec(
				row.ItemID, row.ProductName, m.Brand, m.Type, m.Rating, m.Description,
			); err != nil {
				return fmt.Errorf("seed catalog: insert item_id=%d: %w", row.ItemID, err)
			}
		}

		if _, err := stockStmt.Exec(row.ItemID, row.City, row.UnitPrice, row.Units); err != nil {
			return fmt.Errorf("seed catalog: insert stock item_id=%d city=%q: %w", row.ItemID, row.City, err)
		}
	}

	distStmt, err := tx.Prepare(dialect.distanceUpsert())
	if err != nil {
		return fmt.Errorf("seed catalog: prepare distances insert: %w", err)
	}
	defer distStmt.Close()

	for _, row := range distRows {
		if _, err := distStmt.Exec(row.Origin, row.Destination, row.Km); err != nil {
			return fmt.Errorf("seed catalog: insert distance %q -> %q: %w", row.Origin, row.Destination, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
