package main

import (
	"database/sql"
	"log"
	"order-quote-service/internal/adapters/repositories"
	"order-quote-service/internal/config"
	"order-quote-service/internal/platform/db"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool loads the catalog CSVs into a Postgres instance for ops and
// analytics use; the server itself runs against SQLite.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	paths := repositories.SeedPaths{
		CityStockCSV: config.Get("CITY_STOCK_CSV", "data/200_products_all_cities.csv"),
		ProductsCSV:  config.Get("PRODUCTS_CSV", "data/BigBasket.csv"),
		DistancesCSV: config.Get("DISTANCES_CSV", "data/india_city_distance_matrix.csv"),
	}

	if err := initAndSeed(db, paths); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, paths repositories.SeedPaths) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromCSV(db, repositories.DialectPostgres, paths); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
