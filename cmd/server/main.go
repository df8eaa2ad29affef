package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"order-quote-service/internal/adapters/cache"
	"order-quote-service/internal/adapters/distance"
	"order-quote-service/internal/adapters/repositories"
	"order-quote-service/internal/api"
	"order-quote-service/internal/config"
	"order-quote-service/internal/ports"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It seeds the SQLite catalog store from the CSV sources, materializes
// the immutable quoting snapshot, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")

	seedPaths := repositories.SeedPaths{
		CityStockCSV: config.Get("CITY_STOCK_CSV", "data/200_products_all_cities.csv"),
		ProductsCSV:  config.Get("PRODUCTS_CSV", "data/BigBasket.csv"),
		DistancesCSV: config.Get("DISTANCES_CSV", "data/india_city_distance_matrix.csv"),
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and reseed from the CSV sources on startup so the
	// store always reflects the files on disk for local runs.
	if err := initAndSeed(db, seedPaths); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLCatalogRepository(db)

	ctx := context.Background()
	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		log.Fatal(err)
	}
	distRows, err := repo.LoadDistances(ctx)
	if err != nil {
		log.Fatal(err)
	}
	index := distance.NewMatrixIndex(distRows)

	log.Printf("Catalog loaded items=%d cities=%d", len(catalog.Items), len(index.Cities()))

	// Quote caching is opt-in; quoting stays fully functional without Redis.
	var quoteCache ports.QuoteCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping failed addr=%s err=%v", addr, err)
		}
		quoteCache = cache.NewRedisQuoteCache(client, 5*time.Minute)
		log.Printf("Quote cache enabled addr=%s", addr)
	}

	router := api.NewRouter(catalog, index, quoteCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, paths repositories.SeedPaths) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromCSV(db, repositories.DialectSQLite, paths); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
