package repositories

import (
	"encoding/csv"
	"fmt"
	"math"
	"order-quote-service/internal/ports"
	"os"
	"strconv"
	"strings"
)

type cityStockRow struct {
	ItemID      int
	ProductName string
	City        string
	UnitPrice   float64
	Units       int
}

type productMetadata struct {
	Brand       string
	Type        string
	Rating      float64
	Description string
}

// parseNumber parses a numeric CSV field leniently: whitespace is
// trimmed and anything non-numeric (or non-finite) becomes 0.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func readCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv %q: parse: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("read csv %q: file has no header row", path)
	}

	header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	return header, rows[1:], nil
}

// columnIndex finds the first header cell containing every needle
// (case-insensitive). The source spreadsheets are inconsistent about
// exact column titles, e.g. "Cost per unit" vs "Cost per unit ".
func columnIndex(header []string, needles ...string) int {
	for i, h := range header {
		lower := strings.ToLower(h)
		all := true
		for _, n := range needles {
			if !strings.Contains(lower, strings.ToLower(n)) {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// loadCityStockCSV parses per-city product rows. Rows missing an item
// number, product name or city are skipped, not errors.
func loadCityStockCSV(path string) ([]cityStockRow, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idxItem := columnIndex(header, "item", "number")
	idxProduct := columnIndex(header, "product")
	idxCity := columnIndex(header, "city")
	idxPrice := columnIndex(header, "cost", "unit")
	idxUnits := columnIndex(header, "units")
	if idxItem < 0 || idxProduct < 0 || idxCity < 0 {
		return nil, fmt.Errorf("load city stock %q: missing item/product/city columns", path)
	}

	rows := make([]cityStockRow, 0, len(records))
	for _, rec := range records {
		itemID := int(parseNumber(field(rec, idxItem)))
		product := field(rec, idxProduct)
		city := field(rec, idxCity)
		if itemID == 0 || product == "" || city == "" {
			continue
		}

		rows = append(rows, cityStockRow{
			ItemID:      itemID,
			ProductName: product,
			City:        city,
			UnitPrice:   parseNumber(field(rec, idxPrice)),
			Units:       int(parseNumber(field(rec, idxUnits))),
		})
	}

	return rows, nil
}

// loadProductMetadataCSV parses display metadata keyed by product name.
// Unknown products fall back to placeholder metadata at seed time.
func loadProductMetadataCSV(path string) (map[string]productMetadata, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idxProduct := columnIndex(header, "product")
	idxBrand := columnIndex(header, "brand")
	idxType := columnIndex(header, "type")
	idxRating := columnIndex(header, "rating")
	idxDesc := columnIndex(header, "description")
	if idxProduct < 0 {
		return nil, fmt.Errorf("load product metadata %q: missing product column", path)
	}

	meta := make(map[string]productMetadata, len(records))
	for _, rec := range records {
		product := field(rec, idxProduct)
		if product == "" {
			continue
		}

		m := productMetadata{
			Brand:       field(rec, idxBrand),
			Type:        field(rec, idxType),
			Rating:      parseNumber(field(rec, idxRating)),
			Description: field(rec, idxDesc),
		}
		meta[product] = withMetadataDefaults(m)
	}

	return meta, nil
}

func withMetadataDefaults(m productMetadata) productMetadata {
	if m.Brand == "" {
		m.Brand = "Unknown"
	}
	if m.Type == "" {
		m.Type = "Unknown"
	}
	if m.Description == "" {
		m.Description = "No description available."
	}
	return m
}

// loadDistanceMatrixCSV parses a square-ish matrix: the first column
// holds the origin city, every remaining header cell a destination.
func loadDistanceMatrixCSV(path string) ([]ports.DistanceRow, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := []ports.DistanceRow{}
	for _, rec := range records {
		origin := field(rec, 0)
		if origin == "" {
			continue
		}

		for col := 1; col < len(header) && col < len(rec); col++ {
			dest := header[col]
			if dest == "" {
				continue
			}
			rows = append(rows, ports.DistanceRow{
				Origin:      origin,
				Destination: dest,
				Km:          parseNumber(rec[col]),
			})
		}
	}

	return rows, nil
}
