package handlers

import (
	"net/http"
	"strings"

	"order-quote-service/internal/api/dto"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/ports"
	"order-quote-service/internal/services"
)

// OptionsHandler serves the data a client needs before quoting:
// the city list, the item previews and the raw distance matrix.
type OptionsHandler struct {
	Catalog   *domain.Catalog
	Distances ports.DistanceIndex
}

func (h *OptionsHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// An optional ?city= narrows each preview down to the price a buyer
	// in that city would see.
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	previews := services.PreviewCatalog(h.Catalog, city)
	items := make([]dto.ItemPreviewResponse, 0, len(previews))
	for _, p := range previews {
		items = append(items, dto.ItemPreviewResponse{
			ItemID:           p.ItemID,
			ProductName:      p.ProductName,
			Description:      p.Description,
			Rating:           p.Rating,
			Brand:            p.Brand,
			Type:             p.Type,
			DefaultPrice:     p.DefaultPrice,
			PriceForCity:     p.PriceForCity,
			PricesByCity:     p.PriceByCity,
			QuantitiesByCity: p.StockByCity,
		})
	}

	cities := h.Distances.Cities()
	matrix := make(map[string]map[string]float64, len(cities))
	for _, origin := range cities {
		row := make(map[string]float64, len(cities))
		for _, dest := range cities {
			if km, ok := h.Distances.Between(origin, dest); ok {
				row[dest] = km
			}
		}
		matrix[origin] = row
	}

	res := dto.OptionsResponse{
		Cities:         cities,
		Items:          items,
		DistanceMatrix: matrix,
	}

	writeJSON(w, r, http.StatusOK, res)
}
