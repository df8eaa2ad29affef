package services

import "order-quote-service/internal/domain"

// One catalog row as shown to clients before any order is placed.
type ItemPreview struct {
	ItemID       int
	ProductName  string
	Description  string
	Rating       float64
	Brand        string
	Type         string
	DefaultPrice float64
	PriceForCity *float64
	PriceByCity  map[string]float64
	StockByCity  map[string]int
}

// PreviewCatalog builds the client-facing item listing. DefaultPrice
// is the lowest positive price across all cities, 0 when the item is
// unsellable everywhere. When city is non-empty each preview also
// carries the price the item would quote for a buyer in that city,
// falling back to another stocked city's price if the city has none.
func PreviewCatalog(catalog *domain.Catalog, city string) []ItemPreview {
	previews := make([]ItemPreview, 0, len(catalog.Items))
	for _, it := range catalog.Items {
		p := ItemPreview{
			ItemID:       it.ItemID,
			ProductName:  it.ProductName,
			Description:  it.Description,
			Rating:       it.Rating,
			Brand:        it.Brand,
			Type:         it.Type,
			DefaultPrice: it.LowestAvailablePrice(),
			PriceByCity:  it.PriceByCity,
			StockByCity:  it.StockByCity,
		}
		if city != "" {
			price := it.PriceForCity(city)
			p.PriceForCity = &price
		}
		previews = append(previews, p)
	}
	return previews
}
