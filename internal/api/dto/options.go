package dto

type ItemPreviewResponse struct {
	ItemID           int                `json:"itemId"`
	ProductName      string             `json:"productName"`
	Description      string             `json:"description"`
	Rating           float64            `json:"rating"`
	Brand            string             `json:"brand"`
	Type             string             `json:"type"`
	DefaultPrice     float64            `json:"defaultPrice"`
	PriceForCity     *float64           `json:"priceForCity,omitempty"`
	PricesByCity     map[string]float64 `json:"pricesByCity"`
	QuantitiesByCity map[string]int     `json:"quantitiesByCity"`
}

type OptionsResponse struct {
	Cities         []string                      `json:"cities"`
	Items          []ItemPreviewResponse         `json:"items"`
	DistanceMatrix map[string]map[string]float64 `json:"distanceMatrix"`
}
