package dto

type OrderItemRequest struct {
	ItemID   int     `json:"itemId"`
	Quantity float64 `json:"quantity"`
}

type QuoteRequest struct {
	DestinationCity string             `json:"destinationCity"`
	OrderItems      []OrderItemRequest `json:"orderItems"`
}

// One row of the fulfillment breakdown. SourceCity is null and
// IsFallback absent for OUT_OF_STOCK rows.
type FulfillmentDetailResponse struct {
	ItemID      int     `json:"itemId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	SourceCity  *string `json:"sourceCity"`
	UnitPrice   float64 `json:"unitPrice"`
	DistanceKm  float64 `json:"distanceKm"`
	IsFallback  *bool   `json:"isFallback,omitempty"`
	Status      string  `json:"status"`
}

type QuoteResponse struct {
	ItemsCost          int                         `json:"itemsCost"`
	DeliveryCharge     int                         `json:"deliveryCharge"`
	TotalCost          int                         `json:"totalCost"`
	TotalQuantity      int                         `json:"totalQuantity"`
	ArrivalMinutes     int                         `json:"arrivalMinutes"`
	DistanceKm         float64                     `json:"distanceKm"`
	FulfillmentDetails []FulfillmentDetailResponse `json:"fulfillmentDetails"`
}
