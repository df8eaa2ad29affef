package domain

// Fulfillment status of a single portion.
const (
	StatusAvailable  = "AVAILABLE"
	StatusOutOfStock = "OUT_OF_STOCK"
)

// One requested order line: a catalog item and a desired quantity.
// Quantity arrives as a raw JSON number and is clamped by the
// aggregator before use.
type RequestedLine struct {
	ItemID   int
	Quantity float64
}

// A slice of one requested line's quantity attributed to a single
// source city, or to "unmet" when no source could supply it.
// An OUT_OF_STOCK portion always has an empty SourceCity, zero
// UnitPrice and zero DistanceKm.
type FulfillmentPortion struct {
	SourceCity string
	Quantity   int
	UnitPrice  float64
	DistanceKm float64
	Status     string
}

// OutOfStock reports whether this portion records an unmet remainder.
func (p FulfillmentPortion) OutOfStock() bool { return p.Status == StatusOutOfStock }

// One row of an order's fulfillment breakdown, carrying the item
// identity alongside its portion.
type FulfillmentDetail struct {
	ItemID      int
	ProductName string
	Portion     FulfillmentPortion
}

// Represents the priced and timed outcome of one quote computation.
// An OrderSummary is the output of the aggregator and is built fresh
// per request; it has no identity beyond the computation producing it.
type OrderSummary struct {
	ItemsCost      int
	DeliveryCharge int
	TotalCost      int
	TotalQuantity  int
	ArrivalMinutes int
	MaxDistanceKm  float64
	Details        []FulfillmentDetail
}
