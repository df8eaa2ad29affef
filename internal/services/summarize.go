package services

import (
	"math"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/ports"
)

const (
	// Delivery surcharge: 10 currency units per started 100 km, applied
	// per non-local portion.
	surchargePerSlab = 10.0
	slabKm           = 100.0

	// Arrival estimate terms: fixed handling, per-km travel factor on
	// the longest leg, and per-detail-row handling overhead.
	baseMinutes      = 30.0
	minutesPerKm     = 1.2
	minutesPerDetail = 3.0
)

// Summarize runs the allocator over every requested line and folds the
// resulting portions into a single priced, timed OrderSummary.
//
// Lines referencing unknown item ids are dropped, as are lines whose
// quantity clamps to zero. No input makes Summarize fail; a malformed
// or empty request yields a zero-valued summary.
func Summarize(
	lines []domain.RequestedLine,
	destinationCity string,
	catalog *domain.Catalog,
	distances ports.DistanceIndex,
) domain.OrderSummary {
	var (
		itemsCost      float64
		deliveryCharge float64
		totalQuantity  int
		maxDistanceKm  float64
	)
	details := []domain.FulfillmentDetail{}

	for _, line := range lines {
		item, ok := catalog.ItemByID(line.ItemID)
		if !ok {
			continue
		}

		quantity := clampQuantity(line.Quantity)
		if quantity == 0 {
			continue
		}

		portions := Allocate(item, quantity, destinationCity, distances)

		lineHasStock := false
		lineMaxKm := 0.0

		for _, p := range portions {
			details = append(details, domain.FulfillmentDetail{
				ItemID:      item.ItemID,
				ProductName: item.ProductName,
				Portion:     p,
			})

			if p.OutOfStock() {
				continue
			}

			lineHasStock = true
			itemsCost += p.UnitPrice * float64(p.Quantity)

			// Surcharge accrues per portion: a line split across local
			// and fallback stock only pays for the fallback leg.
			if p.DistanceKm > 0 {
				deliveryCharge += surchargePerSlab * math.Ceil(p.DistanceKm/slabKm)
			}
			lineMaxKm = math.Max(lineMaxKm, p.DistanceKm)
		}

		// A line that obtained any stock counts its full requested
		// quantity, shortfall included, and folds its longest leg into
		// the order-wide max.
		if lineHasStock {
			totalQuantity += quantity
			maxDistanceKm = math.Max(maxDistanceKm, lineMaxKm)
		}
	}

	arrival := baseMinutes + maxDistanceKm*minutesPerKm + float64(len(details))*minutesPerDetail

	// ItemsCost and DeliveryCharge round independently and TotalCost is
	// the sum of the two rounded values. Collapsing this into a single
	// rounding of the raw sum produces off-by-one mismatches on
	// fractional prices.
	roundedItems := int(math.Round(itemsCost))
	roundedDelivery := int(math.Round(deliveryCharge))

	return domain.OrderSummary{
		ItemsCost:      roundedItems,
		DeliveryCharge: roundedDelivery,
		TotalCost:      roundedItems + roundedDelivery,
		TotalQuantity:  totalQuantity,
		ArrivalMinutes: int(math.Round(arrival)),
		MaxDistanceKm:  maxDistanceKm,
		Details:        details,
	}
}

// clampQuantity coerces a raw requested quantity to a usable integer:
// NaN, infinities and negatives become 0, fractions truncate toward zero.
func clampQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return 0
	}
	return int(q)
}
