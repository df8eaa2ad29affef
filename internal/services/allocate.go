package services

import (
	"math"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/ports"
)

// Allocate decides which city (or cities) supplies one requested line.
//
// The policy is deliberately bounded: local stock first, then exactly
// one fallback city, then an unmet remainder. It does not search all
// sources to cover a shortfall. The design prioritizes determinism and
// predictable pricing over optimality.
//
// The returned portions always sum to requestedQuantity. A
// requestedQuantity <= 0 yields no portions. The function is pure and
// never fails; degenerate inputs resolve to OUT_OF_STOCK portions.
func Allocate(
	item *domain.Item,
	requestedQuantity int,
	destinationCity string,
	distances ports.DistanceIndex,
) []domain.FulfillmentPortion {
	if item == nil || requestedQuantity <= 0 {
		return nil
	}

	portions := []domain.FulfillmentPortion{}
	remaining := requestedQuantity

	// Local stock is always preferred regardless of price: it travels
	// zero km and therefore carries no surcharge.
	if item.SellableFrom(destinationCity) {
		take := min(remaining, item.StockByCity[destinationCity])
		portions = append(portions, domain.FulfillmentPortion{
			SourceCity: destinationCity,
			Quantity:   take,
			UnitPrice:  item.PriceByCity[destinationCity],
			DistanceKm: 0,
			Status:     domain.StatusAvailable,
		})
		remaining -= take
	}

	if remaining > 0 {
		if best, ok := nearestSource(item, destinationCity, distances); ok {
			take := min(remaining, item.StockByCity[best.city])
			portions = append(portions, domain.FulfillmentPortion{
				SourceCity: best.city,
				Quantity:   take,
				UnitPrice:  item.PriceByCity[best.city],
				DistanceKm: best.reportKm,
				Status:     domain.StatusAvailable,
			})
			remaining -= take
		}
	}

	// Whatever one fallback could not cover stays unmet.
	if remaining > 0 {
		portions = append(portions, domain.FulfillmentPortion{
			Quantity: remaining,
			Status:   domain.StatusOutOfStock,
		})
	}

	return portions
}

type sourceCandidate struct {
	city string
	// rankKm orders candidates; an unknown distance ranks behind every
	// known one instead of being treated as zero.
	rankKm float64
	// reportKm is what the emitted portion carries: 0 for an unknown
	// distance, since no measured leg exists to surcharge.
	reportKm float64
	price    float64
}

// nearestSource picks the single best non-destination source for item.
//
// Candidates are ranked by ascending distance to the destination, then
// ascending unit price. Iteration follows item.Cities so equal-rank
// candidates resolve to the first city in ascending name order.
func nearestSource(
	item *domain.Item,
	destinationCity string,
	distances ports.DistanceIndex,
) (sourceCandidate, bool) {
	var best sourceCandidate
	found := false

	for _, city := range item.Cities {
		if city == destinationCity || !item.SellableFrom(city) {
			continue
		}

		cand := sourceCandidate{
			city:   city,
			rankKm: math.Inf(1),
			price:  item.PriceByCity[city],
		}
		if km, ok := distances.Between(city, destinationCity); ok && km >= 0 {
			cand.rankKm = km
			cand.reportKm = km
		}

		// Tie-breaker keeps selection deterministic when distances are equal.
		if !found || cand.rankKm < best.rankKm ||
			(cand.rankKm == best.rankKm && cand.price < best.price) {
			best = cand
			found = true
		}
	}

	return best, found
}
