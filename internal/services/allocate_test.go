package services

import (
	"order-quote-service/internal/adapters/distance"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/ports"
	"testing"
)

func indexOf(rows ...ports.DistanceRow) *distance.MatrixIndex {
	return distance.NewMatrixIndex(rows)
}

func TestAllocateDestinationFirst(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Delhi": 100, "Mumbai": 50},
		map[string]int{"Delhi": 5, "Mumbai": 50},
	)
	idx := indexOf(ports.DistanceRow{Origin: "Mumbai", Destination: "Delhi", Km: 10})

	portions := Allocate(item, 3, "Delhi", idx)

	if len(portions) != 1 {
		t.Fatalf("got %d portions, want 1", len(portions))
	}
	p := portions[0]
	// Local stock wins even though Mumbai is cheaper and close.
	if p.SourceCity != "Delhi" || p.Quantity != 3 || p.UnitPrice != 100 || p.DistanceKm != 0 {
		t.Fatalf("portion = %+v", p)
	}
	if p.Status != domain.StatusAvailable {
		t.Fatalf("status = %q", p.Status)
	}
}

func TestAllocateFallbackPriceTieBreak(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"X": 90, "Y": 80},
		map[string]int{"X": 10, "Y": 10},
	)
	idx := indexOf(
		ports.DistanceRow{Origin: "X", Destination: "Delhi", Km: 150},
		ports.DistanceRow{Origin: "Y", Destination: "Delhi", Km: 150},
	)

	portions := Allocate(item, 4, "Delhi", idx)

	if len(portions) != 1 {
		t.Fatalf("got %d portions, want 1", len(portions))
	}
	p := portions[0]
	if p.SourceCity != "Y" || p.Quantity != 4 || p.UnitPrice != 80 || p.DistanceKm != 150 {
		t.Fatalf("portion = %+v", p)
	}
}

func TestAllocateSplitWithShortfall(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Delhi": 100, "Z": 95},
		map[string]int{"Delhi": 2, "Z": 1},
	)
	idx := indexOf(ports.DistanceRow{Origin: "Z", Destination: "Delhi", Km: 50})

	portions := Allocate(item, 5, "Delhi", idx)

	if len(portions) != 3 {
		t.Fatalf("got %d portions, want 3", len(portions))
	}
	if p := portions[0]; p.SourceCity != "Delhi" || p.Quantity != 2 || p.UnitPrice != 100 || p.DistanceKm != 0 {
		t.Fatalf("destination portion = %+v", p)
	}
	if p := portions[1]; p.SourceCity != "Z" || p.Quantity != 1 || p.UnitPrice != 95 || p.DistanceKm != 50 {
		t.Fatalf("fallback portion = %+v", p)
	}
	p := portions[2]
	if p.Status != domain.StatusOutOfStock || p.Quantity != 2 {
		t.Fatalf("shortfall portion = %+v", p)
	}
	if p.SourceCity != "" || p.UnitPrice != 0 || p.DistanceKm != 0 {
		t.Fatalf("shortfall portion must be empty-sourced, zero-priced: %+v", p)
	}
}

// The allocator consults exactly one alternate city even when that
// city cannot cover the remainder and other sources still have stock.
func TestAllocateSingleFallbackBound(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Near": 100, "Far": 10},
		map[string]int{"Near": 1, "Far": 100},
	)
	idx := indexOf(
		ports.DistanceRow{Origin: "Near", Destination: "Delhi", Km: 10},
		ports.DistanceRow{Origin: "Far", Destination: "Delhi", Km: 1000},
	)

	portions := Allocate(item, 10, "Delhi", idx)

	if len(portions) != 2 {
		t.Fatalf("got %d portions, want 2", len(portions))
	}
	if p := portions[0]; p.SourceCity != "Near" || p.Quantity != 1 {
		t.Fatalf("fallback portion = %+v", p)
	}
	if p := portions[1]; p.Status != domain.StatusOutOfStock || p.Quantity != 9 {
		t.Fatalf("shortfall portion = %+v", p)
	}
}

func TestAllocateUnknownDistanceRanksLast(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Known": 500, "Mystery": 1},
		map[string]int{"Known": 10, "Mystery": 10},
	)
	// Mystery has no distance row at all; Known is far but measured.
	idx := indexOf(ports.DistanceRow{Origin: "Known", Destination: "Delhi", Km: 2000})

	portions := Allocate(item, 2, "Delhi", idx)

	if len(portions) != 1 || portions[0].SourceCity != "Known" {
		t.Fatalf("portions = %+v, want single portion from Known", portions)
	}
}

func TestAllocateUnknownDistanceSelectedReportsZero(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Mystery": 40},
		map[string]int{"Mystery": 10},
	)
	idx := indexOf()

	portions := Allocate(item, 2, "Delhi", idx)

	if len(portions) != 1 {
		t.Fatalf("got %d portions, want 1", len(portions))
	}
	p := portions[0]
	if p.SourceCity != "Mystery" || p.DistanceKm != 0 {
		t.Fatalf("portion = %+v, want Mystery at distance 0", p)
	}
}

func TestAllocateDistanceThenNameTieBreak(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Bravo": 50, "Alpha": 50},
		map[string]int{"Bravo": 10, "Alpha": 10},
	)
	idx := indexOf(
		ports.DistanceRow{Origin: "Alpha", Destination: "Delhi", Km: 100},
		ports.DistanceRow{Origin: "Bravo", Destination: "Delhi", Km: 100},
	)

	portions := Allocate(item, 1, "Delhi", idx)

	// Equal distance and price: the first city in ascending name order wins.
	if len(portions) != 1 || portions[0].SourceCity != "Alpha" {
		t.Fatalf("portions = %+v, want Alpha", portions)
	}
}

func TestAllocateConservation(t *testing.T) {
	item := domain.NewItem(1, "Rice",
		map[string]float64{"Delhi": 100, "Z": 95},
		map[string]int{"Delhi": 2, "Z": 1},
	)
	idx := indexOf(ports.DistanceRow{Origin: "Z", Destination: "Delhi", Km: 50})

	for _, q := range []int{1, 2, 3, 5, 50} {
		total := 0
		for _, p := range Allocate(item, q, "Delhi", idx) {
			if p.Quantity <= 0 {
				t.Fatalf("q=%d: portion quantity must be positive: %+v", q, p)
			}
			total += p.Quantity
		}
		if total != q {
			t.Fatalf("q=%d: portion quantities sum to %d", q, total)
		}
	}
}

func TestAllocateDegenerateInputs(t *testing.T) {
	item := domain.NewItem(1, "Rice", nil, nil)
	idx := indexOf()

	if got := Allocate(item, 0, "Delhi", idx); len(got) != 0 {
		t.Fatalf("zero quantity: got %+v", got)
	}
	if got := Allocate(nil, 3, "Delhi", idx); len(got) != 0 {
		t.Fatalf("nil item: got %+v", got)
	}

	// No stock anywhere: everything is an unmet remainder.
	portions := Allocate(item, 3, "Delhi", idx)
	if len(portions) != 1 || !portions[0].OutOfStock() || portions[0].Quantity != 3 {
		t.Fatalf("portions = %+v", portions)
	}
}
