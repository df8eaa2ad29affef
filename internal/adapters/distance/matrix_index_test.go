package distance

import (
	"math"
	"order-quote-service/internal/ports"
	"testing"
)

func TestMatrixIndexLookup(t *testing.T) {
	idx := NewMatrixIndex([]ports.DistanceRow{
		{Origin: "Delhi", Destination: "Mumbai", Km: 1400},
		{Origin: "Mumbai", Destination: "Delhi", Km: 1450}, // asymmetric on purpose
	})

	if km, ok := idx.Between("Delhi", "Mumbai"); !ok || km != 1400 {
		t.Fatalf("Between(Delhi,Mumbai) = %v,%v", km, ok)
	}
	if km, ok := idx.Between("Mumbai", "Delhi"); !ok || km != 1450 {
		t.Fatalf("Between(Mumbai,Delhi) = %v,%v", km, ok)
	}
	if _, ok := idx.Between("Delhi", "Chennai"); ok {
		t.Fatal("unknown pair must miss")
	}
}

func TestMatrixIndexDropsBadDistances(t *testing.T) {
	idx := NewMatrixIndex([]ports.DistanceRow{
		{Origin: "A", Destination: "B", Km: -5},
		{Origin: "A", Destination: "C", Km: math.NaN()},
		{Origin: "A", Destination: "D", Km: math.Inf(1)},
		{Origin: "A", Destination: "E", Km: 0},
	})

	for _, dest := range []string{"B", "C", "D"} {
		if _, ok := idx.Between("A", dest); ok {
			t.Fatalf("Between(A,%s) should miss", dest)
		}
	}
	// Zero is a legitimate stored distance, distinct from unknown.
	if km, ok := idx.Between("A", "E"); !ok || km != 0 {
		t.Fatalf("Between(A,E) = %v,%v", km, ok)
	}
}

func TestMatrixIndexCitiesSortedAndComplete(t *testing.T) {
	idx := NewMatrixIndex([]ports.DistanceRow{
		{Origin: "Pune", Destination: "Agra", Km: 1000},
		{Origin: "Delhi", Destination: "Pune", Km: -1}, // dropped row still names cities
	})

	want := []string{"Agra", "Delhi", "Pune"}
	got := idx.Cities()
	if len(got) != len(want) {
		t.Fatalf("cities = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cities = %v, want %v", got, want)
		}
	}
}
