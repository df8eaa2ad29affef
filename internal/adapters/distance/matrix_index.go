package distance

import (
	"math"
	"order-quote-service/internal/ports"
	"sort"
)

// In-memory DistanceIndex over a seeded city-to-city matrix.
// The matrix may be asymmetric and incomplete; lookups never invent a
// value for a missing pair. Built once at startup, read-only afterwards,
// safe for concurrent use.
type MatrixIndex struct {
	m      map[string]float64
	cities []string
}

// NewMatrixIndex builds an index from distance rows. Rows with a
// negative or non-finite distance are dropped rather than stored.
func NewMatrixIndex(rows []ports.DistanceRow) *MatrixIndex {
	m := make(map[string]float64, len(rows))
	seen := map[string]struct{}{}
	cities := []string{}

	add := func(city string) {
		if _, ok := seen[city]; !ok && city != "" {
			seen[city] = struct{}{}
			cities = append(cities, city)
		}
	}

	for _, r := range rows {
		add(r.Origin)
		add(r.Destination)

		if math.IsNaN(r.Km) || math.IsInf(r.Km, 0) || r.Km < 0 {
			continue
		}
		m[r.Origin+"|"+r.Destination] = r.Km
	}
	sort.Strings(cities)

	return &MatrixIndex{m: m, cities: cities}
}

func (x *MatrixIndex) Between(origin, destination string) (float64, bool) {
	km, ok := x.m[origin+"|"+destination]
	return km, ok
}

// Cities returns every city mentioned by any row, sorted ascending.
func (x *MatrixIndex) Cities() []string {
	out := make([]string, len(x.cities))
	copy(out, x.cities)
	return out
}
