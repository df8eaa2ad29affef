package ports

// Contract for looking up the distance between two cities.
type DistanceIndex interface {
	// Between returns the distance in km from origin to destination.
	// ok is false when the pair is unknown; callers must treat an
	// unknown distance as worse than any known one, never as zero.
	// The matrix may be asymmetric.
	Between(origin string, destination string) (km float64, ok bool)

	// Cities returns every city the index knows, sorted ascending.
	Cities() []string
}
