package domain

import "sort"

// Represents one catalog product with per-city pricing and stock.
// Display metadata (name, brand, rating, ...) is opaque to the quoting
// logic. Items are loaded once at startup and never mutated afterwards,
// so they are safe to share across concurrent requests.
type Item struct {
	ItemID      int
	ProductName string
	Brand       string
	Type        string
	Rating      float64
	Description string

	PriceByCity map[string]float64
	StockByCity map[string]int

	// Cities holds every city that carries a price or stock entry,
	// sorted ascending. All ranking loops iterate this slice so that
	// equal-rank candidates resolve in a fixed, reproducible order.
	Cities []string
}

// NewItem builds an Item and freezes its deterministic city order.
func NewItem(id int, name string, prices map[string]float64, stock map[string]int) *Item {
	if prices == nil {
		prices = map[string]float64{}
	}
	if stock == nil {
		stock = map[string]int{}
	}

	seen := map[string]struct{}{}
	cities := make([]string, 0, len(prices))
	for c := range prices {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			cities = append(cities, c)
		}
	}
	for c := range stock {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			cities = append(cities, c)
		}
	}
	sort.Strings(cities)

	return &Item{
		ItemID:      id,
		ProductName: name,
		PriceByCity: prices,
		StockByCity: stock,
		Cities:      cities,
	}
}

// SellableFrom reports whether city is a usable source for this item.
// A city with price <= 0 or stock <= 0 never supplies goods.
func (it *Item) SellableFrom(city string) bool {
	return it.PriceByCity[city] > 0 && it.StockByCity[city] > 0
}

// LowestAvailablePrice returns the minimum positive unit price across
// all cities, or 0 when the item is unsellable everywhere.
func (it *Item) LowestAvailablePrice() float64 {
	lowest := 0.0
	for _, city := range it.Cities {
		p := it.PriceByCity[city]
		if p <= 0 {
			continue
		}
		if lowest == 0 || p < lowest {
			lowest = p
		}
	}
	return lowest
}

// PriceForCity returns the unit price quoted for city: the city's own
// positive price when present, otherwise the first positive price in
// deterministic city order, otherwise 0.
func (it *Item) PriceForCity(city string) float64 {
	if p := it.PriceByCity[city]; p > 0 {
		return p
	}
	for _, c := range it.Cities {
		if p := it.PriceByCity[c]; p > 0 {
			return p
		}
	}
	return 0
}

// Catalog is the read-only product snapshot the quoting engine runs
// against. Items are ordered by ascending ItemID.
type Catalog struct {
	Items []*Item

	byID map[int]*Item
}

func NewCatalog(items []*Item) *Catalog {
	sorted := make([]*Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ItemID < sorted[j].ItemID })

	byID := make(map[int]*Item, len(sorted))
	for _, it := range sorted {
		byID[it.ItemID] = it
	}

	return &Catalog{Items: sorted, byID: byID}
}

// ItemByID resolves an item; ok is false for ids not in the catalog.
func (c *Catalog) ItemByID(id int) (*Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}
