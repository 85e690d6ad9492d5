package catalog

import "math"

// Product is a catalog entry. Catalog data is static reference data
// supplied at startup; products are never mutated.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Badges      []string `json:"badges,omitempty"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Category is a filterable product grouping. The "all" category matches
// every product.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// NoUpperBound marks a price band with no upper limit.
const NoUpperBound = int64(math.MaxInt64)

// PriceRange is a named price band used for filtering. Bounds are
// inclusive on both ends.
type PriceRange struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	MinCents int64  `json:"min"`
	MaxCents int64  `json:"max"`
}

// Contains reports whether priceCents falls within the band.
func (r PriceRange) Contains(priceCents int64) bool {
	return priceCents >= r.MinCents && priceCents <= r.MaxCents
}

// Catalog is the read-only product list with id-based lookup.
type Catalog struct {
	products []Product
	byID     map[int]Product
	featured []int
}

// New builds a catalog over the given products, preserving their order.
func New(products []Product, featuredIDs []int) *Catalog {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: products,
		byID:     byID,
		featured: featuredIDs,
	}
}

// Default returns the built-in demo catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultFeaturedIDs)
}

// Products returns the catalog in its original (featured) order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByID looks up a product by id.
func (c *Catalog) FindByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Featured returns the homepage featured set, in configured order.
// Unknown ids are skipped.
func (c *Catalog) Featured() []Product {
	out := make([]Product, 0, len(c.featured))
	for _, id := range c.featured {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the filterable categories, "all" first.
func Categories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// PriceRanges returns the filterable price bands, "all" first.
func PriceRanges() []PriceRange {
	out := make([]PriceRange, len(defaultPriceRanges))
	copy(out, defaultPriceRanges)
	return out
}

// FindPriceRange looks up a band by id.
func FindPriceRange(id string) (PriceRange, bool) {
	for _, r := range defaultPriceRanges {
		if r.ID == id {
			return r, true
		}
	}
	return PriceRange{}, false
}
