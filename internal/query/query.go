package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/storefront/internal/catalog"
)

// SortKey selects the catalog ordering. Featured keeps the catalog's own
// order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// Criteria filters the catalog. The zero value of Category and PriceRange
// is treated like "all"; Search matches a case-insensitive substring of
// the product name or description.
type Criteria struct {
	Category   string
	PriceRange string
	MinRating  float64
	Search     string
}

// DefaultCriteria matches every product.
func DefaultCriteria() Criteria {
	return Criteria{Category: "all", PriceRange: "all"}
}

func (c Criteria) matches(p catalog.Product) bool {
	if c.Category != "" && c.Category != "all" && p.Category != c.Category {
		return false
	}
	if c.PriceRange != "" && c.PriceRange != "all" {
		if band, ok := catalog.FindPriceRange(c.PriceRange); ok && !band.Contains(p.PriceCents) {
			return false
		}
	}
	if p.Rating < c.MinRating {
		return false
	}
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}

var nameCollator = collate.New(language.AmericanEnglish)

// FilterAndSort returns the products matching crit, ordered by key. The
// sort is stable; ties keep catalog order. The catalog itself is never
// mutated.
func FilterAndSort(c *catalog.Catalog, crit Criteria, key SortKey) []catalog.Product {
	filtered := make([]catalog.Product, 0, c.Len())
	for _, p := range c.Products() {
		if crit.matches(p) {
			filtered = append(filtered, p)
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceCents < filtered[j].PriceCents
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceCents > filtered[j].PriceCents
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return nameCollator.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	return filtered
}

// DefaultPageSize is the initial window size, grown by the same amount on
// each "load more".
const DefaultPageSize = 12

// Window is the pagination step layered over a query result. It only
// truncates; the caller re-runs the query and re-applies the window after
// every filter change.
type Window struct {
	size int
	step int
}

// NewWindow builds a window with the given step, falling back to
// DefaultPageSize when step is not positive.
func NewWindow(step int) *Window {
	if step <= 0 {
		step = DefaultPageSize
	}
	return &Window{size: step, step: step}
}

// Grow widens the window by one step.
func (w *Window) Grow() {
	w.size += w.step
}

// Reset shrinks the window back to one step.
func (w *Window) Reset() {
	w.size = w.step
}

// Size returns the current window size.
func (w *Window) Size() int {
	return w.size
}

// Apply truncates products to the window and reports whether more
// results remain beyond it.
func (w *Window) Apply(products []catalog.Product) ([]catalog.Product, bool) {
	if len(products) <= w.size {
		return products, false
	}
	return products[:w.size], true
}
