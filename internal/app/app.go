package app

import (
	"github.com/sirupsen/logrus"

	"github.com/example/storefront/internal/catalog"
	"github.com/example/storefront/internal/checkout"
	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/infrastructure/kv"
	"github.com/example/storefront/internal/prefs"
	"github.com/example/storefront/internal/pricing"
	"github.com/example/storefront/internal/query"
)

// App is one storefront session: the catalog, the restored cart and
// preferences, and the current browse state (filter, sort, pagination
// window). The UI layer is a pure consumer of this API and re-renders
// from its return values.
type App struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Store
	Prefs    *prefs.Prefs
	Checkout *checkout.Processor

	pricingCfg pricing.Config
	window     *query.Window
	criteria   query.Criteria
	sortKey    query.SortKey
}

// New wires a session over the given store. initialCategory is the
// query-param-style filter supplied once at page load; empty means all
// products.
func New(cfg config.Config, kvs kv.Store, initialCategory string) *App {
	criteria := query.DefaultCriteria()
	if initialCategory != "" {
		criteria.Category = initialCategory
	}

	cat := catalog.Default()
	a := &App{
		Catalog:  cat,
		Cart:     cart.NewStore(cat, kvs),
		Prefs:    prefs.New(kvs),
		Checkout: checkout.NewProcessor(cfg.ProcessingDelay),
		pricingCfg: pricing.Config{
			TaxRate:                    cfg.TaxRate,
			FreeShippingThresholdCents: cfg.FreeShippingThresholdCents,
			FlatShippingCents:          cfg.FlatShippingCents,
		},
		window:   query.NewWindow(cfg.PageSize),
		criteria: criteria,
		sortKey:  query.SortFeatured,
	}
	logrus.WithFields(logrus.Fields{
		"products": a.Catalog.Len(),
		"cart":     a.Cart.Len(),
		"category": criteria.Category,
	}).Info("session restored")
	return a
}

// Criteria returns the current filter state.
func (a *App) Criteria() query.Criteria {
	return a.criteria
}

// Sort returns the current sort key.
func (a *App) Sort() query.SortKey {
	return a.sortKey
}

// Filter changes reset the pagination window; sort and search changes
// keep it, matching the browse flow of the demo store.

func (a *App) SetCategory(category string) {
	a.criteria.Category = category
	a.window.Reset()
}

func (a *App) SetPriceRange(bandID string) {
	a.criteria.PriceRange = bandID
	a.window.Reset()
}

func (a *App) SetMinRating(rating float64) {
	a.criteria.MinRating = rating
	a.window.Reset()
}

func (a *App) SetSearch(text string) {
	a.criteria.Search = text
}

func (a *App) SetSort(key query.SortKey) {
	a.sortKey = key
}

// LoadMore widens the visible window by one page.
func (a *App) LoadMore() {
	a.window.Grow()
}

// VisibleProducts runs the current query and truncates it to the
// window, reporting whether more results remain.
func (a *App) VisibleProducts() ([]catalog.Product, bool) {
	filtered := query.FilterAndSort(a.Catalog, a.criteria, a.sortKey)
	return a.window.Apply(filtered)
}

// ResultCount returns the total match count before windowing, the
// source of the "N products" label.
func (a *App) ResultCount() int {
	return len(query.FilterAndSort(a.Catalog, a.criteria, a.sortKey))
}

// Totals recomputes order totals from the current cart.
func (a *App) Totals() pricing.Totals {
	return pricing.ComputeTotals(a.Cart.Snapshot(), a.pricingCfg)
}

// SubmitCheckout validates the form and, when it passes, starts the
// simulated processing step; the cart is cleared on completion.
// A submission while another is in flight fails with
// checkout.ErrProcessingInProgress and changes nothing.
func (a *App) SubmitCheckout(fields []checkout.Field) (checkout.FormResult, error) {
	result := checkout.ValidateForm(fields)
	if !result.Valid {
		return result, nil
	}
	err := a.Checkout.Submit(func() {
		a.Cart.Clear()
		logrus.Info("checkout complete, cart cleared")
	})
	return result, err
}
