package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/storefront/internal/app"
	"github.com/example/storefront/internal/catalog"
	"github.com/example/storefront/internal/checkout"
	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/infrastructure/kv"
	"github.com/example/storefront/internal/pricing"
	"github.com/example/storefront/internal/query"
)

// The storefront core has no network or command surface of its own; this
// program plays the role of the client UI, driving the session API the
// way the rendered pages do and printing what they would display.
func main() {
	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	store, err := openStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open data store")
	}
	defer store.Close()

	// The initial category filter arrives query-param style, once.
	session := app.New(cfg, store, os.Getenv("STOREFRONT_CATEGORY"))

	fmt.Println("== Catalog ==")
	for _, c := range catalog.Categories() {
		fmt.Printf("  [%s] %s\n", c.ID, c.Name)
	}

	session.SetCategory("Tech")
	session.SetSort(query.SortPriceLow)
	visible, more := session.VisibleProducts()
	fmt.Printf("\n== Tech, cheapest first (%d products) ==\n", session.ResultCount())
	for _, p := range visible {
		fmt.Printf("  #%d %-28s %s  %.1f stars (%d reviews)\n",
			p.ID, p.Name, pricing.FormatCents(p.PriceCents), p.Rating, p.ReviewCount)
	}
	if more {
		fmt.Println("  ... load more available")
	}

	if err := session.Cart.Add(3, cart.Options{Quantity: 2}); err != nil {
		logrus.WithError(err).Fatal("add to cart failed")
	}
	if err := session.Cart.Add(12, cart.Options{Color: "Sand"}); err != nil {
		logrus.WithError(err).Fatal("add to cart failed")
	}

	fmt.Println("\n== Cart ==")
	for _, li := range session.Cart.Snapshot() {
		fmt.Printf("  %s (%s / %s) x%d @ %s\n",
			li.Name, li.Color, li.Size, li.Quantity, pricing.FormatCents(li.PriceCents))
	}
	totals := session.Totals()
	fmt.Printf("  subtotal %s  tax %s  shipping %s  total %s\n",
		pricing.FormatCents(totals.SubtotalCents),
		pricing.FormatCents(totals.TaxCents),
		pricing.FormatCents(totals.ShippingCents),
		pricing.FormatCents(totals.TotalCents))

	form := []checkout.Field{
		{ID: "name", Value: "Ada Lovelace", Required: true, Type: checkout.FieldTypeText},
		{ID: "email", Value: "ada@example.com", Required: true, Type: checkout.FieldTypeEmail},
		{ID: "card-number", Value: "4111 1111 1111 1111", Required: true, Type: checkout.FieldTypeText},
	}
	result, err := session.SubmitCheckout(form)
	switch {
	case err != nil:
		fmt.Println("\ncheckout busy, try again later")
	case !result.Valid:
		fmt.Println("\ncheckout rejected:")
		for id, msg := range result.Errors {
			fmt.Printf("  %s: %s\n", id, msg)
		}
	default:
		fmt.Println("\ncheckout submitted, processing...")
		time.Sleep(cfg.ProcessingDelay + 50*time.Millisecond)
		fmt.Printf("order confirmed, cart now holds %d items\n", session.Cart.ItemCount())
	}
}

func openStore(cfg config.Config) (kv.Store, error) {
	if cfg.StorePath == "" {
		return kv.NewMemoryStore(), nil
	}
	return kv.OpenBolt(cfg.StorePath)
}
