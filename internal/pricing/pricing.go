package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/example/storefront/internal/domain/cart"
)

// Config holds the order-total knobs. The defaults reproduce the store
// policy: 8% flat tax, free shipping at $100, $10 flat rate below it.
type Config struct {
	TaxRate                    float64
	FreeShippingThresholdCents int64
	FlatShippingCents          int64
}

// DefaultConfig returns the standard store policy.
func DefaultConfig() Config {
	return Config{
		TaxRate:                    0.08,
		FreeShippingThresholdCents: 100_00,
		FlatShippingCents:          10_00,
	}
}

// Totals is a pure projection of a cart snapshot. It is recomputed on
// demand and never stored.
type Totals struct {
	SubtotalCents int64 `json:"subtotal"`
	TaxCents      int64 `json:"tax"`
	ShippingCents int64 `json:"shipping"`
	TotalCents    int64 `json:"total"`
	ItemCount     int   `json:"itemCount"`
}

// ComputeTotals derives order totals from the given line items. All
// arithmetic is integer cents; the tax multiplication is the single
// rounding step, half-up to a cent.
func ComputeTotals(items []cart.LineItem, cfg Config) Totals {
	var subtotal int64
	count := 0
	for _, li := range items {
		subtotal += li.PriceCents * int64(li.Quantity)
		count += li.Quantity
	}

	tax := int64(math.Round(float64(subtotal) * cfg.TaxRate))

	var shipping int64
	if subtotal < cfg.FreeShippingThresholdCents {
		shipping = cfg.FlatShippingCents
	}

	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		ShippingCents: shipping,
		TotalCents:    subtotal + tax + shipping,
		ItemCount:     count,
	}
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders a cent amount as a US dollar string, e.g. 123456
// becomes "$1,234.56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	amount := number.Decimal(float64(cents)/100,
		number.MinFractionDigits(2), number.MaxFractionDigits(2))
	return printer.Sprintf("%s$%v", sign, amount)
}
