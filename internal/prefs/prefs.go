package prefs

import (
	"github.com/example/storefront/internal/infrastructure/kv"
)

// Persisted-store keys for presentation preferences. They live next to
// the cart in the same store but are never read by pricing.
const (
	DarkModeKey = "darkMode"
	WishlistKey = "wishlist"
)

// Prefs holds the persisted presentation preferences: the dark-mode flag
// and the wishlist of product ids, in toggle order.
type Prefs struct {
	kv       kv.Store
	darkMode bool
	wishlist []int
}

// New restores preferences from kvs, defaulting to light mode and an
// empty wishlist.
func New(kvs kv.Store) *Prefs {
	return &Prefs{
		kv:       kvs,
		darkMode: kv.Load(kvs, DarkModeKey, false),
		wishlist: kv.Load(kvs, WishlistKey, []int{}),
	}
}

func (p *Prefs) DarkMode() bool {
	return p.darkMode
}

func (p *Prefs) SetDarkMode(on bool) {
	p.darkMode = on
	_ = kv.Save(p.kv, DarkModeKey, p.darkMode)
}

// Wishlist returns a copy of the wishlisted product ids.
func (p *Prefs) Wishlist() []int {
	out := make([]int, len(p.wishlist))
	copy(out, p.wishlist)
	return out
}

// InWishlist reports whether productID is wishlisted.
func (p *Prefs) InWishlist(productID int) bool {
	for _, id := range p.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// ToggleWishlist adds productID to the wishlist or removes it when
// already present, reporting whether it is wishlisted afterwards.
func (p *Prefs) ToggleWishlist(productID int) bool {
	for i, id := range p.wishlist {
		if id == productID {
			p.wishlist = append(p.wishlist[:i], p.wishlist[i+1:]...)
			_ = kv.Save(p.kv, WishlistKey, p.wishlist)
			return false
		}
	}
	p.wishlist = append(p.wishlist, productID)
	_ = kv.Save(p.kv, WishlistKey, p.wishlist)
	return true
}
