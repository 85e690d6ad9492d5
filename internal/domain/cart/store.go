package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/example/storefront/internal/catalog"
	"github.com/example/storefront/internal/infrastructure/kv"
)

// StorageKey is the persisted-store key holding the cart line items.
const StorageKey = "cart"

// Quantity bounds per line item. A mutation that would drop a quantity
// to zero or below removes the line item; anything above MaxQuantity is
// clamped silently.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

var (
	ErrUnknownProduct  = errors.New("product not found in catalog")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrIndexOutOfRange = errors.New("line item index out of range")
)

// LineItem is one cart entry. Name and price are snapshots taken when the
// item was added; they do not track later catalog changes. Two line items
// never share the same (productId, color, size) variant key.
type LineItem struct {
	ID         string `json:"id"`
	ProductID  int    `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
	Image      string `json:"image,omitempty"`
}

func (li LineItem) sameVariant(productID int, color, size string) bool {
	return li.ProductID == productID && li.Color == color && li.Size == size
}

// Options selects a product variant when adding to the cart. Zero values
// resolve to the product's first listed color and size and a quantity of 1.
type Options struct {
	Color    string
	Size     string
	Quantity int
}

// Store owns the mutable cart state. All mutation goes through its API;
// every mutation is written back to the key-value store. Indices handed
// to UpdateQuantity and Remove refer to the current snapshot order and
// shift when items are removed.
type Store struct {
	catalog *catalog.Catalog
	kv      kv.Store
	items   []LineItem
}

// NewStore restores the cart persisted in kvs, or starts empty when
// nothing (or nothing readable) is stored.
func NewStore(c *catalog.Catalog, kvs kv.Store) *Store {
	items := kv.Load(kvs, StorageKey, []LineItem{})
	if items == nil {
		items = []LineItem{}
	}
	return &Store{catalog: c, kv: kvs, items: items}
}

// Add puts a product variant in the cart. An existing line item with the
// same (productId, color, size) absorbs the quantity instead of creating
// a duplicate; the result is clamped to MaxQuantity and any excess is
// dropped without error. Unknown products fail without mutating state.
func (s *Store) Add(productID int, opts Options) error {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if opts.Quantity < 0 {
		return ErrInvalidQuantity
	}

	quantity := opts.Quantity
	if quantity == 0 {
		quantity = 1
	}
	color := opts.Color
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}
	size := opts.Size
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}

	for i := range s.items {
		if s.items[i].sameVariant(productID, color, size) {
			s.items[i].Quantity = clamp(s.items[i].Quantity+quantity, MinQuantity, MaxQuantity)
			s.persist()
			return nil
		}
	}

	s.items = append(s.items, LineItem{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Color:      color,
		Size:       size,
		Quantity:   clamp(quantity, MinQuantity, MaxQuantity),
		Image:      product.Image,
	})
	s.persist()
	return nil
}

// UpdateQuantity overwrites the quantity of the line item at index,
// clamped to [MinQuantity, MaxQuantity]. A quantity of zero or below
// removes the line item.
func (s *Store) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	if quantity <= 0 {
		return s.Remove(index)
	}
	s.items[index].Quantity = clamp(quantity, MinQuantity, MaxQuantity)
	s.persist()
	return nil
}

// Remove deletes the line item at index. Later items shift down one
// position.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist()
	return nil
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = []LineItem{}
	s.persist()
}

// Snapshot returns a copy of the line items in insertion order. Mutating
// the returned slice does not affect the store.
func (s *Store) Snapshot() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of line items.
func (s *Store) Len() int {
	return len(s.items)
}

// ItemCount returns the total quantity across all line items.
func (s *Store) ItemCount() int {
	count := 0
	for _, li := range s.items {
		count += li.Quantity
	}
	return count
}

// persist writes the cart to the key-value store. Failures degrade
// silently: kv.Save already logs them and the session keeps working
// unsaved.
func (s *Store) persist() {
	_ = kv.Save(s.kv, StorageKey, s.items)
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
