package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/catalog"
	"github.com/example/storefront/internal/infrastructure/kv"
)

func newTestStore() (*Store, kv.Store) {
	kvs := kv.NewMemoryStore()
	return NewStore(catalog.Default(), kvs), kvs
}

// ============================================
// Add Tests
// ============================================

func TestStore_Add_Defaults(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Add(1, Options{}))

	items := s.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, "Minimalist Leather Tote", items[0].Name)
	assert.Equal(t, int64(18900), items[0].PriceCents)
	assert.Equal(t, "Black", items[0].Color, "first listed color is the default")
	assert.Equal(t, "One Size", items[0].Size, "first listed size is the default")
	assert.Equal(t, 1, items[0].Quantity)
	assert.NotEmpty(t, items[0].ID)
}

func TestStore_Add_MergesSameVariant(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Add(2, Options{Color: "Navy", Size: "M", Quantity: 2}))
	require.NoError(t, s.Add(2, Options{Color: "Navy", Size: "M", Quantity: 3}))

	items := s.Snapshot()
	require.Len(t, items, 1, "same variant must merge, not duplicate")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestStore_Add_DifferentVariantsStaySeparate(t *testing.T) {
	s, _ := newTestStore()

	require.NoError(t, s.Add(2, Options{Color: "Navy", Size: "M"}))
	require.NoError(t, s.Add(2, Options{Color: "Navy", Size: "L"}))
	require.NoError(t, s.Add(2, Options{Color: "Cream", Size: "M"}))

	assert.Equal(t, 3, s.Len())
}

func TestStore_Add_SnapshotsPriceAtAddTime(t *testing.T) {
	products := []catalog.Product{{
		ID: 1, Name: "Widget", Category: "Tech", PriceCents: 1000,
		Colors: []string{"Red"}, Sizes: []string{"One Size"},
	}}
	kvs := kv.NewMemoryStore()
	s := NewStore(catalog.New(products, nil), kvs)

	require.NoError(t, s.Add(1, Options{}))
	products[0].PriceCents = 99999

	// A catalog price change after the add must not leak into the cart.
	items := s.Snapshot()
	assert.Equal(t, int64(1000), items[0].PriceCents)
}

func TestStore_Add_UnknownProduct(t *testing.T) {
	s, _ := newTestStore()

	err := s.Add(999, Options{})

	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.Equal(t, 0, s.Len(), "failed add must not mutate state")
}

func TestStore_Add_NegativeQuantity(t *testing.T) {
	s, _ := newTestStore()

	err := s.Add(1, Options{Quantity: -1})

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Add_ClampsAtPolicyMax(t *testing.T) {
	tests := []struct {
		name       string
		quantities []int
		expected   int
	}{
		{"single oversized add", []int{150}, 99},
		{"merge overflows silently", []int{60, 60}, 99},
		{"merge just below max", []int{60, 39}, 99},
		{"no clamp needed", []int{60, 38}, 98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore()
			for _, q := range tt.quantities {
				require.NoError(t, s.Add(5, Options{Quantity: q}))
			}
			items := s.Snapshot()
			require.Len(t, items, 1)
			assert.Equal(t, tt.expected, items[0].Quantity)
		})
	}
}

// ============================================
// UpdateQuantity Tests
// ============================================

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		newQuantity int
		wantQty     int
		wantRemoved bool
	}{
		{"normal update", 7, 7, false},
		{"clamped above max", 150, 99, false},
		{"exactly max", 99, 99, false},
		{"zero removes", 0, 0, true},
		{"negative removes", -5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore()
			require.NoError(t, s.Add(1, Options{Quantity: 2}))

			require.NoError(t, s.UpdateQuantity(0, tt.newQuantity))

			if tt.wantRemoved {
				assert.Equal(t, 0, s.Len())
			} else {
				items := s.Snapshot()
				require.Len(t, items, 1)
				assert.Equal(t, tt.wantQty, items[0].Quantity)
			}
		})
	}
}

func TestStore_UpdateQuantity_OutOfRange(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Add(1, Options{}))

	assert.ErrorIs(t, s.UpdateQuantity(1, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.UpdateQuantity(-1, 5), ErrIndexOutOfRange)
}

// ============================================
// Remove / Clear Tests
// ============================================

func TestStore_Remove_ShiftsLaterItems(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Add(1, Options{}))
	require.NoError(t, s.Add(2, Options{}))
	require.NoError(t, s.Add(3, Options{}))

	require.NoError(t, s.Remove(1))

	items := s.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[1].ProductID)
}

func TestStore_Remove_OutOfRange(t *testing.T) {
	s, _ := newTestStore()

	assert.ErrorIs(t, s.Remove(0), ErrIndexOutOfRange)
}

func TestStore_Clear(t *testing.T) {
	s, kvs := newTestStore()
	require.NoError(t, s.Add(1, Options{}))
	require.NoError(t, s.Add(2, Options{}))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, kv.Load(kvs, StorageKey, []LineItem{}))
}

// ============================================
// Snapshot / ItemCount Tests
// ============================================

func TestStore_Snapshot_CopyOnRead(t *testing.T) {
	s, _ := newTestStore()
	require.NoError(t, s.Add(1, Options{Quantity: 2}))

	snap := s.Snapshot()
	snap[0].Quantity = 42

	items := s.Snapshot()
	assert.Equal(t, 2, items[0].Quantity, "mutating a snapshot must not touch the store")
}

func TestStore_ItemCount(t *testing.T) {
	s, _ := newTestStore()
	assert.Equal(t, 0, s.ItemCount())

	require.NoError(t, s.Add(1, Options{Quantity: 2}))
	require.NoError(t, s.Add(2, Options{Quantity: 3}))

	assert.Equal(t, 5, s.ItemCount())
}

// ============================================
// Persistence Tests
// ============================================

func TestStore_RoundTrip(t *testing.T) {
	kvs := kv.NewMemoryStore()
	s := NewStore(catalog.Default(), kvs)
	require.NoError(t, s.Add(2, Options{Color: "Navy", Size: "M", Quantity: 2}))
	require.NoError(t, s.Add(5, Options{Quantity: 1}))

	restored := NewStore(catalog.Default(), kvs)

	assert.Equal(t, s.Snapshot(), restored.Snapshot())
}

func TestStore_RestoresEmptyOnCorruptedState(t *testing.T) {
	kvs := kv.NewMemoryStore()
	require.NoError(t, kvs.Set(StorageKey, []byte("{not json")))

	s := NewStore(catalog.Default(), kvs)

	assert.Equal(t, 0, s.Len())
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("quota exceeded") }
func (failingStore) Set(string, []byte) error         { return errors.New("quota exceeded") }
func (failingStore) Delete(string) error              { return errors.New("quota exceeded") }
func (failingStore) Close() error                     { return nil }

func TestStore_KeepsWorkingWhenPersistenceFails(t *testing.T) {
	s := NewStore(catalog.Default(), failingStore{})

	require.NoError(t, s.Add(1, Options{}))
	require.NoError(t, s.UpdateQuantity(0, 3))

	items := s.Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}
