package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/infrastructure/kv"
)

func TestPrefs_Defaults(t *testing.T) {
	p := New(kv.NewMemoryStore())

	assert.False(t, p.DarkMode())
	assert.Empty(t, p.Wishlist())
}

func TestPrefs_DarkModePersists(t *testing.T) {
	kvs := kv.NewMemoryStore()

	New(kvs).SetDarkMode(true)

	assert.True(t, New(kvs).DarkMode())
}

func TestPrefs_ToggleWishlist(t *testing.T) {
	p := New(kv.NewMemoryStore())

	assert.True(t, p.ToggleWishlist(3))
	assert.True(t, p.ToggleWishlist(8))
	assert.Equal(t, []int{3, 8}, p.Wishlist())
	assert.True(t, p.InWishlist(3))

	assert.False(t, p.ToggleWishlist(3), "second toggle removes")
	assert.Equal(t, []int{8}, p.Wishlist())
	assert.False(t, p.InWishlist(3))
}

func TestPrefs_WishlistPersists(t *testing.T) {
	kvs := kv.NewMemoryStore()
	p := New(kvs)
	p.ToggleWishlist(5)
	p.ToggleWishlist(1)

	restored := New(kvs)

	require.Equal(t, []int{5, 1}, restored.Wishlist(), "toggle order survives restore")
}

func TestPrefs_WishlistCopyOnRead(t *testing.T) {
	p := New(kv.NewMemoryStore())
	p.ToggleWishlist(2)

	list := p.Wishlist()
	list[0] = 99

	assert.Equal(t, []int{2}, p.Wishlist())
}
