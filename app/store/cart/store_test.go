package cart

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/driver/localstore"
)

func newTestStore(t *testing.T) (*Store, *localstore.MemoryStore) {
	t.Helper()
	kv := localstore.NewMemoryStore()
	return NewStore(kv, slog.Default()), kv
}

func TestStore_AddItem_MergesByProduct(t *testing.T) {
	store, _ := newTestStore(t)

	// cart empty -> add p1 -> add p2 -> add p1 again
	require.NoError(t, store.AddItem("p1", "Guitar", domain.NewMoneyFromCents(50000)))
	require.NoError(t, store.AddItem("p2", "Pick", domain.NewMoneyFromCents(200)))
	require.NoError(t, store.AddItem("p1", "Guitar", domain.NewMoneyFromCents(50000)))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "p2", items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)

	assert.Equal(t, 3, store.TotalItemCount())
	assert.Equal(t, "1002.00", store.TotalPrice().String())
}

func TestStore_RemoveItem(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem("p1", "Guitar", 50000))

	require.NoError(t, store.RemoveItem("p1"))
	assert.Empty(t, store.Items())

	// Removing an absent product is a no-op, not an error
	require.NoError(t, store.RemoveItem("p1"))
	require.NoError(t, store.RemoveItem("never-added"))
	assert.Empty(t, store.Items())
}

func TestStore_SetQuantity(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.AddItem("p1", "Guitar", 50000))

	require.NoError(t, store.SetQuantity("p1", 4))
	assert.Equal(t, 4, store.TotalItemCount())

	// Zero quantity removes the line
	require.NoError(t, store.SetQuantity("p1", 0))
	assert.Empty(t, store.Items())

	// Setting quantity on an absent line is a no-op
	require.NoError(t, store.SetQuantity("p1", 3))
	assert.Empty(t, store.Items())
}

func TestStore_Clear(t *testing.T) {
	store, kv := newTestStore(t)

	require.NoError(t, store.AddItem("p1", "Guitar", 50000))
	require.NoError(t, store.Clear())

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItemCount())
	assert.Equal(t, int64(0), store.TotalPrice().Cents())

	// The empty state is persisted, not just in memory
	raw, ok, err := kv.Get(linesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestStore_PersistsAcrossReload(t *testing.T) {
	kv := localstore.NewMemoryStore()
	store := NewStore(kv, slog.Default())

	require.NoError(t, store.AddItem("p1", "Guitar", domain.NewMoneyFromCents(50000)))
	require.NoError(t, store.AddItem("p2", "Pick", domain.NewMoneyFromCents(200)))
	require.NoError(t, store.SetQuantity("p2", 5))

	// A fresh store over the same storage reproduces the identical
	// collection, without touching the network.
	reloaded := NewStore(kv, slog.Default())
	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.TotalItemCount(), reloaded.TotalItemCount())
	assert.Equal(t, store.TotalPrice(), reloaded.TotalPrice())
}

func TestStore_CorruptedPayloadYieldsEmptyCart(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not JSON", payload: "{{{"},
		{name: "wrong shape", payload: `{"cart":"p1"}`},
		{name: "zero quantity line", payload: `[{"product_id":"p1","name":"Guitar","unit_price":500,"quantity":0}]`},
		{name: "line without product id", payload: `[{"name":"Guitar","unit_price":500,"quantity":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := localstore.NewMemoryStore()
			require.NoError(t, kv.Set(linesKey, []byte(tt.payload)))

			store := NewStore(kv, slog.Default())

			assert.Empty(t, store.Items())
			assert.Equal(t, 0, store.TotalItemCount())
		})
	}
}

func TestStore_AggregatesMatchLineSums(t *testing.T) {
	store, _ := newTestStore(t)

	ops := []func() error{
		func() error { return store.AddItem("a", "A", domain.NewMoneyFromCents(10)) },
		func() error { return store.AddItem("b", "B", domain.NewMoneyFromCents(1)) },
		func() error { return store.AddItem("a", "A", domain.NewMoneyFromCents(10)) },
		func() error { return store.SetQuantity("b", 70) },
		func() error { return store.AddItem("c", "C", domain.NewMoneyFromCents(29)) },
		func() error { return store.SetQuantity("c", 10) },
		func() error { return store.RemoveItem("missing") },
	}
	for _, op := range ops {
		require.NoError(t, op())
	}

	items := store.Items()
	wantCount := 0
	var wantTotal domain.Money
	for _, l := range items {
		wantCount += l.Quantity
		wantTotal = wantTotal.Add(l.UnitPrice.MulQuantity(l.Quantity))
	}

	assert.Equal(t, wantCount, store.TotalItemCount())
	assert.Equal(t, wantTotal, store.TotalPrice())
	assert.Equal(t, int64(20+70+290), store.TotalPrice().Cents())
}
