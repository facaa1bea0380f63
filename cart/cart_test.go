package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesQuantities(t *testing.T) {
	c := New("c1")
	require.NoError(t, c.Add(Item{ProductID: "p1", Name: "Ring", Price: 100, Quantity: 1}))
	require.NoError(t, c.Add(Item{ProductID: "p2", Name: "Necklace", Price: 250, Quantity: 1}))
	require.NoError(t, c.Add(Item{ProductID: "p1", Name: "Ring (gold)", Price: 110, Quantity: 2}))

	require.Len(t, c.Items, 2)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, "Ring (gold)", c.Items[0].Name)
	assert.Equal(t, 4, c.Count())
	assert.InDelta(t, 580.0, c.Total(), 1e-9)
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	c := New("c1")
	assert.ErrorIs(t, c.Add(Item{ProductID: "p1", Quantity: 0}), ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestCart_UpdateDeletesOnNonPositive(t *testing.T) {
	c := New("c1")
	require.NoError(t, c.Add(Item{ProductID: "p1", Price: 10, Quantity: 1}))
	require.NoError(t, c.Add(Item{ProductID: "p2", Price: 20, Quantity: 1}))

	assert.True(t, c.Update("p1", 5))
	assert.Equal(t, 5, c.Items[0].Quantity)

	assert.True(t, c.Update("p1", -1))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)

	assert.False(t, c.Update("missing", 3))
	assert.True(t, c.Remove("p2"))
	assert.True(t, c.IsEmpty())
}

func TestCart_ClearAndView(t *testing.T) {
	c := New("c1")
	require.NoError(t, c.Add(Item{ProductID: "p1", Price: 12.5, Quantity: 2}))

	v := c.View()
	assert.Equal(t, "c1", v.ID)
	assert.Equal(t, 2, v.Count)
	assert.InDelta(t, 25.0, v.Total, 1e-9)

	c.Clear()
	assert.Empty(t, c.View().Items)
	assert.NotNil(t, c.View().Items)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.Add(Item{ProductID: "p1", Price: 10, Quantity: 1}))
	require.NoError(t, s.Save(ctx, c))

	// mutating the loaded copy does not touch the stored cart
	loaded, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	loaded.Items[0].Quantity = 99
	again, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)

	again.Clear()
	require.NoError(t, s.Save(ctx, again))
	_, ok := s.carts["abc"]
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cart:abc", key("abc"))
}
