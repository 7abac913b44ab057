package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAccumulatesQuantity(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 7, 2)
	require.NoError(t, err)

	c, err := s.Add(ctx, "42", 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, c[7], "second add must accumulate, not overwrite")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Add(ctx, "42", 7, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Add(ctx, "42", 7, -2)
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := s.Get(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, c, "rejected adds must not change state")
}

func TestRemoveAbsentItemIsNoop(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 7, 2)
	require.NoError(t, err)

	c, err := s.Remove(ctx, "42", 999)
	require.NoError(t, err)
	assert.Equal(t, Cart{7: 2}, c)
}

func TestRemoveDeletesWholeEntry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 7, 5)
	require.NoError(t, err)

	c, err := s.Remove(ctx, "42", 7)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 7, 2)
	require.NoError(t, err)
	_, err = s.Add(ctx, "42", 9, 1)
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx, "42"))

	c, err := s.Get(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestCartsAreSessionScoped(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 7, 2)
	require.NoError(t, err)

	c, err := s.Get(ctx, "43")
	require.NoError(t, err)
	assert.Empty(t, c, "another session must not see this cart")
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Add(ctx, "42", 7, 2)
	require.NoError(t, err)

	c, err := s.Get(ctx, "42")
	require.NoError(t, err)
	c[7] = 100

	again, err := s.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 2, again[7], "mutating a returned cart must not affect the store")
}
