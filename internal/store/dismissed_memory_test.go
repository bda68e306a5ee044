package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDismissalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDismissalStore()

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	want := map[string]struct{}{"bill:b1:2026-06-04": {}, "warranty:w2:2026-06-11": {}}
	require.NoError(t, s.Set(ctx, want))

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Set replaces the whole set.
	require.NoError(t, s.Set(ctx, map[string]struct{}{}))
	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryDismissalStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDismissalStore()
	require.NoError(t, s.Set(ctx, map[string]struct{}{"a": {}}))

	got, _ := s.Get(ctx)
	got["b"] = struct{}{}

	again, _ := s.Get(ctx)
	assert.Len(t, again, 1)
}
