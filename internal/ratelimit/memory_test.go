package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AllowsUnderThreshold(t *testing.T) {
	store := NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, store.RecordFailure(ctx, "1.2.3.4"))
	}

	allowed, err := store.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryStore_DeniesAtThreshold(t *testing.T) {
	store := NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordFailure(ctx, "1.2.3.4"))
	}

	allowed, err := store.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed, "6th attempt after 5 failures must be denied")

	// Check does not increment: a different key is unaffected
	allowed, err = store.Check(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryStore_SuccessResetsCounter(t *testing.T) {
	store := NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordFailure(ctx, "1.2.3.4"))
	}
	require.NoError(t, store.RecordSuccess(ctx, "1.2.3.4"))

	allowed, err := store.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed, "counter must reset to zero after a success")
}

func TestMemoryStore_WindowExpiry(t *testing.T) {
	store := NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordFailure(ctx, "1.2.3.4"))
	}

	allowed, err := store.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Past the window the counter disappears
	current = current.Add(15*time.Minute + time.Second)
	allowed, err = store.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryStore_FailureRefreshesWindow(t *testing.T) {
	store := NewMemoryStore(5, 15*time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordFailure(ctx, "1.2.3.4"))
		current = current.Add(10 * time.Minute)
	}

	// 50 minutes have passed since the first failure, but each failure
	// refreshed the expiry, so the counter is still alive and at limit.
	allowed, err := store.Check(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
}
