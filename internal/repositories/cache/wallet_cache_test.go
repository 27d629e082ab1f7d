package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/repositories/cache"
)

func newTestCache(t *testing.T) (*cache.RedisWalletCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewRedisWalletCache(client), mr
}

func TestWalletCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	w := domain.Wallet{
		WalletID:      "w-1",
		UserID:        "u-1",
		Balance:       decimal.RequireFromString("15.00"),
		TotalCredited: decimal.RequireFromString("20.00"),
		TotalDebited:  decimal.RequireFromString("5.00"),
	}
	c.SetWallet(ctx, w)

	got, ok := c.GetWallet(ctx, "w-1")
	require.True(t, ok)
	assert.Equal(t, "u-1", got.UserID)
	assert.True(t, got.Balance.Equal(w.Balance))
}

func TestWalletCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok := c.GetWallet(context.Background(), "missing")
	assert.False(t, ok)
}

func TestWalletCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetWallet(ctx, domain.Wallet{WalletID: "w-1", UserID: "u-1"})
	c.Invalidate(ctx, "w-1")

	_, ok := c.GetWallet(ctx, "w-1")
	assert.False(t, ok)
}

func TestWalletCacheCorruptEntryDegradesToMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("wallet:w-1", "{not json"))

	_, ok := c.GetWallet(ctx, "w-1")
	assert.False(t, ok)
	// The corrupt entry was dropped.
	assert.False(t, mr.Exists("wallet:w-1"))
}
