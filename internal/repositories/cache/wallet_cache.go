// Package cache provides the optional read-side wallet snapshot cache.
// Reads served from here never block behind in-flight transfers; the
// transfer coordinator invalidates the snapshot on every commit.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	portsrepo "github.com/ecosetu/ewallet_backend/internal/core/ports/repositories"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
)

const (
	walletKeyPrefix = "wallet:"
	snapshotTTL     = 30 * time.Second
)

// RedisWalletCache caches wallet snapshots in Redis. Failures degrade to
// cache misses; the primary store stays authoritative.
type RedisWalletCache struct {
	client *redis.Client
}

// NewRedisWalletCache creates a snapshot cache on the given client.
func NewRedisWalletCache(client *redis.Client) *RedisWalletCache {
	return &RedisWalletCache{client: client}
}

var _ portsrepo.WalletSnapshotCache = (*RedisWalletCache)(nil)

// GetWallet returns the cached snapshot, if present and decodable.
func (c *RedisWalletCache) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, bool) {
	payload, err := c.client.Get(ctx, walletKeyPrefix+walletID).Bytes()
	if err != nil {
		if err != redis.Nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Wallet cache read failed",
				slog.String("wallet_id", walletID), slog.String("error", err.Error()))
		}
		return nil, false
	}
	var w domain.Wallet
	if err := json.Unmarshal(payload, &w); err != nil {
		// Stale or corrupt entry; drop it and fall through to the store.
		c.Invalidate(ctx, walletID)
		return nil, false
	}
	return &w, true
}

// SetWallet stores a snapshot with a short TTL.
func (c *RedisWalletCache) SetWallet(ctx context.Context, wallet domain.Wallet) {
	payload, err := json.Marshal(wallet)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, walletKeyPrefix+wallet.WalletID, payload, snapshotTTL).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Wallet cache write failed",
			slog.String("wallet_id", wallet.WalletID), slog.String("error", err.Error()))
	}
}

// Invalidate drops the snapshot for a wallet.
func (c *RedisWalletCache) Invalidate(ctx context.Context, walletID string) {
	if err := c.client.Del(ctx, walletKeyPrefix+walletID).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Wallet cache invalidation failed",
			slog.String("wallet_id", walletID), slog.String("error", err.Error()))
	}
}
