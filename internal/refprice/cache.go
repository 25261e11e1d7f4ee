package refprice

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cache stores the latest reference price per metal in memory.
type Cache struct {
	mu     sync.RWMutex
	prices map[string]float64
}

func NewCache() *Cache {
	return &Cache{prices: make(map[string]float64)}
}

func (c *Cache) Set(metal string, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[metal] = price
}

func (c *Cache) Get(metal string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.prices[metal]
	return p, ok
}

// StartUpdater periodically refreshes reference prices for the given
// metals until ctx is cancelled. A failed fetch keeps the last cached
// value.
func StartUpdater(
	ctx context.Context,
	feed Feed,
	cache *Cache,
	metals []string,
	interval time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	refreshOnce(ctx, feed, cache, metals, log)

	for {
		select {
		case <-ticker.C:
			refreshOnce(ctx, feed, cache, metals, log)
		case <-ctx.Done():
			return
		}
	}
}

func refreshOnce(ctx context.Context, feed Feed, cache *Cache, metals []string, log *zap.Logger) {
	for _, m := range metals {
		price, err := feed.GetSpot(ctx, m)
		if err != nil {
			log.Warn("reference price update failed", zap.String("metal", m), zap.Error(err))
			continue
		}
		cache.Set(m, price)
		log.Info("reference price updated", zap.String("metal", m), zap.Float64("price_per_kilo", price))
	}
}
