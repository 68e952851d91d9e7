// Package cache provides the namespaced read-through/write-through cache
// layer backing the availability resolver.
//
// The backing store is Redis. Every operation degrades to a no-op when the
// store is unreachable: Get reports a miss, Set reports false, and no
// backend error ever escapes this layer. Callers must treat the cache as an
// optimization, never a dependency.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/domainforge/domainforge/internal/metrics"
)

const (
	defaultDialTimeout = 2 * time.Second
	defaultOpTimeout   = 500 * time.Millisecond

	// connectBaseBackoff is doubled per failed attempt, capped by
	// connectMaxBackoff. After maxConnectAttempts failures the client runs
	// permanently degraded until process restart.
	connectBaseBackoff = 250 * time.Millisecond
	connectMaxBackoff  = 10 * time.Second
	maxConnectAttempts = 5
)

// Config controls the Redis connection.
type Config struct {
	URL          string        `mapstructure:"url"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Client is the namespaced cache layer. The zero value is not usable;
// construct with New. A nil *Client is valid and behaves as a permanent
// cache miss.
type Client struct {
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu        sync.Mutex
	rdb       *redis.Client
	attempts  int
	degraded  bool
	nextRetry time.Time
}

// Stats reports cache health and per-namespace entry counts.
type Stats struct {
	Connected bool                `json:"connected"`
	Degraded  bool                `json:"degraded"`
	Keys      map[Namespace]int64 `json:"keys,omitempty"`
}

// New creates a cache client. The connection is established lazily on first
// use so a missing Redis never blocks startup.
func New(cfg Config, logger *zap.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	return &Client{cfg: cfg, logger: logger, metrics: m}
}

// conn returns the shared Redis client, connecting lazily. Concurrent
// callers share one in-flight connection attempt. Returns nil when the
// layer is degraded or between backoff windows.
func (c *Client) conn(ctx context.Context) *redis.Client {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rdb != nil {
		return c.rdb
	}
	if c.degraded || c.cfg.URL == "" {
		return nil
	}
	now := time.Now()
	if now.Before(c.nextRetry) {
		return nil
	}

	opts, err := redis.ParseURL(c.cfg.URL)
	if err != nil {
		c.logger.Warn("invalid redis url, cache disabled", zap.Error(err))
		c.degraded = true
		return nil
	}
	opts.DialTimeout = c.cfg.DialTimeout
	if c.cfg.ReadTimeout > 0 {
		opts.ReadTimeout = c.cfg.ReadTimeout
	}
	if c.cfg.WriteTimeout > 0 {
		opts.WriteTimeout = c.cfg.WriteTimeout
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, c.cfg.DialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		c.attempts++
		if c.attempts >= maxConnectAttempts {
			c.degraded = true
			c.logger.Warn("cache unreachable, running in pass-through mode",
				zap.Int("attempts", c.attempts),
				zap.Error(err))
			return nil
		}
		backoff := connectBaseBackoff << (c.attempts - 1)
		if backoff > connectMaxBackoff {
			backoff = connectMaxBackoff
		}
		c.nextRetry = now.Add(backoff)
		c.logger.Debug("cache connect failed",
			zap.Int("attempt", c.attempts),
			zap.Duration("retry_in", backoff),
			zap.Error(err))
		return nil
	}

	c.attempts = 0
	c.rdb = rdb
	c.logger.Debug("cache connected", zap.String("url", c.cfg.URL))
	return c.rdb
}

// fail records a backend error and drops the connection so the next call
// re-runs the lazy connect path.
func (c *Client) fail(op string, err error) {
	c.metrics.RecordCacheError()
	c.logger.Debug("cache operation failed", zap.String("op", op), zap.Error(err))

	c.mu.Lock()
	if c.rdb != nil {
		_ = c.rdb.Close()
		c.rdb = nil
	}
	c.mu.Unlock()
}

// Get fetches a raw value. The second return is false on miss, expiry,
// or any backend failure.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	rdb := c.conn(ctx)
	if rdb == nil {
		return "", false
	}

	value, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.fail("get", err)
		return "", false
	}
	return value, true
}

// Set stores a raw value with a TTL. Returns false on any backend failure.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	rdb := c.conn(ctx)
	if rdb == nil {
		return false
	}

	if err := rdb.SetEx(ctx, key, value, ttl).Err(); err != nil {
		c.fail("set", err)
		return false
	}
	return true
}

// ClearNamespace deletes every entry in a namespace and returns the number
// of removed keys.
func (c *Client) ClearNamespace(ctx context.Context, ns Namespace) (int, error) {
	rdb := c.conn(ctx)
	if rdb == nil {
		return 0, nil
	}

	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, ns)
	keys, err := rdb.Keys(ctx, pattern).Result()
	if err != nil {
		c.fail("keys", err)
		return 0, nil
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		c.fail("del", err)
		return 0, nil
	}
	return len(keys), nil
}

// ClearAll flushes the whole cache database.
func (c *Client) ClearAll(ctx context.Context) error {
	rdb := c.conn(ctx)
	if rdb == nil {
		return nil
	}
	if err := rdb.FlushDB(ctx).Err(); err != nil {
		c.fail("flushdb", err)
	}
	return nil
}

// Stats reports connection state and per-namespace entry counts.
func (c *Client) Stats(ctx context.Context) Stats {
	if c == nil {
		return Stats{}
	}
	rdb := c.conn(ctx)

	c.mu.Lock()
	stats := Stats{Connected: c.rdb != nil, Degraded: c.degraded}
	c.mu.Unlock()

	if rdb == nil {
		return stats
	}

	stats.Keys = make(map[Namespace]int64, len(Namespaces()))
	for _, ns := range Namespaces() {
		keys, err := rdb.Keys(ctx, fmt.Sprintf("%s:%s:*", keyPrefix, ns)).Result()
		if err != nil {
			c.fail("keys", err)
			return stats
		}
		stats.Keys[ns] = int64(len(keys))
	}
	return stats
}

// Close releases the underlying connection if one was established.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rdb == nil {
		return nil
	}
	err := c.rdb.Close()
	c.rdb = nil
	return err
}
