package cache

import (
	"context"
	"errors"
	"fmt"
	"order-quote-service/internal/domain"
	"order-quote-service/internal/platform/obs"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for computed quote responses. Quoting is a pure
// function of an immutable snapshot, so identical requests may be
// served from cache for the configured TTL without a staleness risk.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisQuoteCache(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisQuoteCache{client: client, ttl: ttl}
}

// Get returns the cached response body for the request, ok=false on a miss.
func (c *RedisQuoteCache) Get(
	ctx context.Context,
	destinationCity string,
	lines []domain.RequestedLine,
) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "quote.cache.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("quote cache: client is nil")
	}

	key := QuoteKey(destinationCity, lines)
	body, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("quote cache: get %q: %w", key, err)
	}

	return body, true, nil
}

// Put stores a response body for the request for the cache TTL.
func (c *RedisQuoteCache) Put(
	ctx context.Context,
	destinationCity string,
	lines []domain.RequestedLine,
	body []byte,
) (err error) {
	defer obs.Time(ctx, "quote.cache.Put")(&err)

	if c.client == nil {
		return errors.New("quote cache: client is nil")
	}

	key := QuoteKey(destinationCity, lines)
	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("quote cache: set %q: %w", key, err)
	}

	return nil
}

// QuoteKey derives a stable cache key for one quote request. Lines are
// sorted by item id and quantity so that reordered but otherwise
// identical requests hash to the same key.
func QuoteKey(destinationCity string, lines []domain.RequestedLine) string {
	sorted := make([]domain.RequestedLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ItemID != sorted[j].ItemID {
			return sorted[i].ItemID < sorted[j].ItemID
		}
		return sorted[i].Quantity < sorted[j].Quantity
	})

	var b strings.Builder
	b.WriteString(destinationCity)
	for _, l := range sorted {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(l.ItemID))
		b.WriteByte('x')
		b.WriteString(strconv.FormatFloat(l.Quantity, 'g', -1, 64))
	}

	return "quote:" + strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}
