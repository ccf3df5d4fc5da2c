package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"robotaxi-economics/repository"
)

const cacheHeader = "X-Cache"

// responseCache memoizes encoded responses by the canonical encoding of the
// decoded request. Cache failures are logged and never fail the request.
type responseCache struct {
	repo repository.CacheRepository
	ttl  time.Duration
	log  *logrus.Logger
}

func newResponseCache(repo repository.CacheRepository, ttl time.Duration, log *logrus.Logger) *responseCache {
	return &responseCache{repo: repo, ttl: ttl, log: log}
}

// fetch returns the cached body for req, or runs compute and stores its
// encoded result. compute errors are returned untouched and not cached.
func (c *responseCache) fetch(
	ctx context.Context,
	namespace string,
	req any,
	compute func() (any, error),
) ([]byte, bool, error) {

	var key string
	if c != nil && c.repo != nil {
		canonical, err := json.Marshal(req)
		if err == nil {
			key = repository.CacheKey(namespace, canonical)
			if cached, ok := c.repo.Get(ctx, key); ok {
				return []byte(cached), true, nil
			}
		} else {
			c.log.WithError(err).Warn("failed to build cache key")
		}
	}

	result, err := compute()
	if err != nil {
		return nil, false, err
	}

	body, err := encodeJSON(result)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		if err := c.repo.Set(ctx, key, string(body), c.ttl); err != nil {
			c.log.WithError(err).Warn("failed to store cached response")
		}
	}
	return body, false, nil
}
