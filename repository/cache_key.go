package repository

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CacheKey fingerprints a canonical request body under a route namespace.
func CacheKey(namespace string, body []byte) string {
	return namespace + ":" + strconv.FormatUint(xxhash.Sum64(body), 16)
}
