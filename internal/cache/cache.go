// Package cache provides a small get/set-with-ttl/delete key-value cache
// used to front adventure list queries. Backends are interchangeable: a
// process-local map and a redis client speaking the same contract with
// JSON payloads.
package cache

import (
	"context"
	"time"
)

// Cache is the backend contract. Get reports a miss through ok=false;
// errors mean the backend itself misbehaved and callers are expected to
// fall back to the store of record.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
