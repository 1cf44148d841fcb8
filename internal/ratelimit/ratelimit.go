package ratelimit

import "context"

// Limiter is the injected rate-limiting capability. Allow reports whether the
// caller identified by key may proceed; implementations decide whether the
// counter is shared across instances (redis) or process-local.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
