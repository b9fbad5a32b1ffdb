package constants

import "time"

// Redis keys follow itickets:{module}:{operation}

const (
	CACHE_PREFIX = "itickets"

	// Published, future-dated events with availability. Invalidated after
	// every committed booking.
	CACHE_KEY_EVENTS_UPCOMING = CACHE_PREFIX + ":events:upcoming"

	// Sliding-window counters, + :{ip}:{class}
	RATE_LIMIT_PREFIX = CACHE_PREFIX + ":ratelimit"
)

// Used when CATALOG_CACHE_TTL is unset or not positive
const TTL_EVENTS_UPCOMING = 2 * time.Minute
