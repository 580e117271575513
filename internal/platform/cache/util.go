package cache

import (
	"time"
)

// RefreshInterval is how often the market snapshot is refreshed.
const RefreshInterval = 5 * time.Minute

// TimeUntilNextRefresh returns the duration until the next refresh
// boundary. Refreshes run on wall-clock 5 minute marks so cache TTLs and
// the scheduler stay aligned.
func TimeUntilNextRefresh(now time.Time) time.Duration {
	next := now.Truncate(RefreshInterval).Add(RefreshInterval)
	return next.Sub(now)
}
