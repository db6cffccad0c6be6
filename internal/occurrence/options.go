package occurrence

import (
	"math"
	"time"

	"venue-calendar/internal/model"
)

const (
	// DefaultMax is the per-event cap applied by DefaultOptions.
	DefaultMax = 50
	// DefaultDuration is used when an occurrence has no usable end.
	DefaultDuration = time.Hour
)

// Options narrows what Resolve returns. Zero Since/Until leave that side of
// the window open; a zero Now means time.Now.
type Options struct {
	Max              int
	Since            time.Time
	Until            time.Time
	IncludePast      bool
	Statuses         []model.Status
	IncludeCancelled bool
	Now              time.Time
}

// DefaultOptions returns the resolver defaults: 50 instances, past included,
// default statuses, cancelled excluded.
func DefaultOptions() Options {
	return Options{
		Max:         DefaultMax,
		IncludePast: true,
	}
}

// allOptions is the full-history variant used for sync and export.
func allOptions() Options {
	return Options{
		Max:              math.MaxInt,
		IncludePast:      true,
		IncludeCancelled: true,
	}
}

// allowedStatuses builds the status filter. Deleted is never allowed and
// cancelled only on request. An empty result falls back to the defaults.
func allowedStatuses(requested []model.Status, includeCancelled bool) map[model.Status]struct{} {
	allowed := make(map[model.Status]struct{}, len(requested)+1)
	for _, s := range requested {
		if s == model.StatusDeleted || s == model.StatusCancelled || !s.IsValid() {
			continue
		}
		allowed[s] = struct{}{}
	}
	if len(allowed) == 0 {
		for _, s := range model.DefaultStatuses {
			allowed[s] = struct{}{}
		}
	}
	if includeCancelled {
		allowed[model.StatusCancelled] = struct{}{}
	}
	return allowed
}
