package jobs

import (
	"context"
	"time"

	"huntly/internal/analytics"
)

// NewRecalculateJob builds the periodic statistics snapshot job. The
// aggregation is idempotent, so overlapping deploys or restarts only cost
// an extra snapshot row, never inconsistent data.
func NewRecalculateJob(svc *analytics.Service, interval time.Duration) Job {
	return Job{
		Name:     "recalculate-statistics",
		Interval: interval,
		Run: func(ctx context.Context) error {
			_, err := svc.Recalculate()
			return err
		},
	}
}
