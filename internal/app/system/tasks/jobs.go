// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/policy/engagement"
	groupstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/groups"
	"go.uber.org/zap"
)

// AnniversaryBadgeJob creates the daily sweep that awards the one-year
// badge to groups whose creation date falls exactly one calendar year
// ago. It runs at local midnight, like the service it replaced. The
// sweep is idempotent: groups already holding the badge are skipped.
func AnniversaryBadgeJob(groups *groupstore.Store, logger *zap.Logger) Job {
	return Job{
		Name: "anniversary-badges",
		Spec: "0 0 * * *",
		Run: func(ctx context.Context) error {
			start, end := engagement.AnniversaryWindow(time.Now())
			candidates, err := groups.FindCreatedBetween(ctx, start, end)
			if err != nil {
				return err
			}

			awarded := 0
			for _, a := range engagement.AnniversaryAwards(candidates) {
				if err := groups.AwardBadge(ctx, a.GroupID, a.Badge); err != nil {
					logger.Error("anniversary badge award failed",
						zap.String("group_id", a.GroupID.Hex()),
						zap.Error(err))
					continue
				}
				awarded++
			}
			if awarded > 0 {
				logger.Info("awarded anniversary badges",
					zap.Int("count", awarded),
					zap.Time("window_start", start))
			}
			return nil
		},
	}
}
