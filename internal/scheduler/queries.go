// internal/scheduler/queries.go
package scheduler

import (
	"sort"
	"time"

	"aprovapp/internal/model"
)

// PendingRevisions returns the incomplete revisions already due at now,
// soonest-overdue first. "Due" is always computed against the supplied now;
// there is no ticking process behind it.
func PendingRevisions(revisions []model.Revision, now time.Time) []model.Revision {
	pending := make([]model.Revision, 0)
	for _, r := range revisions {
		if !r.Completed && !r.DueDate.After(now) {
			pending = append(pending, r)
		}
	}
	sortByDueDate(pending)
	return pending
}

// UpcomingRevisions returns the incomplete revisions due after now, ascending
// by due date, truncated to limit. A non-positive limit means no truncation.
func UpcomingRevisions(revisions []model.Revision, now time.Time, limit int) []model.Revision {
	upcoming := make([]model.Revision, 0)
	for _, r := range revisions {
		if !r.Completed && r.DueDate.After(now) {
			upcoming = append(upcoming, r)
		}
	}
	sortByDueDate(upcoming)
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

func sortByDueDate(revisions []model.Revision) {
	sort.SliceStable(revisions, func(i, j int) bool {
		return revisions[i].DueDate.Before(revisions[j].DueDate)
	})
}
