// internal/scheduler/queries_test.go
package scheduler

import (
	"testing"
	"time"

	"aprovapp/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingAndUpcomingPartition(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	revisions := []model.Revision{
		{ID: "r-overdue-far", TopicID: "t1", DueDate: day(-10)},
		{ID: "r-overdue-near", TopicID: "t1", DueDate: day(-1)},
		{ID: "r-due-now", TopicID: "t2", DueDate: now},
		{ID: "r-done", TopicID: "t2", DueDate: day(-5), Completed: true},
		{ID: "r-tomorrow", TopicID: "t1", DueDate: day(1)},
		{ID: "r-next-week", TopicID: "t2", DueDate: day(7)},
		{ID: "r-done-future", TopicID: "t1", DueDate: day(3), Completed: true},
	}

	pending := PendingRevisions(revisions, now)
	upcoming := UpcomingRevisions(revisions, now, 0)

	// Every incomplete revision lands in exactly one of the two lists.
	pendingIDs := []string{}
	for _, r := range pending {
		pendingIDs = append(pendingIDs, r.ID)
	}
	upcomingIDs := []string{}
	for _, r := range upcoming {
		upcomingIDs = append(upcomingIDs, r.ID)
	}

	assert.Equal(t, []string{"r-overdue-far", "r-overdue-near", "r-due-now"}, pendingIDs, "soonest-overdue first, due-now included")
	assert.Equal(t, []string{"r-tomorrow", "r-next-week"}, upcomingIDs)
	for _, id := range pendingIDs {
		assert.NotContains(t, upcomingIDs, id)
	}
}

func TestPendingRevisionsEmpty(t *testing.T) {
	now := time.Now()

	pending := PendingRevisions(nil, now)
	require.NotNil(t, pending)
	assert.Empty(t, pending)
}

func TestUpcomingRevisionsLimit(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	var revisions []model.Revision
	for i := 12; i >= 1; i-- {
		revisions = append(revisions, model.Revision{
			ID:      string(rune('a' + i)),
			DueDate: now.AddDate(0, 0, i),
		})
	}

	t.Run("truncates to limit after sorting", func(t *testing.T) {
		upcoming := UpcomingRevisions(revisions, now, 10)
		require.Len(t, upcoming, 10)
		for i := 1; i < len(upcoming); i++ {
			assert.False(t, upcoming[i].DueDate.Before(upcoming[i-1].DueDate))
		}
		// The two furthest-out revisions fall off, not the nearest.
		assert.True(t, now.AddDate(0, 0, 1).Equal(upcoming[0].DueDate))
		assert.True(t, now.AddDate(0, 0, 10).Equal(upcoming[9].DueDate))
	})

	t.Run("non-positive limit means no truncation", func(t *testing.T) {
		assert.Len(t, UpcomingRevisions(revisions, now, 0), 12)
		assert.Len(t, UpcomingRevisions(revisions, now, -1), 12)
	})
}
