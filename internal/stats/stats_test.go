package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrackapp/fittrack/internal/model"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func goalWith(target float64, values ...float64) *model.Goal {
	goal := &model.Goal{ID: "g1", Target: target}
	for i, v := range values {
		goal.Progress = append(goal.Progress, model.ProgressEntry{
			ID:        string(rune('a' + i)),
			GoalID:    goal.ID,
			Value:     v,
			Date:      now.AddDate(0, 0, -len(values)+i),
			CreatedAt: now.AddDate(0, 0, -len(values)+i),
		})
	}
	return goal
}

func TestLatestEntry(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, LatestEntry(nil))
		assert.Nil(t, LatestEntry(&model.Goal{Target: 10}))
	})

	t.Run("max date wins regardless of slice order", func(t *testing.T) {
		d1 := now.AddDate(0, 0, -3)
		d2 := now.AddDate(0, 0, -1)
		goal := &model.Goal{Target: 100, Progress: []model.ProgressEntry{
			{ID: "b", Value: 80, Date: d2},
			{ID: "a", Value: 50, Date: d1},
		}}

		latest := LatestEntry(goal)
		require.NotNil(t, latest)
		assert.Equal(t, "b", latest.ID)

		goal.Progress[0], goal.Progress[1] = goal.Progress[1], goal.Progress[0]
		latest = LatestEntry(goal)
		require.NotNil(t, latest)
		assert.Equal(t, "b", latest.ID)
	})

	t.Run("same date ties break on creation time then id", func(t *testing.T) {
		d := now.AddDate(0, 0, -1)
		goal := &model.Goal{Target: 100, Progress: []model.ProgressEntry{
			{ID: "a", Value: 10, Date: d, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "b", Value: 20, Date: d, CreatedAt: now.Add(-1 * time.Hour)},
		}}

		latest := LatestEntry(goal)
		require.NotNil(t, latest)
		assert.Equal(t, "b", latest.ID)

		// Identical timestamps: highest id is the deterministic winner.
		goal.Progress[1].CreatedAt = goal.Progress[0].CreatedAt
		latest = LatestEntry(goal)
		require.NotNil(t, latest)
		assert.Equal(t, "b", latest.ID)
	})
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name string
		goal *model.Goal
		want int
	}{
		{"nil goal", nil, 0},
		{"no entries", goalWith(100), 0},
		{"latest entry below target", goalWith(100, 50, 80), 80},
		{"latest entry over target is not clamped", goalWith(100, 50, 120), 120},
		{"rounds to nearest", goalWith(3, 1), 33},
		{"rounds half up", goalWith(200, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercentage(tt.goal))
		})
	}
}

func TestIsCompleted(t *testing.T) {
	tests := []struct {
		name string
		goal *model.Goal
		want bool
	}{
		{"nil goal", nil, false},
		{"no entries", goalWith(100), false},
		{"latest below target", goalWith(100, 50, 80), false},
		{"latest at target", goalWith(100, 20, 100), true},
		{"latest over target", goalWith(100, 50, 120), true},
		{"earlier entry reached target but latest dropped below", goalWith(100, 120, 90), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompleted(tt.goal))
		})
	}
}

func TestAverageProgress(t *testing.T) {
	assert.Zero(t, AverageProgress(nil))
	assert.Zero(t, AverageProgress(goalWith(100)))
	assert.InDelta(t, 65, AverageProgress(goalWith(100, 50, 80)), 1e-9)
	assert.InDelta(t, 20, AverageProgress(goalWith(100, 10, 20, 30)), 1e-9)

	// Order independence: the mean uses every entry, not just the latest.
	goal := goalWith(100, 10, 20, 30)
	goal.Progress[0], goal.Progress[2] = goal.Progress[2], goal.Progress[0]
	assert.InDelta(t, 20, AverageProgress(goal), 1e-9)
}

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"zero deadline", time.Time{}, 0},
		{"deadline exactly now", now, 0},
		{"one day ahead", now.Add(24 * time.Hour), 1},
		{"partial day rounds up", now.Add(1 * time.Hour), 1},
		{"ten days ahead", now.Add(10 * 24 * time.Hour), 10},
		{"one day past stays negative", now.Add(-24 * time.Hour), -1},
		{"partial day past rounds toward zero", now.Add(-1 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := &model.Goal{Target: 100, Deadline: tt.deadline}
			assert.Equal(t, tt.want, DaysRemaining(goal, now))
		})
	}

	assert.Zero(t, DaysRemaining(nil, now))
}

func TestDaysElapsed(t *testing.T) {
	assert.Zero(t, DaysElapsed(nil, now))
	assert.Zero(t, DaysElapsed(&model.ProgressEntry{}, now))
	assert.Equal(t, 1, DaysElapsed(&model.ProgressEntry{Date: now.Add(-24 * time.Hour)}, now))
	assert.Equal(t, 1, DaysElapsed(&model.ProgressEntry{Date: now.Add(-1 * time.Hour)}, now))
	assert.Equal(t, 7, DaysElapsed(&model.ProgressEntry{Date: now.AddDate(0, 0, -7)}, now))
}

func TestTotalProgress(t *testing.T) {
	assert.Zero(t, TotalProgress(nil))
	assert.Zero(t, TotalProgress([]*model.Goal{}))

	goals := []*model.Goal{
		goalWith(100, 50, 100), // sums to 150
		goalWith(100, 20, 30),  // sums to 50
	}
	assert.InDelta(t, 200, TotalProgress(goals), 1e-9)

	// nil goals in the slice are skipped, not a panic
	assert.InDelta(t, 200, TotalProgress(append(goals, nil)), 1e-9)
}

func TestOverallProgressPercentage(t *testing.T) {
	assert.Zero(t, OverallProgressPercentage(nil))

	goals := []*model.Goal{
		goalWith(100, 50, 100),
		goalWith(100, 20, 30),
	}
	// 200 total progress against 200 total target.
	assert.InDelta(t, 100, OverallProgressPercentage(goals), 1e-9)

	// All-zero targets must not divide by zero.
	assert.Zero(t, OverallProgressPercentage([]*model.Goal{goalWith(0, 10)}))
}

func TestCountCompletedGoals(t *testing.T) {
	assert.Zero(t, CountCompletedGoals(nil))

	goals := []*model.Goal{
		goalWith(100, 120), // completed
		goalWith(100, 80),  // not
		goalWith(50, 50),   // completed
		goalWith(100),      // no entries, never completed
	}
	assert.Equal(t, 2, CountCompletedGoals(goals))
	assert.LessOrEqual(t, CountCompletedGoals(goals), len(goals))
}

func TestAverageProgressPercentage(t *testing.T) {
	assert.Zero(t, AverageProgressPercentage(nil))

	// No completed goals: 0, not NaN.
	assert.Zero(t, AverageProgressPercentage([]*model.Goal{goalWith(100, 50)}))

	goals := []*model.Goal{
		goalWith(100, 120), // completed at 120%
		goalWith(100, 100), // completed at 100%
		goalWith(100, 10),  // incomplete, excluded from the mean
	}
	assert.InDelta(t, 110, AverageProgressPercentage(goals), 1e-9)
}

func TestMetrics(t *testing.T) {
	goal := goalWith(100, 50, 80)
	goal.Deadline = now.Add(5 * 24 * time.Hour)

	m := Metrics(goal, now)
	assert.Equal(t, 80, m.ProgressPercentage)
	assert.False(t, m.IsCompleted)
	assert.InDelta(t, 65, m.AverageProgress, 1e-9)
	assert.Equal(t, 5, m.DaysRemaining)
}

func TestSummarize(t *testing.T) {
	t.Run("empty portfolio", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, Summary{}, s)
	})

	t.Run("mixed portfolio", func(t *testing.T) {
		goals := []*model.Goal{
			goalWith(100, 50, 100),
			goalWith(100, 20, 30),
		}

		s := Summarize(goals)
		assert.Equal(t, 2, s.TotalGoals)
		assert.Equal(t, 1, s.CompletedGoals)
		assert.Equal(t, 4, s.TotalEntries)
		assert.InDelta(t, 200, s.TotalProgress, 1e-9)
		assert.InDelta(t, 100, s.OverallProgressPercentage, 1e-9)
		assert.InDelta(t, 100, s.AverageProgressPercentage, 1e-9)
	})
}

// Aggregations never mutate their snapshot: the same input yields the same
// answer on every call.
func TestIdempotence(t *testing.T) {
	goals := []*model.Goal{
		goalWith(100, 50, 120),
		goalWith(100, 20),
	}

	first := Summarize(goals)
	second := Summarize(goals)
	assert.Equal(t, first, second)

	p1 := ProgressPercentage(goals[0])
	p2 := ProgressPercentage(goals[0])
	assert.Equal(t, p1, p2)
}
