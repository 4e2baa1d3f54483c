// Package stats derives goal metrics from raw progress entries. Everything in
// here is a pure function over an in-memory snapshot: no I/O, no hidden state,
// safe to call concurrently. Metrics are recomputed on every read instead of
// being cached, so they can never go stale relative to the entry log.
package stats

import (
	"math"
	"time"

	"github.com/fittrackapp/fittrack/internal/model"
)

const day = 24 * time.Hour

// LatestEntry returns the entry with the most recent date, or nil if the goal
// has no entries. Progress is treated as a gauge: the newest reading wins, not
// the sum. Entries sharing a date are ordered by creation time, then by ID, so
// the result does not depend on slice order.
func LatestEntry(goal *model.Goal) *model.ProgressEntry {
	if goal == nil || len(goal.Progress) == 0 {
		return nil
	}

	latest := &goal.Progress[0]
	for i := 1; i < len(goal.Progress); i++ {
		if newerThan(&goal.Progress[i], latest) {
			latest = &goal.Progress[i]
		}
	}

	return latest
}

func newerThan(a, b *model.ProgressEntry) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// ProgressPercentage returns the goal's progress as a rounded percentage of
// its target, based on the latest entry. A goal with no entries is at 0%.
// Values above 100 are possible when the latest reading exceeds the target;
// they are deliberately not clamped, since over-achievement is information.
func ProgressPercentage(goal *model.Goal) int {
	latest := LatestEntry(goal)
	if latest == nil {
		return 0
	}

	return int(math.Round(latest.Value / goal.Target * 100))
}

// IsCompleted reports whether the latest entry has reached the target.
// A goal with no entries is never completed.
func IsCompleted(goal *model.Goal) bool {
	latest := LatestEntry(goal)
	if latest == nil {
		return false
	}

	return latest.Value >= goal.Target
}

// AverageProgress returns the arithmetic mean of all entry values, or 0 if the
// goal has no entries. Unlike ProgressPercentage this looks at every entry.
func AverageProgress(goal *model.Goal) float64 {
	if goal == nil || len(goal.Progress) == 0 {
		return 0
	}

	var total float64
	for _, entry := range goal.Progress {
		total += entry.Value
	}

	return total / float64(len(goal.Progress))
}

// DaysRemaining returns the number of whole days until the goal's deadline,
// rounded up. A deadline in the past yields a negative count; callers decide
// how to present overdue goals. A zero deadline yields 0.
func DaysRemaining(goal *model.Goal, now time.Time) int {
	if goal == nil || goal.Deadline.IsZero() {
		return 0
	}

	return int(math.Ceil(float64(goal.Deadline.Sub(now)) / float64(day)))
}

// DaysElapsed returns the number of whole days since the entry was logged,
// rounded up. A zero date yields 0.
func DaysElapsed(entry *model.ProgressEntry, now time.Time) int {
	if entry == nil || entry.Date.IsZero() {
		return 0
	}

	return int(math.Ceil(float64(now.Sub(entry.Date)) / float64(day)))
}

// TotalProgress sums every entry value across every goal. This is the raw
// cumulative total, independent of the gauge semantics of ProgressPercentage.
func TotalProgress(goals []*model.Goal) float64 {
	var total float64
	for _, goal := range goals {
		if goal == nil {
			continue
		}
		for _, entry := range goal.Progress {
			total += entry.Value
		}
	}

	return total
}

// OverallProgressPercentage returns total progress across all goals as a
// percentage of the combined targets. Returns 0 for an empty portfolio, and 0
// when the targets sum to zero rather than dividing by zero.
func OverallProgressPercentage(goals []*model.Goal) float64 {
	if len(goals) == 0 {
		return 0
	}

	var totalTarget float64
	for _, goal := range goals {
		if goal != nil {
			totalTarget += goal.Target
		}
	}
	if totalTarget == 0 {
		return 0
	}

	return TotalProgress(goals) / totalTarget * 100
}

// CountCompletedGoals returns how many goals are completed.
func CountCompletedGoals(goals []*model.Goal) int {
	count := 0
	for _, goal := range goals {
		if IsCompleted(goal) {
			count++
		}
	}

	return count
}

// AverageProgressPercentage returns the mean progress percentage taken over
// completed goals only. Returns 0 when no goal is completed rather than
// dividing by zero.
func AverageProgressPercentage(goals []*model.Goal) float64 {
	var sum, completed int
	for _, goal := range goals {
		if IsCompleted(goal) {
			sum += ProgressPercentage(goal)
			completed++
		}
	}
	if completed == 0 {
		return 0
	}

	return float64(sum) / float64(completed)
}
