package stats

import (
	"time"

	"github.com/fittrackapp/fittrack/internal/model"
)

// GoalMetrics is the derived view of a single goal. It is computed on read and
// never persisted.
type GoalMetrics struct {
	ProgressPercentage int     `json:"progressPercentage"`
	IsCompleted        bool    `json:"isCompleted"`
	AverageProgress    float64 `json:"averageProgress"`
	DaysRemaining      int     `json:"daysRemaining"`
}

// Summary aggregates a user's whole goal portfolio for the dashboard.
type Summary struct {
	TotalGoals                int     `json:"totalGoals"`
	CompletedGoals            int     `json:"completedGoals"`
	TotalEntries              int     `json:"totalEntries"`
	TotalProgress             float64 `json:"totalProgress"`
	OverallProgressPercentage float64 `json:"overallProgressPercentage"`
	AverageProgressPercentage float64 `json:"averageProgressPercentage"`
}

// Clock supplies the current time to calculations that need one, so tests can
// pin "now" instead of racing the wall clock.
type Clock func() time.Time

// Metrics computes the four derived metrics for one goal at the given time.
func Metrics(goal *model.Goal, now time.Time) GoalMetrics {
	return GoalMetrics{
		ProgressPercentage: ProgressPercentage(goal),
		IsCompleted:        IsCompleted(goal),
		AverageProgress:    AverageProgress(goal),
		DaysRemaining:      DaysRemaining(goal, now),
	}
}

// Summarize rolls a goal collection up into dashboard statistics.
func Summarize(goals []*model.Goal) Summary {
	entries := 0
	for _, goal := range goals {
		if goal != nil {
			entries += len(goal.Progress)
		}
	}

	return Summary{
		TotalGoals:                len(goals),
		CompletedGoals:            CountCompletedGoals(goals),
		TotalEntries:              entries,
		TotalProgress:             TotalProgress(goals),
		OverallProgressPercentage: OverallProgressPercentage(goals),
		AverageProgressPercentage: AverageProgressPercentage(goals),
	}
}
