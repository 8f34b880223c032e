package analytics

import (
	"math"
	"sort"
	"time"
)

// regularityWindowDays is the trailing window used for the regularity score.
const regularityWindowDays = 28

// StreakResult describes study-day consistency relative to a reference day.
type StreakResult struct {
	Current    int     `json:"current_streak"`
	Longest    int     `json:"best_streak"`
	Regularity float64 `json:"regularity_score"`
}

// ComputeStreaks derives streak and regularity figures from the calendar
// dates on which at least one study session was logged. Dates may repeat and
// carry arbitrary time-of-day components; only the calendar day matters.
// With no dates at all every field is zero and the caller is expected to
// surface an "insufficient activity" message instead of a numeric report.
func ComputeStreaks(dates []time.Time, today time.Time) StreakResult {
	days := distinctDays(dates)
	if len(days) == 0 {
		return StreakResult{}
	}

	ref := dayKey(today)

	// Current streak: walk backwards from today until the first missing day.
	current := 0
	for d := ref; days[d]; d = d.AddDate(0, 0, -1) {
		current++
	}

	// Longest streak: scan distinct days ascending, resetting whenever the
	// next day is not exactly one calendar day later.
	ordered := make([]time.Time, 0, len(days))
	for d := range days {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })
	longest, run := 0, 0
	for i, d := range ordered {
		if i > 0 && ordered[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// Regularity: share of the trailing window (inclusive of today) with at
	// least one study day.
	windowStart := ref.AddDate(0, 0, -(regularityWindowDays - 1))
	inWindow := 0
	for d := range days {
		if !d.Before(windowStart) && !d.After(ref) {
			inWindow++
		}
	}
	regularity := roundTo2(float64(inWindow) / regularityWindowDays * 100)

	return StreakResult{Current: current, Longest: longest, Regularity: regularity}
}

func distinctDays(dates []time.Time) map[time.Time]bool {
	days := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		days[dayKey(d)] = true
	}
	return days
}

func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
