package analytics

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeStreaksCurrentCountsBackFromToday(t *testing.T) {
	today := day("2025-08-20")
	dates := []time.Time{
		day("2025-08-20"),
		day("2025-08-19"),
		day("2025-08-18"),
		day("2025-08-15"), // gap at the 17th and 16th
	}
	res := ComputeStreaks(dates, today)
	if res.Current != 3 {
		t.Fatalf("current streak = %d, want 3", res.Current)
	}
}

func TestComputeStreaksTodayAbsentMeansZero(t *testing.T) {
	today := day("2025-08-20")
	res := ComputeStreaks([]time.Time{day("2025-08-19")}, today)
	if res.Current != 0 {
		t.Fatalf("current streak = %d, want 0", res.Current)
	}
	if res.Longest != 1 {
		t.Fatalf("longest streak = %d, want 1", res.Longest)
	}
}

func TestComputeStreaksLongestSpansHistory(t *testing.T) {
	today := day("2025-08-20")
	dates := []time.Time{
		// a 4-day run well in the past
		day("2025-07-01"), day("2025-07-02"), day("2025-07-03"), day("2025-07-04"),
		// a 2-day run near today
		day("2025-08-19"), day("2025-08-20"),
	}
	res := ComputeStreaks(dates, today)
	if res.Longest != 4 {
		t.Fatalf("longest streak = %d, want 4", res.Longest)
	}
	if res.Current != 2 {
		t.Fatalf("current streak = %d, want 2", res.Current)
	}
}

func TestComputeStreaksDuplicateAndTimestampedDates(t *testing.T) {
	today := day("2025-08-20")
	dates := []time.Time{
		time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 8, 20, 22, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 19, 7, 0, 0, 0, time.UTC),
	}
	res := ComputeStreaks(dates, today)
	if res.Current != 2 {
		t.Fatalf("current streak = %d, want 2", res.Current)
	}
	if res.Longest != 2 {
		t.Fatalf("longest streak = %d, want 2", res.Longest)
	}
}

func TestComputeStreaksRegularityWindow(t *testing.T) {
	today := day("2025-08-28")
	var dates []time.Time
	// 7 distinct study days inside the 28-day window, one far outside it.
	for i := 0; i < 7; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	dates = append(dates, day("2025-01-01"))

	res := ComputeStreaks(dates, today)
	if res.Regularity != 25.0 {
		t.Fatalf("regularity = %v, want 25.0", res.Regularity)
	}
}

func TestComputeStreaksEmpty(t *testing.T) {
	res := ComputeStreaks(nil, day("2025-08-20"))
	if res.Current != 0 || res.Longest != 0 || res.Regularity != 0 {
		t.Fatalf("empty input should yield zeros, got %+v", res)
	}
}
