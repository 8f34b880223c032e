package planner

// Item is one unit of study work to place on the weekly calendar. Items come
// out of the sequencing step already ordered from most fundamental to most
// advanced, and that order is authoritative: it encodes prerequisite
// structure, so the allocator never reorders or skips ahead in the queue.
type Item struct {
	Label            string `json:"label"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Difficulty       string `json:"difficulty"`
}

// DaySchedule is one weekday bucket of the produced plan.
type DaySchedule struct {
	DayOfWeek        int    `json:"day_of_week"`
	DayName          string `json:"day_name"`
	AllocatedMinutes int    `json:"allocated_minutes"`
	Sessions         []Item `json:"sessions"`
}

// Schedule is a full recurring week. Days are always present for all seven
// weekdays, Monday first, even when nothing was allocated to them.
type Schedule struct {
	Days                  []DaySchedule `json:"days"`
	TotalEstimatedMinutes int           `json:"total_estimated_minutes"`
	DaysWithStudy         int           `json:"days_with_study"`
}

var dayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayName maps a 0=Monday..6=Sunday index to its English name. Out-of-range
// values return an empty string.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return dayNames[dayOfWeek]
}

// Allocate packs the ordered items into the weekly capacity map
// (day-of-week, 0=Monday..6=Sunday → planned minutes). It walks the days in
// fixed Monday-to-Sunday order and, per day, keeps taking the head of the
// queue while it fits in the day's remaining budget. The first item that does
// not fit ends the day; later, smaller items are never pulled forward.
//
// Items that remain in the queue after Sunday are returned as the second
// value. An item larger than every day's full budget always ends up there;
// callers report it back rather than dropping it. With an empty or all-zero
// capacity map every item is unallocated — callers are expected to treat that
// as a missing-precondition case before ever calling Allocate.
func Allocate(items []Item, capacity map[int]int) (Schedule, []Item) {
	schedule := Schedule{Days: make([]DaySchedule, 0, 7)}
	for day := 0; day < 7; day++ {
		schedule.Days = append(schedule.Days, DaySchedule{
			DayOfWeek: day,
			DayName:   dayNames[day],
			Sessions:  []Item{},
		})
	}
	if len(items) == 0 {
		return schedule, nil
	}

	queue := append([]Item(nil), items...)
	for day := 0; day < 7; day++ {
		remaining := capacity[day]
		bucket := &schedule.Days[day]
		for remaining > 0 && len(queue) > 0 {
			next := queue[0]
			if next.EstimatedMinutes > remaining {
				break
			}
			bucket.Sessions = append(bucket.Sessions, next)
			bucket.AllocatedMinutes += next.EstimatedMinutes
			remaining -= next.EstimatedMinutes
			queue = queue[1:]
		}
		if bucket.AllocatedMinutes > 0 {
			schedule.DaysWithStudy++
		}
		schedule.TotalEstimatedMinutes += bucket.AllocatedMinutes
	}
	return schedule, queue
}
