package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/planner"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

// ProgressEntry compares planned against completed minutes for one bucket.
type ProgressEntry struct {
	PlannedMinutes       int     `json:"planned_minutes"`
	CompletedMinutes     int     `json:"completed_minutes"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type CourseProgress struct {
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	ProgressEntry
}

type DayProgress struct {
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	ProgressEntry
}

type ProgressReport struct {
	ByCourse []CourseProgress `json:"by_course"`
	ByDay    []DayProgress    `json:"by_day_of_week"`
}

// AggregateProgress combines the weekly capacity entries with a date-windowed
// slice of the study ledger into planned-vs-completed breakdowns per course
// and per weekday. The weekday bucket of a session always derives from the
// session's own calendar date so completed minutes line up with the same
// weekday the plan entry targets. A course that only appears in the ledger
// still shows up, with zero planned minutes.
func AggregateProgress(plans []*types.StudyPlan, logs []*types.StudyLog) ProgressReport {
	type courseTotals struct {
		title     string
		planned   int
		completed int
	}
	courses := map[uuid.UUID]*courseTotals{}
	courseFor := func(id uuid.UUID) *courseTotals {
		if c, ok := courses[id]; ok {
			return c
		}
		c := &courseTotals{}
		courses[id] = c
		return c
	}

	var plannedByDay, completedByDay [7]int

	for _, plan := range plans {
		if plan == nil {
			continue
		}
		c := courseFor(plan.CourseID)
		c.planned += plan.MinutesPlanned
		if plan.Course != nil && c.title == "" {
			c.title = plan.Course.Title
		}
		if plan.DayOfWeek >= 0 && plan.DayOfWeek <= 6 {
			plannedByDay[plan.DayOfWeek] += plan.MinutesPlanned
		}
	}
	for _, log := range logs {
		if log == nil {
			continue
		}
		c := courseFor(log.CourseID)
		c.completed += log.MinutesStudied
		if log.Course != nil && c.title == "" {
			c.title = log.Course.Title
		}
		completedByDay[mondayIndexedWeekday(log.Date)] += log.MinutesStudied
	}

	report := ProgressReport{
		ByCourse: make([]CourseProgress, 0, len(courses)),
		ByDay:    make([]DayProgress, 0, 7),
	}
	for id, c := range courses {
		report.ByCourse = append(report.ByCourse, CourseProgress{
			CourseID:      id,
			CourseTitle:   c.title,
			ProgressEntry: progressEntry(c.planned, c.completed),
		})
	}
	sort.Slice(report.ByCourse, func(i, j int) bool {
		if report.ByCourse[i].CourseTitle != report.ByCourse[j].CourseTitle {
			return report.ByCourse[i].CourseTitle < report.ByCourse[j].CourseTitle
		}
		return report.ByCourse[i].CourseID.String() < report.ByCourse[j].CourseID.String()
	})

	for day := 0; day < 7; day++ {
		report.ByDay = append(report.ByDay, DayProgress{
			DayOfWeek:     day,
			DayName:       planner.DayName(day),
			ProgressEntry: progressEntry(plannedByDay[day], completedByDay[day]),
		})
	}
	return report
}

func progressEntry(planned, completed int) ProgressEntry {
	entry := ProgressEntry{PlannedMinutes: planned, CompletedMinutes: completed}
	if planned > 0 {
		entry.CompletionPercentage = roundTo2(float64(completed) / float64(planned) * 100)
	}
	return entry
}

// mondayIndexedWeekday converts Go's Sunday=0 weekday to the 0=Monday..6=Sunday
// convention the capacity entries use.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
