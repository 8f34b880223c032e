package analytics

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/types"
)

func TestAggregateProgressPercentages(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()
	plans := []*types.StudyPlan{
		{UserID: userID, CourseID: courseID, DayOfWeek: 0, MinutesPlanned: 60},
	}
	// 2025-08-18 is a Monday.
	logs := []*types.StudyLog{
		{UserID: userID, CourseID: courseID, Date: day("2025-08-18"), MinutesStudied: 30},
	}

	report := AggregateProgress(plans, logs)
	if len(report.ByCourse) != 1 {
		t.Fatalf("expected one course row, got %d", len(report.ByCourse))
	}
	course := report.ByCourse[0]
	if course.PlannedMinutes != 60 || course.CompletedMinutes != 30 {
		t.Fatalf("unexpected course totals: %+v", course)
	}
	if course.CompletionPercentage != 50.0 {
		t.Fatalf("completion = %v, want 50.0", course.CompletionPercentage)
	}

	monday := report.ByDay[0]
	if monday.DayName != "Monday" || monday.PlannedMinutes != 60 || monday.CompletedMinutes != 30 {
		t.Fatalf("unexpected Monday row: %+v", monday)
	}
}

func TestAggregateProgressZeroPlannedIsSafe(t *testing.T) {
	courseID := uuid.New()
	logs := []*types.StudyLog{
		{CourseID: courseID, Date: day("2025-08-19"), MinutesStudied: 45},
	}
	report := AggregateProgress(nil, logs)
	if len(report.ByCourse) != 1 {
		t.Fatalf("course with only logs should still appear")
	}
	if report.ByCourse[0].CompletionPercentage != 0 {
		t.Fatalf("completion should be 0 when nothing is planned, got %v", report.ByCourse[0].CompletionPercentage)
	}
	// 2025-08-19 is a Tuesday.
	if report.ByDay[1].CompletedMinutes != 45 {
		t.Fatalf("Tuesday should carry the minutes: %+v", report.ByDay[1])
	}
}

func TestAggregateProgressWeekdayFromSessionDate(t *testing.T) {
	courseID := uuid.New()
	plans := []*types.StudyPlan{
		{CourseID: courseID, DayOfWeek: 6, MinutesPlanned: 90}, // Sunday
	}
	// 2025-08-24 is a Sunday; Go reports it as Weekday()==0.
	logs := []*types.StudyLog{
		{CourseID: courseID, Date: day("2025-08-24"), MinutesStudied: 90},
	}
	report := AggregateProgress(plans, logs)
	sunday := report.ByDay[6]
	if sunday.PlannedMinutes != 90 || sunday.CompletedMinutes != 90 {
		t.Fatalf("Sunday bucket mismatch: %+v", sunday)
	}
	if sunday.CompletionPercentage != 100.0 {
		t.Fatalf("completion = %v, want 100.0", sunday.CompletionPercentage)
	}
	for i := 0; i < 6; i++ {
		if report.ByDay[i].CompletedMinutes != 0 {
			t.Fatalf("day %d should be empty: %+v", i, report.ByDay[i])
		}
	}
}

func TestWeeklyMinutesSeries(t *testing.T) {
	today := day("2025-08-20")
	logs := []*types.StudyLog{
		{Date: day("2025-08-20"), MinutesStudied: 30},
		{Date: day("2025-08-20"), MinutesStudied: 15},
		{Date: day("2025-08-14"), MinutesStudied: 60},
		{Date: day("2025-08-13"), MinutesStudied: 60}, // outside the window
	}
	series := WeeklyMinutes(logs, today)
	if len(series) != 7 {
		t.Fatalf("series should span 7 days, got %d", len(series))
	}
	if series[0].Date != "2025-08-14" || series[0].Minutes != 60 {
		t.Fatalf("unexpected first entry: %+v", series[0])
	}
	if series[6].Date != "2025-08-20" || series[6].Minutes != 45 {
		t.Fatalf("unexpected last entry: %+v", series[6])
	}
	total := 0
	for _, d := range series {
		total += d.Minutes
	}
	if total != 105 {
		t.Fatalf("window total = %d, want 105", total)
	}
}

func TestEngagementSummaryMessages(t *testing.T) {
	if msg := EngagementSummary(StreakResult{}); msg == "" || !containsAll(msg, "No study activity") {
		t.Fatalf("unexpected empty-state summary: %q", msg)
	}
	msg := EngagementSummary(StreakResult{Current: 3, Longest: 5, Regularity: 25})
	if !containsAll(msg, "3-day streak", "best: 5") {
		t.Fatalf("unexpected summary: %q", msg)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
