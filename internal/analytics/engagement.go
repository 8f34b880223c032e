package analytics

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/types"
)

// TopicAggregate joins total study minutes and average quiz score for one
// topic. Only topics carrying both figures take part in trend analysis.
type TopicAggregate struct {
	TopicID             uuid.UUID `json:"topic_id"`
	TopicTitle          string    `json:"topic_title"`
	TotalMinutesStudied int       `json:"total_minutes_studied"`
	AverageQuizScore    float64   `json:"average_quiz_score"`
}

// DayMinutes is one day of the trailing-week study series.
type DayMinutes struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// WeeklyMinutes sums studied minutes per day over the trailing 7 days
// (inclusive of today), oldest day first. Days without sessions appear with
// zero minutes so charts always get a full series.
func WeeklyMinutes(logs []*types.StudyLog, today time.Time) []DayMinutes {
	byDay := map[time.Time]int{}
	for _, log := range logs {
		if log == nil {
			continue
		}
		byDay[dayKey(log.Date)] += log.MinutesStudied
	}
	series := make([]DayMinutes, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := dayKey(today).AddDate(0, 0, -offset)
		series = append(series, DayMinutes{
			Date:    day.Format("2006-01-02"),
			Minutes: byDay[day],
		})
	}
	return series
}

// EngagementSummary phrases the streak figures for the response payload.
func EngagementSummary(streak StreakResult) string {
	if streak.Current == 0 && streak.Longest == 0 && streak.Regularity == 0 {
		return "No study activity recorded yet. Log a study session to start building a streak."
	}
	if streak.Current == 0 {
		return fmt.Sprintf("No session logged today. Your best streak is %d day(s) and you studied on %.2f%% of the last %d days.", streak.Longest, streak.Regularity, regularityWindowDays)
	}
	return fmt.Sprintf("You are on a %d-day streak (best: %d). You studied on %.2f%% of the last %d days.", streak.Current, streak.Longest, streak.Regularity, regularityWindowDays)
}
