package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/planner"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type fakeTopicRepo struct {
	topics []*types.Topic
}

func (f *fakeTopicRepo) Create(ctx context.Context, tx *gorm.DB, topics []*types.Topic) ([]*types.Topic, error) {
	f.topics = append(f.topics, topics...)
	return topics, nil
}

func (f *fakeTopicRepo) GetByIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Topic, error) {
	var out []*types.Topic
	for _, t := range f.topics {
		for _, id := range topicIDs {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) GetByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Topic, error) {
	var out []*types.Topic
	for _, t := range f.topics {
		for _, id := range courseIDs {
			if t.CourseID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) Update(ctx context.Context, tx *gorm.DB, topic *types.Topic) error {
	return nil
}

func (f *fakeTopicRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) error {
	return nil
}

type fakeSubtopicRepo struct {
	pending []*types.Subtopic
}

func (f *fakeSubtopicRepo) Create(ctx context.Context, tx *gorm.DB, subtopics []*types.Subtopic) ([]*types.Subtopic, error) {
	return subtopics, nil
}

func (f *fakeSubtopicRepo) GetByIDs(ctx context.Context, tx *gorm.DB, subtopicIDs []uuid.UUID) ([]*types.Subtopic, error) {
	return nil, nil
}

func (f *fakeSubtopicRepo) GetByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Subtopic, error) {
	return f.pending, nil
}

func (f *fakeSubtopicRepo) GetPendingByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Subtopic, error) {
	return f.pending, nil
}

func (f *fakeSubtopicRepo) Update(ctx context.Context, tx *gorm.DB, subtopic *types.Subtopic) error {
	return nil
}

func (f *fakeSubtopicRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, subtopicIDs []uuid.UUID) error {
	return nil
}

type fakeStudyPlanRepo struct {
	plans []*types.StudyPlan
}

func (f *fakeStudyPlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.StudyPlan) ([]*types.StudyPlan, error) {
	return plans, nil
}

func (f *fakeStudyPlanRepo) GetByIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.StudyPlan, error) {
	return nil, nil
}

func (f *fakeStudyPlanRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.StudyPlan, error) {
	return f.plans, nil
}

func (f *fakeStudyPlanRepo) GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.StudyPlan, error) {
	return f.plans, nil
}

func (f *fakeStudyPlanRepo) Update(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) error {
	return nil
}

func (f *fakeStudyPlanRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error {
	return nil
}

type fakeSequencer struct {
	items  []planner.Item
	called bool
}

func (f *fakeSequencer) FetchSequence(ctx context.Context, courseTitle, topicTitle string, pendingLabels []string) []planner.Item {
	f.called = true
	return f.items
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	return log
}

type scheduleFixture struct {
	userID    uuid.UUID
	topicID   uuid.UUID
	topics    *fakeTopicRepo
	subtopics *fakeSubtopicRepo
	plans     *fakeStudyPlanRepo
	sequencer *fakeSequencer
	service   ScheduleService
	ctx       context.Context
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	userID := uuid.New()
	courseID := uuid.New()
	topicID := uuid.New()
	course := &types.Course{ID: courseID, UserID: userID, Title: "Algorithms"}
	topic := &types.Topic{ID: topicID, CourseID: courseID, Course: course, Title: "Sorting"}

	f := &scheduleFixture{
		userID:  userID,
		topicID: topicID,
		topics:  &fakeTopicRepo{topics: []*types.Topic{topic}},
		subtopics: &fakeSubtopicRepo{pending: []*types.Subtopic{
			{ID: uuid.New(), TopicID: topicID, Title: "Bubble sort"},
			{ID: uuid.New(), TopicID: topicID, Title: "Merge sort"},
		}},
		plans: &fakeStudyPlanRepo{plans: []*types.StudyPlan{
			{ID: uuid.New(), UserID: userID, CourseID: courseID, DayOfWeek: 0, MinutesPlanned: 60},
		}},
		sequencer: &fakeSequencer{items: []planner.Item{
			{Label: "Bubble sort", EstimatedMinutes: 30, Difficulty: "Easy"},
			{Label: "Merge sort", EstimatedMinutes: 30, Difficulty: "Medium"},
		}},
	}
	f.service = NewScheduleService(nil, testLogger(t), f.topics, f.subtopics, f.plans, f.sequencer)
	f.ctx = requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
	return f
}

func TestGenerateWeeklySchedule(t *testing.T) {
	f := newScheduleFixture(t)
	resp, err := f.service.GenerateWeeklySchedule(f.ctx, f.topicID)
	if err != nil {
		t.Fatalf("GenerateWeeklySchedule failed: %v", err)
	}
	if resp.TopicTitle != "Sorting" {
		t.Fatalf("TopicTitle = %q, want Sorting", resp.TopicTitle)
	}
	if len(resp.WeeklyPlan) != 7 {
		t.Fatalf("WeeklyPlan has %d days, want 7", len(resp.WeeklyPlan))
	}
	monday := resp.WeeklyPlan[0]
	if monday.AllocatedMinutes != 60 || len(monday.Sessions) != 2 {
		t.Fatalf("Monday = %d min, %d sessions; want 60 min, 2 sessions", monday.AllocatedMinutes, len(monday.Sessions))
	}
	if resp.Summary.TotalEstimatedMinutes != 60 || resp.Summary.DaysWithStudy != 1 {
		t.Fatalf("Summary = %+v", resp.Summary)
	}
	if len(resp.Unallocated) != 0 {
		t.Fatalf("Unallocated = %v, want empty", resp.Unallocated)
	}
}

func TestGenerateWeeklyScheduleNoCapacity(t *testing.T) {
	f := newScheduleFixture(t)
	f.plans.plans = nil
	_, err := f.service.GenerateWeeklySchedule(f.ctx, f.topicID)
	if !errors.Is(err, ErrNoCapacityDefined) {
		t.Fatalf("err = %v, want ErrNoCapacityDefined", err)
	}
	if f.sequencer.called {
		t.Fatal("sequencer was called even though no capacity was defined")
	}
}

func TestGenerateWeeklyScheduleNoPendingSubtopics(t *testing.T) {
	f := newScheduleFixture(t)
	f.subtopics.pending = nil
	_, err := f.service.GenerateWeeklySchedule(f.ctx, f.topicID)
	if !errors.Is(err, ErrNoSubtopics) {
		t.Fatalf("err = %v, want ErrNoSubtopics", err)
	}
}

func TestGenerateWeeklyScheduleEmptySequence(t *testing.T) {
	f := newScheduleFixture(t)
	f.sequencer.items = nil
	_, err := f.service.GenerateWeeklySchedule(f.ctx, f.topicID)
	if !errors.Is(err, ErrNoSequence) {
		t.Fatalf("err = %v, want ErrNoSequence", err)
	}
}

func TestGenerateWeeklyScheduleForeignTopic(t *testing.T) {
	f := newScheduleFixture(t)
	otherCtx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: uuid.New()})
	_, err := f.service.GenerateWeeklySchedule(otherCtx, f.topicID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCapacityFromPlans(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()
	plans := []*types.StudyPlan{
		{UserID: userID, CourseID: courseID, DayOfWeek: 0, MinutesPlanned: 30},
		{UserID: userID, CourseID: courseID, DayOfWeek: 0, MinutesPlanned: 45},
		{UserID: userID, CourseID: courseID, DayOfWeek: 2, MinutesPlanned: 20},
		{UserID: userID, CourseID: courseID, DayOfWeek: 4, MinutesPlanned: 0},
		nil,
	}
	capacity := CapacityFromPlans(plans)
	if len(capacity) != 2 {
		t.Fatalf("capacity has %d entries, want 2: %v", len(capacity), capacity)
	}
	if capacity[0] != 75 {
		t.Fatalf("capacity[0] = %d, want 75", capacity[0])
	}
	if capacity[2] != 20 {
		t.Fatalf("capacity[2] = %d, want 20", capacity[2])
	}
}
