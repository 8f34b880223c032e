package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type fakeCourseRepo struct {
	courses []*types.Course
}

func (f *fakeCourseRepo) Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	f.courses = append(f.courses, courses...)
	return courses, nil
}

func (f *fakeCourseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Course, error) {
	var out []*types.Course
	for _, c := range f.courses {
		for _, id := range courseIDs {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Course, error) {
	var out []*types.Course
	for _, c := range f.courses {
		for _, id := range userIDs {
			if c.UserID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, tx *gorm.DB, course *types.Course) error {
	return nil
}

func (f *fakeCourseRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error {
	return nil
}

type topicFixture struct {
	ownerID   uuid.UUID
	courseID  uuid.UUID
	courses   *fakeCourseRepo
	topics    *fakeTopicRepo
	subtopics *fakeSubtopicRepo
	service   TopicService
	ownerCtx  context.Context
}

func newTopicFixture(t *testing.T) *topicFixture {
	t.Helper()
	ownerID := uuid.New()
	courseID := uuid.New()
	course := &types.Course{ID: courseID, UserID: ownerID, Title: "Linear Algebra"}
	topic := &types.Topic{ID: uuid.New(), CourseID: courseID, Course: course, Title: "Eigenvalues"}

	f := &topicFixture{
		ownerID:   ownerID,
		courseID:  courseID,
		courses:   &fakeCourseRepo{courses: []*types.Course{course}},
		topics:    &fakeTopicRepo{topics: []*types.Topic{topic}},
		subtopics: &fakeSubtopicRepo{},
	}
	f.service = NewTopicService(nil, testLogger(t), f.courses, f.topics, f.subtopics, nil)
	f.ownerCtx = requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: ownerID})
	return f
}

func foreignCtx() context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: uuid.New()})
}

func TestListTopicsReturnsOwnedCourse(t *testing.T) {
	f := newTopicFixture(t)
	topics, err := f.service.ListTopics(f.ownerCtx, f.courseID)
	if err != nil {
		t.Fatalf("ListTopics failed: %v", err)
	}
	if len(topics) != 1 || topics[0].Title != "Eigenvalues" {
		t.Fatalf("topics = %+v, want the single owned topic", topics)
	}
}

func TestListTopicsRejectsForeignCourse(t *testing.T) {
	f := newTopicFixture(t)
	topics, err := f.service.ListTopics(foreignCtx(), f.courseID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(topics) != 0 {
		t.Fatalf("another user's course leaked %d topic(s)", len(topics))
	}
}

func TestCreateTopicInOwnedCourse(t *testing.T) {
	f := newTopicFixture(t)
	topic, err := f.service.CreateTopic(f.ownerCtx, f.courseID, "Determinants", 1)
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}
	if topic.CourseID != f.courseID {
		t.Fatalf("topic.CourseID = %s, want %s", topic.CourseID, f.courseID)
	}
}

func TestCreateTopicRejectsForeignCourse(t *testing.T) {
	f := newTopicFixture(t)
	before := len(f.topics.topics)
	_, err := f.service.CreateTopic(foreignCtx(), f.courseID, "Planted", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(f.topics.topics) != before {
		t.Fatal("a topic was written into another user's course")
	}
}

func TestCreateTopicRejectsUnknownCourse(t *testing.T) {
	f := newTopicFixture(t)
	_, err := f.service.CreateTopic(f.ownerCtx, uuid.New(), "Orphan", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
