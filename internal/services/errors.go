package services

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses. The two
// schedule-generation failures stay distinct so the boundary can answer with
// different user-facing messages (missing precondition vs upstream outage).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("resource not owned by user")
	ErrNoCapacityDefined = errors.New("no study plan defined for this course")
	ErrNoSequence        = errors.New("estimation service produced no sequence")
	ErrNoSubtopics       = errors.New("topic has no pending subtopics to distribute")
)
