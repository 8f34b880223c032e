package planner

import (
	"reflect"
	"testing"
)

func TestAllocateGreedyTrace(t *testing.T) {
	items := []Item{
		{Label: "A", EstimatedMinutes: 45, Difficulty: "Easy"},
		{Label: "B", EstimatedMinutes: 30, Difficulty: "Medium"},
		{Label: "C", EstimatedMinutes: 60, Difficulty: "Hard"},
	}
	capacity := map[int]int{0: 60, 2: 60} // Monday and Wednesday

	schedule, unallocated := Allocate(items, capacity)

	monday := schedule.Days[0]
	if len(monday.Sessions) != 1 || monday.Sessions[0].Label != "A" {
		t.Fatalf("unexpected Monday sessions: %#v", monday.Sessions)
	}
	if monday.AllocatedMinutes != 45 {
		t.Fatalf("unexpected Monday minutes: %d", monday.AllocatedMinutes)
	}
	if tuesday := schedule.Days[1]; len(tuesday.Sessions) != 0 {
		t.Fatalf("Tuesday should be empty: %#v", tuesday.Sessions)
	}
	wednesday := schedule.Days[2]
	if len(wednesday.Sessions) != 1 || wednesday.Sessions[0].Label != "B" {
		t.Fatalf("unexpected Wednesday sessions: %#v", wednesday.Sessions)
	}
	if len(unallocated) != 1 || unallocated[0].Label != "C" {
		t.Fatalf("unexpected unallocated: %#v", unallocated)
	}
	if schedule.TotalEstimatedMinutes != 75 {
		t.Fatalf("unexpected total: %d", schedule.TotalEstimatedMinutes)
	}
	if schedule.DaysWithStudy != 2 {
		t.Fatalf("unexpected days with study: %d", schedule.DaysWithStudy)
	}
}

func TestAllocateNeverExceedsCapacity(t *testing.T) {
	items := []Item{
		{Label: "a", EstimatedMinutes: 15},
		{Label: "b", EstimatedMinutes: 30},
		{Label: "c", EstimatedMinutes: 45},
		{Label: "d", EstimatedMinutes: 15},
		{Label: "e", EstimatedMinutes: 60},
		{Label: "f", EstimatedMinutes: 30},
	}
	capacity := map[int]int{0: 50, 1: 20, 3: 95, 5: 60, 6: 10}

	schedule, _ := Allocate(items, capacity)
	for _, day := range schedule.Days {
		sum := 0
		for _, s := range day.Sessions {
			sum += s.EstimatedMinutes
		}
		if sum != day.AllocatedMinutes {
			t.Fatalf("day %d reports %d minutes but sessions sum to %d", day.DayOfWeek, day.AllocatedMinutes, sum)
		}
		if sum > capacity[day.DayOfWeek] {
			t.Fatalf("day %d over capacity: %d > %d", day.DayOfWeek, sum, capacity[day.DayOfWeek])
		}
	}
}

func TestAllocateConservesAndPreservesOrder(t *testing.T) {
	items := []Item{
		{Label: "intro", EstimatedMinutes: 30},
		{Label: "basics", EstimatedMinutes: 30},
		{Label: "practice", EstimatedMinutes: 45},
		{Label: "review", EstimatedMinutes: 120},
		{Label: "exam prep", EstimatedMinutes: 15},
	}
	capacity := map[int]int{1: 60, 4: 60}

	schedule, unallocated := Allocate(items, capacity)

	var placed []string
	for _, day := range schedule.Days {
		prev := -1
		for _, s := range day.Sessions {
			placed = append(placed, s.Label)
			idx := indexOf(items, s.Label)
			if idx <= prev {
				t.Fatalf("order violated on day %d: %v", day.DayOfWeek, day.Sessions)
			}
			prev = idx
		}
	}
	for _, u := range unallocated {
		placed = append(placed, u.Label)
	}
	if len(placed) != len(items) {
		t.Fatalf("item count mismatch: placed+unallocated=%d want %d", len(placed), len(items))
	}
	seen := map[string]bool{}
	for _, label := range placed {
		if seen[label] {
			t.Fatalf("item %q appears more than once", label)
		}
		seen[label] = true
	}
}

func TestAllocateOversizedItemBlocksQueue(t *testing.T) {
	items := []Item{
		{Label: "huge", EstimatedMinutes: 500},
		{Label: "small", EstimatedMinutes: 15},
	}
	capacity := map[int]int{0: 60, 1: 60, 2: 60, 3: 60, 4: 60, 5: 60, 6: 60}

	schedule, unallocated := Allocate(items, capacity)
	if schedule.TotalEstimatedMinutes != 0 {
		t.Fatalf("nothing should have been placed, got %d minutes", schedule.TotalEstimatedMinutes)
	}
	// "small" stays behind "huge": the queue order is never violated.
	if len(unallocated) != 2 || unallocated[0].Label != "huge" || unallocated[1].Label != "small" {
		t.Fatalf("unexpected unallocated: %#v", unallocated)
	}
}

func TestAllocateEmptyInputs(t *testing.T) {
	schedule, unallocated := Allocate(nil, map[int]int{0: 60})
	if len(schedule.Days) != 7 || schedule.TotalEstimatedMinutes != 0 || len(unallocated) != 0 {
		t.Fatalf("unexpected result for empty items: %#v %#v", schedule, unallocated)
	}

	items := []Item{{Label: "x", EstimatedMinutes: 30}}
	schedule, unallocated = Allocate(items, nil)
	if schedule.DaysWithStudy != 0 {
		t.Fatalf("no capacity should mean no study days, got %d", schedule.DaysWithStudy)
	}
	if len(unallocated) != 1 || unallocated[0].Label != "x" {
		t.Fatalf("item should be returned unallocated: %#v", unallocated)
	}
}

func TestAllocateIdempotent(t *testing.T) {
	items := []Item{
		{Label: "a", EstimatedMinutes: 45},
		{Label: "b", EstimatedMinutes: 30},
		{Label: "c", EstimatedMinutes: 60},
	}
	capacity := map[int]int{0: 60, 2: 90, 5: 30}

	s1, u1 := Allocate(items, capacity)
	s2, u2 := Allocate(items, capacity)
	if !reflect.DeepEqual(s1, s2) || !reflect.DeepEqual(u1, u2) {
		t.Fatalf("allocation is not deterministic")
	}
}

func indexOf(items []Item, label string) int {
	for i, it := range items {
		if it.Label == label {
			return i
		}
	}
	return -1
}
