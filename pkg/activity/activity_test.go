package activity

import (
	"testing"
	"time"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

func date(y int, m time.Month, d int) timeutil.Date {
	return timeutil.Date{Year: y, Month: m, Day: d}
}

func TestDayToggleFlipsMembership(t *testing.T) {
	day := &Day{Date: date(2024, time.January, 1)}

	if done := day.Toggle(3); !done {
		t.Fatal("first toggle should mark completed")
	}
	if !day.Has(3) {
		t.Fatal("expected id 3 completed")
	}
	if done := day.Toggle(3); done {
		t.Fatal("second toggle should clear completion")
	}
	if day.Has(3) || !day.Empty() {
		t.Fatal("double toggle should restore the original empty set")
	}
}

func TestDayToggleKeepsSorted(t *testing.T) {
	day := &Day{Date: date(2024, time.January, 1)}
	for _, id := range []ID{5, 1, 3} {
		day.Toggle(id)
	}
	want := []ID{1, 3, 5}
	if len(day.Completed) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(day.Completed))
	}
	for i, id := range want {
		if day.Completed[i] != id {
			t.Fatalf("expected %v at %d, got %v", id, i, day.Completed[i])
		}
	}
}

func TestSnapshotAllocateNeverReuses(t *testing.T) {
	s := NewSnapshot()
	a := s.Allocate()
	b := s.Allocate()
	if a == b {
		t.Fatalf("expected distinct ids, got %v twice", a)
	}
	if b != a+1 {
		t.Fatalf("expected monotonic allocation, got %v then %v", a, b)
	}
}

func TestSnapshotNormalizeOrdersAndDedupes(t *testing.T) {
	s := NewSnapshot()
	s.Activities = []Activity{{ID: 2, Name: "Exercise"}, {ID: 0, Name: "Read"}}
	d := date(2024, time.March, 5)
	s.Days[d] = &Day{Completed: []ID{2, 0, 2}}
	s.Days[date(2024, time.March, 6)] = &Day{}

	s.Normalize()

	if s.Activities[0].ID != 0 || s.Activities[1].ID != 2 {
		t.Fatalf("expected activities ordered by id, got %v", s.Activities)
	}
	if s.NextID != 3 {
		t.Fatalf("expected NextID 3, got %v", s.NextID)
	}
	day := s.Days[d]
	if day == nil || len(day.Completed) != 2 || day.Completed[0] != 0 || day.Completed[1] != 2 {
		t.Fatalf("expected deduped sorted set, got %+v", day)
	}
	if day.Date != d {
		t.Fatalf("expected day date restored to %s, got %s", d, day.Date)
	}
	if _, ok := s.Days[date(2024, time.March, 6)]; ok {
		t.Fatal("expected empty day dropped")
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	s := NewSnapshot()
	s.Activities = []Activity{{ID: 0, Name: "Read"}}
	s.NextID = 1
	d := date(2024, time.January, 1)
	s.Day(d).Toggle(0)

	cp := s.Clone()
	cp.Activities[0].Name = "changed"
	cp.Day(d).Toggle(0)

	if s.Activities[0].Name != "Read" {
		t.Fatal("clone should not share the activity slice")
	}
	if !s.Day(d).Has(0) {
		t.Fatal("clone should not share day records")
	}
}

func TestParseIDRoundTrip(t *testing.T) {
	id := ID(41)
	parsed, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != id {
		t.Fatalf("expected %v, got %v", id, parsed)
	}
	if _, err := ParseID("x"); err == nil {
		t.Fatal("expected error for invalid id")
	}
}
