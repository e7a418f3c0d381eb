// Package activity defines the tracked activity model and the snapshot of
// application state that gets persisted.
package activity

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// ID identifies an activity. IDs are allocated monotonically and never
// reused, so historical day records stay bound to the activity they were
// recorded against even after it is deleted.
type ID uint32

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses the decimal form produced by String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("activity: parse id %q: %w", s, err)
	}
	return ID(v), nil
}

// Activity is a user-defined daily habit.
type Activity struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Day records which activities were completed on a single date. The
// completed list is kept sorted and free of duplicates.
type Day struct {
	Date      timeutil.Date `json:"date"`
	Completed []ID          `json:"completed"`
}

// Has reports whether id is marked completed.
func (d *Day) Has(id ID) bool {
	for _, c := range d.Completed {
		if c == id {
			return true
		}
	}
	return false
}

// Toggle flips completion of id and reports whether it is now completed.
func (d *Day) Toggle(id ID) bool {
	for i, c := range d.Completed {
		if c == id {
			d.Completed = append(d.Completed[:i], d.Completed[i+1:]...)
			return false
		}
	}
	d.Completed = append(d.Completed, id)
	sort.Slice(d.Completed, func(i, j int) bool { return d.Completed[i] < d.Completed[j] })
	return true
}

// Empty reports whether nothing was completed on this day.
func (d *Day) Empty() bool {
	return len(d.Completed) == 0
}

func (d *Day) clone() *Day {
	cp := &Day{Date: d.Date}
	cp.Completed = append([]ID(nil), d.Completed...)
	return cp
}

// Snapshot is the complete application state: the ordered activity list and
// every recorded day. The slice order is the display order; new activities
// are appended, deleted ones removed in place.
type Snapshot struct {
	Activities []Activity
	Days       map[timeutil.Date]*Day
	NextID     ID
}

// NewSnapshot returns an empty snapshot ready for use.
func NewSnapshot() *Snapshot {
	return &Snapshot{Days: make(map[timeutil.Date]*Day)}
}

// Clone deep-copies the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	cp := NewSnapshot()
	cp.Activities = append([]Activity(nil), s.Activities...)
	cp.NextID = s.NextID
	for date, day := range s.Days {
		cp.Days[date] = day.clone()
	}
	return cp
}

// Find returns the activity with the given id.
func (s *Snapshot) Find(id ID) (Activity, bool) {
	for _, a := range s.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// Day returns the record for date, creating it when absent. Absent dates
// mean nothing was completed.
func (s *Snapshot) Day(date timeutil.Date) *Day {
	if s.Days == nil {
		s.Days = make(map[timeutil.Date]*Day)
	}
	day, ok := s.Days[date]
	if !ok {
		day = &Day{Date: date}
		s.Days[date] = day
	}
	return day
}

// Allocate hands out the next unused id.
func (s *Snapshot) Allocate() ID {
	id := s.NextID
	s.NextID++
	return id
}

// Normalize restores snapshot invariants after loading from storage: the
// activity list ordered by id (ids are monotonic, so this is creation
// order), day sets sorted and de-duplicated, empty days dropped, and NextID
// beyond every id seen anywhere in the snapshot.
func (s *Snapshot) Normalize() {
	sort.Slice(s.Activities, func(i, j int) bool { return s.Activities[i].ID < s.Activities[j].ID })
	for _, a := range s.Activities {
		if a.ID >= s.NextID {
			s.NextID = a.ID + 1
		}
	}
	if s.Days == nil {
		s.Days = make(map[timeutil.Date]*Day)
	}
	for date, day := range s.Days {
		if day == nil || day.Empty() {
			delete(s.Days, date)
			continue
		}
		day.Date = date
		sort.Slice(day.Completed, func(i, j int) bool { return day.Completed[i] < day.Completed[j] })
		dedup := day.Completed[:0]
		for _, id := range day.Completed {
			if n := len(dedup); n > 0 && id == dedup[n-1] {
				continue
			}
			dedup = append(dedup, id)
			if id >= s.NextID {
				s.NextID = id + 1
			}
		}
		day.Completed = dedup
	}
}
