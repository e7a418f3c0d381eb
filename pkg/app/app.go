// Package app provides the high-level operations over activities and day
// records so the interactive view, the CLI runners, and the MCP surface can
// share logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/DevinLeamy/Daila/pkg/activity"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

var (
	// ErrNotFound is returned for operations that reference an activity id
	// that is not in the active list. Callers should treat it as a warning.
	ErrNotFound = errors.New("app: activity not found")
	// ErrDuplicateName is returned when a create or rename would produce
	// two activities with the same name.
	ErrDuplicateName = errors.New("app: activity name already in use")
	// ErrEmptyName is returned when a create or rename provides a blank name.
	ErrEmptyName = errors.New("app: activity name required")
)

// Service owns the in-memory snapshot. Mutations apply in memory only;
// nothing reaches disk until Save. The mutex is here because bubbletea
// commands and the MCP server may call in from other goroutines.
type Service struct {
	mu          sync.Mutex
	persistence store.Persistence
	snap        *activity.Snapshot
	dirty       bool
}

// New returns a Service over the given persistence. Call Load before use.
func New(p store.Persistence) *Service {
	return &Service{persistence: p, snap: activity.NewSnapshot()}
}

// Load replaces the in-memory state with the persisted snapshot.
func (s *Service) Load(ctx context.Context) error {
	if s.persistence == nil {
		return errors.New("app: no persistence configured")
	}
	snap, err := s.persistence.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snap = snap
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// Save writes the current snapshot through to persistence.
func (s *Service) Save(ctx context.Context) error {
	if s.persistence == nil {
		return errors.New("app: no persistence configured")
	}
	s.mu.Lock()
	snap := s.snap.Clone()
	s.mu.Unlock()
	if err := s.persistence.Save(ctx, snap); err != nil {
		return err
	}
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// Dirty reports whether there are unsaved changes.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.persistence.Watch(ctx)
}

// Activities returns the active list in display order.
func (s *Service) Activities(ctx context.Context) []activity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]activity.Activity(nil), s.snap.Activities...)
}

// Find returns the activity with the given id.
func (s *Service) Find(ctx context.Context, id activity.ID) (activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.snap.Find(id)
	if !ok {
		return activity.Activity{}, ErrNotFound
	}
	return a, nil
}

// Lookup returns the activity whose name matches, ignoring case.
func (s *Service) Lookup(ctx context.Context, name string) (activity.Activity, error) {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.snap.Activities {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return activity.Activity{}, ErrNotFound
}

// Resolve finds an activity by its decimal id when id is non-empty,
// otherwise by case-insensitive name.
func (s *Service) Resolve(ctx context.Context, id, name string) (activity.Activity, error) {
	if id = strings.TrimSpace(id); id != "" {
		aid, err := activity.ParseID(id)
		if err != nil {
			return activity.Activity{}, err
		}
		a, err := s.Find(ctx, aid)
		if err != nil {
			return activity.Activity{}, fmt.Errorf("no activity with id %s: %w", id, err)
		}
		return a, nil
	}
	a, err := s.Lookup(ctx, name)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("no activity named %q: %w", name, err)
	}
	return a, nil
}

// Create appends a new activity with a fresh id.
func (s *Service) Create(ctx context.Context, name string) (activity.Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return activity.Activity{}, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(name, 0, false) {
		return activity.Activity{}, ErrDuplicateName
	}
	a := activity.Activity{ID: s.snap.Allocate(), Name: name}
	s.snap.Activities = append(s.snap.Activities, a)
	s.dirty = true
	return a, nil
}

// Rename changes the display name of an existing activity.
func (s *Service) Rename(ctx context.Context, id activity.ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(name, id, true) {
		return ErrDuplicateName
	}
	for i := range s.snap.Activities {
		if s.snap.Activities[i].ID == id {
			s.snap.Activities[i].Name = name
			s.dirty = true
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the activity from the active list. Historical day records
// keep the id; they describe what happened, not what exists now.
func (s *Service) Delete(ctx context.Context, id activity.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Activities {
		if s.snap.Activities[i].ID == id {
			s.snap.Activities = append(s.snap.Activities[:i], s.snap.Activities[i+1:]...)
			s.dirty = true
			return nil
		}
	}
	return ErrNotFound
}

// Toggle flips completion of the activity for the given date and reports
// whether it is now completed.
func (s *Service) Toggle(ctx context.Context, id activity.ID, date timeutil.Date) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snap.Find(id); !ok {
		return false, ErrNotFound
	}
	done := s.snap.Day(date).Toggle(id)
	s.dirty = true
	return done, nil
}

// Completed returns the set of active activity ids completed on date.
func (s *Service) Completed(ctx context.Context, date timeutil.Date) map[activity.ID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[activity.ID]bool)
	day, ok := s.snap.Days[date]
	if !ok {
		return out
	}
	for _, id := range day.Completed {
		out[id] = true
	}
	return out
}

// History returns the completion count per recorded date, for the heatmap
// and the month views. Counts include ids of since-deleted activities.
func (s *Service) History(ctx context.Context) map[timeutil.Date]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[timeutil.Date]int, len(s.snap.Days))
	for date, day := range s.snap.Days {
		if day == nil || day.Empty() {
			continue
		}
		out[date] = len(day.Completed)
	}
	return out
}

// nameTaken reports whether name collides with an existing activity,
// optionally excluding the activity being renamed.
func (s *Service) nameTaken(name string, exclude activity.ID, excluding bool) bool {
	for _, a := range s.snap.Activities {
		if excluding && a.ID == exclude {
			continue
		}
		if strings.EqualFold(a.Name, name) {
			return true
		}
	}
	return false
}
