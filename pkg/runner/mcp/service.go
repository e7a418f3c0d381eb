// Package mcp provides the Model Context Protocol server integration for daila.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/DevinLeamy/Daila/pkg/activity"
	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Service coordinates persistence-backed operations that are shared by the MCP server.
type Service struct {
	Persistence store.Persistence

	mu  sync.Mutex
	svc *app.Service
}

// ActivityDTO is a transport-friendly projection of an activity.
type ActivityDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed,omitempty"`
}

// DayDTO describes the completion state for a single date.
type DayDTO struct {
	Date       string        `json:"date"`
	Activities []ActivityDTO `json:"activities"`
	Count      int           `json:"count"`
}

// LogDTO summarizes completion counts over a span of dates.
type LogDTO struct {
	Year int            `json:"year"`
	Days map[string]int `json:"days"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

// fresh reloads state so concurrent edits from the CLI or TUI are visible.
func (s *Service) fresh(ctx context.Context) (*app.Service, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	if s.svc == nil {
		s.svc = app.New(s.Persistence)
	}
	if err := s.svc.Load(ctx); err != nil {
		return nil, err
	}
	return s.svc, nil
}

// ListActivities returns every tracked activity in display order, with
// completion marks for the requested date (defaults to today).
func (s *Service) ListActivities(ctx context.Context, on timeutil.Date) ([]ActivityDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, err
	}
	if on.IsZero() {
		on = timeutil.Today()
	}
	return toDTOs(svc.Activities(ctx), svc.Completed(ctx, on)), nil
}

// CreateActivity adds a new activity and persists it.
func (s *Service) CreateActivity(ctx context.Context, name string) (*ActivityDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, err
	}
	a, err := svc.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := svc.Save(ctx); err != nil {
		return nil, err
	}
	dto := toDTO(a, false)
	return &dto, nil
}

// RenameActivity changes an activity's name and persists the change.
func (s *Service) RenameActivity(ctx context.Context, id, name string) (*ActivityDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, err
	}
	aid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := svc.Rename(ctx, aid, name); err != nil {
		return nil, err
	}
	if err := svc.Save(ctx); err != nil {
		return nil, err
	}
	a, err := svc.Find(ctx, aid)
	if err != nil {
		return nil, err
	}
	dto := toDTO(a, false)
	return &dto, nil
}

// DeleteActivity removes an activity from the tracked set. Past completion
// records stay on disk.
func (s *Service) DeleteActivity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return err
	}
	aid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := svc.Delete(ctx, aid); err != nil {
		return err
	}
	return svc.Save(ctx)
}

// ToggleActivity flips the completion mark for an activity on a date and
// persists the result. It reports the new completion state.
func (s *Service) ToggleActivity(ctx context.Context, id, on string) (*ActivityDTO, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, "", err
	}
	aid, err := parseID(id)
	if err != nil {
		return nil, "", err
	}
	date, err := parseDate(on)
	if err != nil {
		return nil, "", err
	}

	done, err := svc.Toggle(ctx, aid, date)
	if err != nil {
		return nil, "", err
	}
	if err := svc.Save(ctx); err != nil {
		return nil, "", err
	}
	a, err := svc.Find(ctx, aid)
	if err != nil {
		return nil, "", err
	}
	dto := toDTO(a, done)
	return &dto, date.String(), nil
}

// Day returns the completion state for one date.
func (s *Service) Day(ctx context.Context, on string) (*DayDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(on)
	if err != nil {
		return nil, err
	}

	dto := DayDTO{
		Date:       date.String(),
		Activities: toDTOs(svc.Activities(ctx), svc.Completed(ctx, date)),
	}
	for _, a := range dto.Activities {
		if a.Completed {
			dto.Count++
		}
	}
	return &dto, nil
}

// Log returns per-date completion counts for a calendar year.
func (s *Service) Log(ctx context.Context, year int) (*LogDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = timeutil.Today().Year
	}

	out := LogDTO{Year: year, Days: map[string]int{}}
	for date, count := range svc.History(ctx) {
		if date.Year == year && count > 0 {
			out.Days[date.String()] = count
		}
	}
	return &out, nil
}

// FindActivity resolves an id or a case-insensitive name to an activity.
func (s *Service) FindActivity(ctx context.Context, ref string) (*ActivityDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, err := s.fresh(ctx)
	if err != nil {
		return nil, err
	}

	if aid, err := activity.ParseID(ref); err == nil {
		if a, err := svc.Find(ctx, aid); err == nil {
			dto := toDTO(a, false)
			return &dto, nil
		}
	}
	a, err := svc.Lookup(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app.ErrNotFound, ref)
	}
	dto := toDTO(a, false)
	return &dto, nil
}

func parseID(input string) (activity.ID, error) {
	id, err := activity.ParseID(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid activity id %q", input)
	}
	return id, nil
}

// parseDate accepts a YYYY-MM-DD value, defaulting to today when empty.
func parseDate(input string) (timeutil.Date, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return timeutil.Today(), nil
	}
	return timeutil.ParseDate(input)
}

func toDTOs(all []activity.Activity, completed map[activity.ID]bool) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(all))
	for _, a := range all {
		out = append(out, toDTO(a, completed[a.ID]))
	}
	return out
}

func toDTO(a activity.Activity, done bool) ActivityDTO {
	return ActivityDTO{
		ID:        a.ID.String(),
		Name:      a.Name,
		Completed: done,
	}
}
