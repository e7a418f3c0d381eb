package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DevinLeamy/Daila/pkg/activity"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// memoryPersistence keeps snapshots in memory for tests.
type memoryPersistence struct {
	mu    sync.Mutex
	snap  *activity.Snapshot
	saves int
}

func newMemoryPersistence(snap *activity.Snapshot) *memoryPersistence {
	if snap == nil {
		snap = activity.NewSnapshot()
	}
	return &memoryPersistence{snap: snap}
}

func (m *memoryPersistence) Load(_ context.Context) (*activity.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.snap.Clone()
	snap.Normalize()
	return snap, nil
}

func (m *memoryPersistence) Save(_ context.Context, snap *activity.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap.Clone()
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestService(t *testing.T, names ...string) (*Service, *memoryPersistence) {
	t.Helper()
	snap := activity.NewSnapshot()
	for _, name := range names {
		snap.Activities = append(snap.Activities, activity.Activity{ID: snap.Allocate(), Name: name})
	}
	mp := newMemoryPersistence(snap)
	svc := New(mp)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc, mp
}

func date(y int, m time.Month, d int) timeutil.Date {
	return timeutil.Date{Year: y, Month: m, Day: d}
}

func TestCreateAppendsInOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	read, err := svc.Create(ctx, "Read")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	exercise, err := svc.Create(ctx, "Exercise")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if read.ID == exercise.ID {
		t.Fatal("expected distinct ids")
	}

	all := svc.Activities(ctx)
	if len(all) != 2 || all[0].Name != "Read" || all[1].Name != "Exercise" {
		t.Fatalf("unexpected order: %+v", all)
	}
	if !svc.Dirty() {
		t.Fatal("create should mark state dirty")
	}
}

func TestCreateRejectsDuplicateAndEmptyNames(t *testing.T) {
	svc, _ := newTestService(t, "Read")
	ctx := context.Background()

	if _, err := svc.Create(ctx, "read"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := svc.Create(ctx, "   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestDeleteRemovesInPlace(t *testing.T) {
	svc, _ := newTestService(t, "Read", "Exercise")
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Meditate"); err != nil {
		t.Fatalf("create: %v", err)
	}
	read, err := svc.Lookup(ctx, "Read")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if err := svc.Delete(ctx, read.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all := svc.Activities(ctx)
	if len(all) != 2 || all[0].Name != "Exercise" || all[1].Name != "Meditate" {
		t.Fatalf("expected [Exercise Meditate], got %+v", all)
	}
	for _, a := range all {
		if a.ID == read.ID {
			t.Fatal("deleted id must not reappear in the active list")
		}
	}
	if err := svc.Delete(ctx, read.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeletedIDNeverReallocated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, "Read")
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	b, _ := svc.Create(ctx, "Exercise")
	if b.ID == a.ID {
		t.Fatalf("id %v was reused after delete", a.ID)
	}
}

func TestToggleTwiceRestoresOriginalSet(t *testing.T) {
	svc, _ := newTestService(t, "Read")
	ctx := context.Background()
	d := date(2024, time.January, 1)
	read, _ := svc.Lookup(ctx, "Read")

	done, err := svc.Toggle(ctx, read.ID, d)
	if err != nil || !done {
		t.Fatalf("expected first toggle to complete, got done=%v err=%v", done, err)
	}
	if !svc.Completed(ctx, d)[read.ID] {
		t.Fatal("expected Read completed")
	}

	done, err = svc.Toggle(ctx, read.ID, d)
	if err != nil || done {
		t.Fatalf("expected second toggle to clear, got done=%v err=%v", done, err)
	}
	if len(svc.Completed(ctx, d)) != 0 {
		t.Fatal("double toggle should restore the original set")
	}
}

func TestToggleUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Toggle(context.Background(), 99, date(2024, time.January, 1)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteKeepsHistory(t *testing.T) {
	svc, _ := newTestService(t, "Read")
	ctx := context.Background()
	d := date(2024, time.February, 2)
	read, _ := svc.Lookup(ctx, "Read")

	if _, err := svc.Toggle(ctx, read.ID, d); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Delete(ctx, read.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := svc.History(ctx)[d]; got != 1 {
		t.Fatalf("history should survive deletion, got count %d", got)
	}
}

func TestRename(t *testing.T) {
	svc, _ := newTestService(t, "Read", "Exercise")
	ctx := context.Background()
	read, _ := svc.Lookup(ctx, "Read")

	if err := svc.Rename(ctx, read.ID, "Study"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if _, err := svc.Lookup(ctx, "Study"); err != nil {
		t.Fatalf("renamed activity not found: %v", err)
	}
	if err := svc.Rename(ctx, read.ID, "exercise"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	// Renaming to its own name (case change) is allowed.
	if err := svc.Rename(ctx, read.ID, "study"); err != nil {
		t.Fatalf("rename to own name: %v", err)
	}
	if err := svc.Rename(ctx, 99, "Other"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveByIDAndByName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "Read", "Exercise")

	byID, err := svc.Resolve(ctx, "1", "")
	if err != nil || byID.Name != "Exercise" {
		t.Fatalf("expected Exercise for id 1, got %+v, %v", byID, err)
	}
	byName, err := svc.Resolve(ctx, "", "exercise")
	if err != nil || byName.ID != 1 {
		t.Fatalf("expected case-insensitive name match, got %+v, %v", byName, err)
	}
	// An explicit id wins over any name.
	a, err := svc.Resolve(ctx, "0", "Exercise")
	if err != nil || a.Name != "Read" {
		t.Fatalf("expected id to take precedence, got %+v, %v", a, err)
	}

	if _, err := svc.Resolve(ctx, "7", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	if _, err := svc.Resolve(ctx, "", "Meditate"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown name, got %v", err)
	}
	if _, err := svc.Resolve(ctx, "pizza", ""); err == nil {
		t.Fatal("expected error for a malformed id")
	}
}

func TestSaveLoadRoundTripScenario(t *testing.T) {
	// Start with ["Read", "Exercise"], toggle Exercise on 2024-01-01, save,
	// reload: the day record must equal {Exercise}.
	svc, mp := newTestService(t, "Read", "Exercise")
	ctx := context.Background()
	d := date(2024, time.January, 1)

	exercise, _ := svc.Lookup(ctx, "Exercise")
	if _, err := svc.Toggle(ctx, exercise.ID, d); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if svc.Dirty() {
		t.Fatal("save should clear dirty flag")
	}
	if mp.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", mp.saves)
	}

	fresh := New(mp)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	completed := fresh.Completed(ctx, d)
	if len(completed) != 1 || !completed[exercise.ID] {
		t.Fatalf("expected completed set {Exercise}, got %v", completed)
	}
	all := fresh.Activities(ctx)
	if len(all) != 2 || all[0].Name != "Read" || all[1].Name != "Exercise" {
		t.Fatalf("reloaded activities differ: %+v", all)
	}
}

func TestUnsavedChangesDoNotReachPersistence(t *testing.T) {
	svc, mp := newTestService(t, "Read")
	ctx := context.Background()
	read, _ := svc.Lookup(ctx, "Read")
	if _, err := svc.Toggle(ctx, read.ID, date(2024, time.June, 6)); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Quit without saving: a fresh service sees the old state.
	fresh := New(mp)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fresh.Completed(ctx, date(2024, time.June, 6))) != 0 {
		t.Fatal("unsaved toggle leaked into persistence")
	}
}
