package heatmap

import (
	"strings"
	"testing"
	"time"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

func date(y int, m time.Month, d int) timeutil.Date {
	return timeutil.Date{Year: y, Month: m, Day: d}
}

func TestNewCoversHighlightYear(t *testing.T) {
	m := New(nil, date(2024, time.June, 15))
	if m.Start != date(2024, time.January, 1) {
		t.Fatalf("expected year start, got %s", m.Start)
	}
	if m.End != date(2024, time.December, 31) {
		t.Fatalf("expected year end, got %s", m.End)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	m := New(nil, date(2024, time.January, 1))

	for _, d := range []timeutil.Date{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.March, 5),
		date(2024, time.December, 31),
	} {
		col, row, ok := m.Position(d)
		if !ok {
			t.Fatalf("expected %s inside range", d)
		}
		if got := m.DateAt(col, row); got != d {
			t.Fatalf("round trip of %s gave %s", d, got)
		}
	}
}

func TestPositionRoundTripInDSTZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	restore := time.Local
	time.Local = loc
	defer func() { time.Local = restore }()

	m := New(nil, date(2024, time.January, 1))
	for _, d := range []timeutil.Date{
		date(2024, time.March, 10), // spring forward
		date(2024, time.July, 1),
		date(2024, time.November, 3), // fall back
		date(2024, time.December, 31),
	} {
		col, row, ok := m.Position(d)
		if !ok {
			t.Fatalf("expected %s inside range", d)
		}
		if got := m.DateAt(col, row); got != d {
			t.Fatalf("round trip of %s gave %s", d, got)
		}
	}

	col, row, _ := m.Position(date(2024, time.July, 1))
	if col != 26 || row != 0 {
		t.Fatalf("expected (26,0) for Jul 1, got (%d,%d)", col, row)
	}
}

func TestPositionFillsColumnsFirst(t *testing.T) {
	m := New(nil, date(2024, time.January, 1))

	col, row, _ := m.Position(date(2024, time.January, 1))
	if col != 0 || row != 0 {
		t.Fatalf("expected (0,0) for Jan 1, got (%d,%d)", col, row)
	}
	col, row, _ = m.Position(date(2024, time.January, 7))
	if col != 0 || row != 6 {
		t.Fatalf("expected (0,6) for Jan 7, got (%d,%d)", col, row)
	}
	col, row, _ = m.Position(date(2024, time.January, 8))
	if col != 1 || row != 0 {
		t.Fatalf("expected (1,0) for Jan 8, got (%d,%d)", col, row)
	}
}

func TestPositionOutOfRange(t *testing.T) {
	m := New(nil, date(2024, time.January, 1))
	if _, _, ok := m.Position(date(2023, time.December, 31)); ok {
		t.Fatal("expected date before range to be rejected")
	}
	if _, _, ok := m.Position(date(2025, time.January, 1)); ok {
		t.Fatal("expected date after range to be rejected")
	}
}

func TestViewShape(t *testing.T) {
	m := New(map[timeutil.Date]int{
		date(2024, time.February, 2): 2,
	}, date(2024, time.February, 2))

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != m.Height() {
		t.Fatalf("expected %d lines, got %d", m.Height(), len(lines))
	}
}

func TestViewLabelsMonths(t *testing.T) {
	m := New(nil, date(2024, time.January, 1))
	out := m.View()
	top := strings.SplitN(out, "\n", 2)[0]
	for _, label := range []string{"Jan", "Feb", "Dec"} {
		if !strings.Contains(top, label) {
			t.Fatalf("expected month label %s in %q", label, top)
		}
	}
}

func TestViewDrawsMonthBorders(t *testing.T) {
	m := New(nil, date(2024, time.January, 1))
	out := m.View()
	if !strings.Contains(out, "│") {
		t.Fatal("expected month separators in grid body")
	}
}
