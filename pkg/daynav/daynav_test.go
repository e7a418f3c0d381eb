package daynav

import (
	"testing"
	"time"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

func TestNextThenPreviousReturnsToStart(t *testing.T) {
	start := timeutil.Date{Year: 2024, Month: time.January, Day: 1}
	c := NewAt(start)

	c.Next()
	if got := c.Viewed(); got.String() != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %s", got)
	}
	c.Previous()
	if got := c.Viewed(); got != start {
		t.Fatalf("expected %s after next/previous, got %s", start, got)
	}
}

func TestPreviousIsUnbounded(t *testing.T) {
	c := NewAt(timeutil.Date{Year: 2024, Month: time.January, Day: 1})
	c.Previous()
	if got := c.Viewed(); got.String() != "2023-12-31" {
		t.Fatalf("expected 2023-12-31, got %s", got)
	}
}

func TestTodayResets(t *testing.T) {
	c := NewAt(timeutil.Date{Year: 2020, Month: time.June, Day: 15})
	if c.OnToday() {
		t.Fatal("cursor should start away from today")
	}
	c.Today()
	if c.Viewed() != timeutil.Today() {
		t.Fatalf("expected today, got %s", c.Viewed())
	}
	if !c.OnToday() {
		t.Fatal("expected OnToday after reset")
	}
}

func TestNewStartsOnToday(t *testing.T) {
	if got := New().Viewed(); got != timeutil.Today() {
		t.Fatalf("expected today, got %s", got)
	}
}
