package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDatePadded(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Date{Year: 2024, Month: time.January, Day: 2}
	if d != want {
		t.Fatalf("expected %v, got %v", want, d)
	}
}

func TestParseDateLoose(t *testing.T) {
	d, err := ParseDate("2024-1-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %s", d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("not a date"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestAddDaysCrossesMonthBoundary(t *testing.T) {
	d := Date{Year: 2024, Month: time.January, Day: 31}
	if got := d.Next(); got.String() != "2024-02-01" {
		t.Fatalf("expected 2024-02-01, got %s", got)
	}
	if got := d.Next().Previous(); got != d {
		t.Fatalf("next then previous should return to %s, got %s", d, got)
	}
}

func TestAddDaysCrossesYearBoundary(t *testing.T) {
	d := Date{Year: 2023, Month: time.December, Day: 31}
	if got := d.Next(); got.String() != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", got)
	}
}

func TestDaysSince(t *testing.T) {
	start := Date{Year: 2024, Month: time.January, Day: 1}
	end := Date{Year: 2024, Month: time.March, Day: 1}
	if got := end.DaysSince(start); got != 60 {
		t.Fatalf("expected 60 days in leap year span, got %d", got)
	}
	if got := start.DaysSince(end); got != -60 {
		t.Fatalf("expected -60, got %d", got)
	}
}

func TestDaysSinceAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	restore := time.Local
	time.Local = loc
	defer func() { time.Local = restore }()

	// 2024-03-10 is the spring-forward date in America/New_York; local
	// midnights on either side are only 23 hours apart.
	start := Date{Year: 2024, Month: time.January, Day: 1}
	end := Date{Year: 2024, Month: time.July, Day: 1}
	if got := end.DaysSince(start); got != 182 {
		t.Fatalf("expected 182 days, got %d", got)
	}

	before := Date{Year: 2024, Month: time.March, Day: 9}
	after := Date{Year: 2024, Month: time.March, Day: 11}
	if got := after.DaysSince(before); got != 2 {
		t.Fatalf("expected 2 days across the transition, got %d", got)
	}
	if got := start.AddDays(end.DaysSince(start)); got != end {
		t.Fatalf("AddDays(DaysSince) should round trip, got %s", got)
	}
}

func TestBeforeAfter(t *testing.T) {
	a := Date{Year: 2024, Month: time.January, Day: 2}
	b := Date{Year: 2024, Month: time.February, Day: 1}
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if !b.After(a) {
		t.Fatalf("expected %s after %s", b, a)
	}
}

func TestDateAsJSONMapKey(t *testing.T) {
	in := map[Date]int{
		{Year: 2024, Month: time.January, Day: 1}: 2,
		{Year: 2024, Month: time.July, Day: 15}:   1,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := map[Date]int{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d keys, got %d", len(in), len(out))
	}
	for k, v := range in {
		if out[k] != v {
			t.Fatalf("key %s: expected %d, got %d", k, v, out[k])
		}
	}
}
