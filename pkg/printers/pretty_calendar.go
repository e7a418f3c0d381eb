package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Tracking prints the current month with completion counts highlighted.
func (pp *PrettyPrint) Tracking(counts map[timeutil.Date]int) {
	pp.PrintMonth(time.Now(), counts)
}

// TrackingYear prints every month of the current year.
func (pp *PrettyPrint) TrackingYear(counts map[timeutil.Date]int) {
	now := time.Now()
	then := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < 12; i++ {
		pp.PrintMonth(then, counts)
		then = NextMonth(then)
	}
}

// PrintMonth renders one month; days with at least one completion are bold.
func (pp *PrettyPrint) PrintMonth(then time.Time, counts map[timeutil.Date]int) {
	days := DaysIn(then)
	count := make([]int, days)

	for i := 0; i < days; i++ {
		d := timeutil.Date{Year: then.Year(), Month: then.Month(), Day: i + 1}
		count[i] = counts[d]
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(color.Output, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(color.Output, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(color.Output, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(color.Output, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(color.Output, "\n")
		}
	}
	_, _ = fmt.Fprint(color.Output, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
