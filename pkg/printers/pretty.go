// Package printers renders activities and completion history for the
// non-interactive CLI commands.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/DevinLeamy/Daila/pkg/activity"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " activity")
	default:
		_, _ = c.Fprintln(color.Output, " activities")
	}
}

// Activities prints the active list with completion marks for one date.
func (pp *PrettyPrint) Activities(all []activity.Activity, completed map[activity.ID]bool) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	done := color.New(color.FgGreen)
	open := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint(""), bold.Sprint("Activity"))
	} else {
		tbl.AddRow(bold.Sprint(""), bold.Sprint("Activity"))
	}
	for _, a := range all {
		mark := open.Sprint("―")
		name := a.Name
		if completed[a.ID] {
			mark = done.Sprint("✔")
			name = done.Sprint(a.Name)
		}
		if pp.ShowID {
			tbl.AddRow(a.ID.String(), mark, name)
		} else {
			tbl.AddRow(mark, name)
		}
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}
