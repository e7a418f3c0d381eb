// Package track provides the runner that toggles completion of an activity
// for a date from the command line.
package track

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/printers"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Track toggles completion of an activity, addressed by name or, when ID is
// set, by its identifier.
type Track struct {
	Name        string
	ID          string
	On          timeutil.Date // zero value means today
	Persistence store.Persistence
}

// Do flips the completion mark, persists, and reprints the month summary.
func (n *Track) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not track, no persistence")
	}

	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	a, err := svc.Resolve(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	on := n.On
	if on.IsZero() {
		on = timeutil.Today()
	}

	done, err := svc.Toggle(ctx, a.ID, on)
	if err != nil {
		return err
	}
	if err := svc.Save(ctx); err != nil {
		return err
	}

	fmt.Println("")
	if done {
		_, _ = color.New(color.FgGreen).Fprintf(color.Output, "✔ %s on %s\n\n", a.Name, on)
	} else {
		_, _ = color.New(color.Faint).Fprintf(color.Output, "― %s on %s\n\n", a.Name, on)
	}

	pp := printers.PrettyPrint{}
	pp.Tracking(svc.History(ctx))
	return nil
}
