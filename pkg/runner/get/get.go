// Package get provides runners that print activities and completion logs.
package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/printers"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Get prints the activity list for one date, or the completion log.
type Get struct {
	ShowID      bool
	Log         bool
	Year        bool
	On          timeutil.Date // zero value means today
	Persistence store.Persistence
}

// Do loads state and renders the requested view to stdout.
func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Log {
		counts := svc.History(ctx)
		if n.Year {
			pp.TrackingYear(counts)
		} else {
			pp.Tracking(counts)
		}
		return nil
	}

	on := n.On
	if on.IsZero() {
		on = timeutil.Today()
	}

	all := svc.Activities(ctx)
	pp.TitleWithCount(on.String(), len(all))
	pp.Activities(all, svc.Completed(ctx, on))
	return nil
}
