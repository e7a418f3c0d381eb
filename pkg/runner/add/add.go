// Package add provides the runner that defines a new activity.
package add

import (
	"context"
	"errors"

	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/printers"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Add defines a new activity and persists it immediately.
type Add struct {
	Name        string
	Persistence store.Persistence
}

// Do creates the activity and reprints the active list.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}
	if _, err := svc.Create(ctx, n.Name); err != nil {
		return err
	}
	if err := svc.Save(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	all := svc.Activities(ctx)
	pp.TitleWithCount(timeutil.Today().String(), len(all))
	pp.Activities(all, svc.Completed(ctx, timeutil.Today()))
	return nil
}
