// Package remove provides the runner that deletes an activity definition.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/printers"
	"github.com/DevinLeamy/Daila/pkg/store"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Remove deletes an activity, addressed by name or, when ID is set, by its
// identifier. Historical day records are kept.
type Remove struct {
	Name        string
	ID          string
	Force       bool
	Persistence store.Persistence
}

// Do confirms, deletes, persists, and reprints the active list.
func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	svc := app.New(n.Persistence)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	a, err := svc.Resolve(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	if !n.Force {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete %q (completion history is kept)", a.Name),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
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
