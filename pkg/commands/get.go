package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/DevinLeamy/Daila/pkg/commands/options"
	"github.com/DevinLeamy/Daila/pkg/runner/get"
	"github.com/DevinLeamy/Daila/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "get [activities|log]",
		Short: "print activities or the completion log",
		Example: `
daila get
daila get activities --on 2026-2-28
daila get log --year
`,
		ValidArgs: []string{"activities", "log"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expects at most one of: activities, log")
			}
			if len(args) == 1 {
				switch args[0] {
				case "activities":
				case "log":
					lo.Log = true
				default:
					return errors.New("unknown view " + args[0])
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Log:         lo.Log,
				Year:        lo.Year,
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, oo)
	options.AddLogArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
