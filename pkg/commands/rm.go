package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevinLeamy/Daila/pkg/commands/options"
	"github.com/DevinLeamy/Daila/pkg/runner/remove"
	"github.com/DevinLeamy/Daila/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	fo := &options.ForceOptions{}
	io := &options.IDOptions{}
	var name string

	cmd := &cobra.Command{
		Use:     "rm <activity>",
		Aliases: []string{"remove", "delete"},
		Short:   "delete an activity, keeping its history",
		Example: `
daila rm Exercise
daila rm Exercise --force
daila rm --id 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				if io.ID != "" {
					return nil
				}
				return errors.New("requires an activity name or --id")
			}
			name = strings.Join(args, " ")
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return activityCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				Name:        name,
				ID:          io.ID,
				Force:       fo.Force,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddForceArgs(cmd, fo)
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
