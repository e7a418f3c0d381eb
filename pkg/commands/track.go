package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevinLeamy/Daila/pkg/commands/options"
	"github.com/DevinLeamy/Daila/pkg/runner/track"
	"github.com/DevinLeamy/Daila/pkg/store"
)

func addTrack(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "track <activity>",
		Short: "toggle completion of an activity",
		Example: `
daila track Exercise
daila track Exercise --on 2026-2-28
daila track --id 3
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
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s := track.Track{
				Name:        name,
				ID:          io.ID,
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
