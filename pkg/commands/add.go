package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevinLeamy/Daila/pkg/commands/options"
	"github.com/DevinLeamy/Daila/pkg/runner/add"
	"github.com/DevinLeamy/Daila/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	var name string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "add a new activity",
		Example: `
daila add Exercise
daila add "Read a book"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an activity name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Name:        name,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
