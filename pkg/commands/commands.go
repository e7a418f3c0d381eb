package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/commands/options"
	teaui "github.com/DevinLeamy/Daila/pkg/runner/tea"
	"github.com/DevinLeamy/Daila/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daila",
		Short: base.Wrap80("Track daily activities in your terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation opens the interactive view.
			return runUI(cmd.Context())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addTrack(topLevel)
	addRemove(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

func runUI(ctx context.Context) error {
	p, err := store.Open(nil)
	if err != nil {
		return err
	}
	svc := app.New(p)
	if err := svc.Load(ctx); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return teaui.Run(ctx, svc)
}
