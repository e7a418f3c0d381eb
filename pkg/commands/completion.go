package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevinLeamy/Daila/pkg/app"
	"github.com/DevinLeamy/Daila/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daila completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daila completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func activityCompletions(toComplete string) []string {
	p, err := store.Open(nil)
	if err != nil {
		return nil
	}
	ctx := context.Background()
	svc := app.New(p)
	if err := svc.Load(ctx); err != nil {
		return nil
	}

	var names []string
	for _, a := range svc.Activities(ctx) {
		if toComplete == "" || strings.HasPrefix(strings.ToLower(a.Name), strings.ToLower(toComplete)) {
			names = append(names, a.Name)
		}
	}
	return names
}
