package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Log  bool
	Year bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVarP(&o.Log, "log", "l", false,
		"Show the completion log instead of the activity list.")
	cmd.Flags().BoolVarP(&o.Year, "year", "y", false,
		"Show the full year log.")
}
