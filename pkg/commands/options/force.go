package options

import (
	"github.com/spf13/cobra"
)

// ForceOptions
type ForceOptions struct {
	Force bool
}

func AddForceArgs(cmd *cobra.Command, o *ForceOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Skip the confirmation prompt.")
}
