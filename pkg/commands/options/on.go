package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

const layoutShort = "1/2"

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

func (o *OnOptions) GetOn() (timeutil.Date, error) {
	if o.OnString == "" {
		return timeutil.Today(), nil
	}
	if d, err := timeutil.ParseDate(o.OnString); err == nil {
		return d, nil
	}
	// Month/day only. Let the year be the current one.
	t, err := time.Parse(layoutShort, o.OnString)
	if err != nil {
		return timeutil.Date{}, err
	}
	return timeutil.Date{Year: time.Now().Year(), Month: t.Month(), Day: t.Day()}, nil
}
