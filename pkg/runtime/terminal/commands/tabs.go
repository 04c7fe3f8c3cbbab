package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/bureau-dashboard/pkg/render/charts"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

func NewTabsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List dashboard tabs and their charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tab := range dashboard.Tabs() {
				if _, err := fmt.Fprintf(out, "%-14s %-14s %v\n", tab, tab.Label(), charts.IDs(string(tab))); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
