package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/de-tools/bureau-dashboard/pkg/runtime/terminal/export"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

// ControllerFactory loads the fixtures and returns a controller over them.
type ControllerFactory func(ctx context.Context) (dashboard.Controller, error)

type RenderCmd struct {
	tab      string
	format   string
	open     ControllerFactory
	reporter *export.Reporter
}

func NewRenderCmd(open ControllerFactory, reporter *export.Reporter) *cobra.Command {
	rc := &RenderCmd{open: open, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one dashboard tab",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.tab, "tab", string(dashboard.DefaultTab), "Tab to render")
	cmd.Flags().StringVar(&rc.format, "format", export.FormatTable,
		"Output format ("+strings.Join(export.Formats, ", ")+")")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	tab, err := dashboard.ParseTab(rc.tab)
	if err != nil {
		return err
	}
	if !slices.Contains(export.Formats, rc.format) {
		return fmt.Errorf("unsupported format %q (want one of %s)", rc.format, strings.Join(export.Formats, ", "))
	}

	ctrl, err := rc.open(cmd.Context())
	if err != nil {
		return err
	}

	view, err := ctrl.Render(tab)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", tab, err)
	}

	return rc.reporter.Write(view, rc.format)
}
