package cli

import (
	"github.com/dalemusser/datavizz/internal/app/system/insights"
	"github.com/spf13/cobra"
)

func newChartsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Print the chart inputs for a selection",
		Long: `Charts fetches the record set, applies the selection given by the
dimension flags (all of which must match) and prints the bar, line,
doughnut, polar-area, radar, pie and scatter inputs.

Example:
  datavizz-view charts
  datavizz-view charts --topic oil --region World -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := selectionFromFlags(cmd)
			view := insights.NewView(s.prov)

			loadErr := s.loadData(cmd)
			frame := view.Render(sel)
			if err := s.write(cmd, frame); err != nil {
				return err
			}
			return loadErr
		},
	}
	addSelectionFlags(cmd)
	return cmd
}

func addSelectionFlags(cmd *cobra.Command) {
	for _, d := range insights.Dimensions {
		cmd.Flags().String(string(d), "", "filter on "+d.Label())
	}
}

// selectionFromFlags constrains only the dimensions whose flag was given.
func selectionFromFlags(cmd *cobra.Command) insights.Selection {
	sel := insights.Selection{}
	for _, d := range insights.Dimensions {
		f := cmd.Flags().Lookup(string(d))
		if f != nil && f.Changed && f.Value.String() != "" {
			sel[d] = f.Value.String()
		}
	}
	return sel
}
