package cli

import (
	"github.com/dalemusser/datavizz/internal/app/system/insights"
	"github.com/spf13/cobra"
)

func newFiltersCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Print the selectable values of every dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.loadData(cmd); err != nil {
				return err
			}
			records, _ := s.prov.Data()
			return s.write(cmd, insights.FilterOptions(records))
		},
	}
}
