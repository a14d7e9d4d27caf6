package cli

import (
	"github.com/dalemusser/datavizz/internal/app/system/insights"
	"github.com/spf13/cobra"
)

func newRecordsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the fetched records matching a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.loadData(cmd); err != nil {
				return err
			}
			records, _ := s.prov.Data()
			return s.write(cmd, insights.Filter(records, selectionFromFlags(cmd)))
		},
	}
	addSelectionFlags(cmd)
	return cmd
}
