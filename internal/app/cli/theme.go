package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func newThemeCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), themeName(s.prov.Dark()))
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dark, err := s.prov.ToggleTheme()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), themeName(dark))
			return err
		},
	})
	return cmd
}
