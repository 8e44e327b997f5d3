package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/droidplan/internal/app"
)

func (c *CLI) newVariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the declared build variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")

			project, err := c.projectOptions("")
			if err != nil {
				return err
			}
			return c.app.Variants(cmd.Context(), app.VariantsOptions{
				ProjectOptions: project,
				Format:         format,
				Output:         cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringP("format", "o", "text", "Output format: text, json or yaml")
	return cmd
}
