package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every declared variant resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, _ := cmd.Flags().GetString("registry")

			project, err := c.projectOptions(registry)
			if err != nil {
				return err
			}
			return c.app.Validate(cmd.Context(), project)
		},
	}
	cmd.Flags().String("registry", "", "Directory of platform manifests (overrides registry.dir)")
	return cmd
}
