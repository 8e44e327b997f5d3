package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/droidplan/internal/app"
	"go.trai.ch/droidplan/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the build plan of a variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, _ := cmd.Flags().GetString("variant")
			format, _ := cmd.Flags().GetString("format")
			registry, _ := cmd.Flags().GetString("registry")
			writeLock, _ := cmd.Flags().GetBool("write-lock")
			check, _ := cmd.Flags().GetBool("check")

			project, err := c.projectOptions(registry)
			if err != nil {
				return err
			}

			_, err = c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ProjectOptions: project,
				Variant:        variant,
				Format:         format,
				Output:         cmd.OutOrStdout(),
				WriteLock:      writeLock,
				Check:          check,
			})
			return err
		},
	}
	cmd.Flags().String("variant", domain.DebugBuildType, "Build type to resolve")
	cmd.Flags().StringP("format", "o", "text", "Output format: text, json or yaml")
	cmd.Flags().String("registry", "", "Directory of platform manifests (overrides registry.dir)")
	cmd.Flags().Bool("write-lock", false, "Record the resolved plan in "+domain.LockFileName)
	cmd.Flags().Bool("check", false, "Fail if the resolved plan differs from "+domain.LockFileName)
	return cmd
}
