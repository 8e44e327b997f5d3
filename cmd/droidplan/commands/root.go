// Package commands implements the CLI commands for droidplan.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/droidplan/internal/adapters/catalog" //nolint:depguard // --set parsing
	"go.trai.ch/droidplan/internal/app"
	"go.trai.ch/droidplan/internal/build"
	"go.trai.ch/droidplan/internal/core/domain"
)

// CLI represents the command line interface for droidplan.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir       string
	overrides []string
	jsonLog   bool
	verbose   bool
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) (*domain.BuildPlan, error)
	Validate(ctx context.Context, opts app.ProjectOptions) error
	Variants(ctx context.Context, opts app.VariantsOptions) error
	ConfigureLogging(json, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "droidplan",
		Short:         "Resolve Flutter Android build configurations into reproducible build plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.dir, "dir", "C", ".", "Directory to search droidplan.yaml from")
	flags.StringArrayVar(&c.overrides, "set", nil, "Override a tooling catalog value (key=value, repeatable)")
	flags.BoolVar(&c.jsonLog, "json-log", false, "Write logs as JSON")
	flags.BoolVar(&c.verbose, "verbose", false, "Show debug logs")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(c.jsonLog, c.verbose)
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newVariantsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// projectOptions collects the global flags shared by every project command.
func (c *CLI) projectOptions(registryDir string) (app.ProjectOptions, error) {
	overrides, err := catalog.ParseOverrides(c.overrides)
	if err != nil {
		return app.ProjectOptions{}, err
	}
	return app.ProjectOptions{
		Dir:         c.dir,
		Overrides:   overrides,
		RegistryDir: registryDir,
	}, nil
}
