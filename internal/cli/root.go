// Package cli implements the cnccoder command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	// DB is the path of the tool catalog database. Empty means no
	// catalog is available.
	DB string
}

// NewRootCommand creates the root command for the cnccoder CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cnccoder",
		Short: "cnccoder - compile cutting jobs to G-code",
		Long: "Compiles declarative cutting job files into tool compensated,\n" +
			"depth layered G-code programs with matching Camotics simulation\n" +
			"projects.",
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path of the tool catalog database")

	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewToolCommand(opts))

	return cmd
}
