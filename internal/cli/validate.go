package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tirithen/cnccoder/internal/cut"
	"github.com/tirithen/cnccoder/internal/program"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <job.yaml>",
		Short: "Check a job file without writing any output",
		Long: `Compile a job file in memory and report its work area and tool
usage. Nothing is written to disk, so validate gives fast feedback
while editing a job.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	p, err := loadJob(cmd.Context(), rootOpts, path)
	if err != nil {
		return err
	}

	// A dry render surfaces unsafe travel heights and impossible
	// geometry the same way compile would.
	if _, err := p.ToGcode(); err != nil {
		var geometryErr *cut.GeometryError
		switch {
		case program.IsSafetyError(err):
			return WrapExitError(ExitFailure, "unsafe program", err)
		case errors.As(err, &geometryErr):
			return WrapExitError(ExitFailure, "impossible geometry", err)
		}
		return WrapExitError(ExitFailure, "render program", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s is valid\n", path)
	printSummary(out, p)
	return nil
}
