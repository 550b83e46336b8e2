package cli

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/program"
	"github.com/tirithen/cnccoder/internal/project"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	Resolution float64
	Out        string
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <job.yaml>",
		Short: "Compile a job file to G-code and a Camotics project",
		Long: `Compile a job file into a G-code program and a matching Camotics
simulation project, written side by side into the output directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Resolution, "resolution", 0.5, "simulation resolution, lower is more detailed")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "output directory")

	return cmd
}

func runCompile(rootOpts *RootOptions, opts *CompileOptions, path string, cmd *cobra.Command) error {
	p, err := loadJob(cmd.Context(), rootOpts, path)
	if err != nil {
		return err
	}

	stampMeta(p)

	if err := project.Write(p, opts.Resolution, opts.Out); err != nil {
		if program.IsSafetyError(err) {
			return WrapExitError(ExitFailure, "unsafe program", err)
		}
		return WrapExitError(ExitFailure, "write project", err)
	}

	gcodePath, camoticsPath := project.Files(p, opts.Out)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %s\n", gcodePath)
	fmt.Fprintf(out, "wrote %s\n", camoticsPath)
	printSummary(out, p)
	return nil
}

// stampMeta records who produced the program and how, so that the
// G-code header traces back to its origin.
func stampMeta(p *program.Program) {
	meta := p.Meta()
	meta.ID = uuid.New()
	meta.CreatedAt = time.Now().UTC()
	meta.CommandLine = strings.Join(os.Args, " ")
	if current, err := user.Current(); err == nil {
		meta.Author = current.Username
	}
	if host, err := os.Hostname(); err == nil {
		meta.Host = host
	}
	p.SetMeta(meta)
}

func printSummary(out io.Writer, p *program.Program) {
	bounds := p.Bounds()
	units := p.Units()
	if !bounds.IsEmpty() {
		size := bounds.Size()
		fmt.Fprintf(out, "work area: %v x %v x %v %s\n",
			geom.Round(size.X), geom.Round(size.Y), geom.Round(size.Z), units)
	}
	fmt.Fprintf(out, "tools: %d\n", len(p.Tools()))
}
