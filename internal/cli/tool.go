package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

// ToolAddOptions holds flags for the tool add command.
type ToolAddOptions struct {
	Shape        string
	Units        string
	Length       float64
	Diameter     float64
	Angle        float64
	Direction    string
	SpindleSpeed float64
	FeedRate     float64
}

// NewToolCommand creates the tool command group over the catalog.
func NewToolCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage the tool catalog",
	}

	cmd.AddCommand(newToolAddCommand(rootOpts))
	cmd.AddCommand(newToolListCommand(rootOpts))
	cmd.AddCommand(newToolRemoveCommand(rootOpts))

	return cmd
}

func newToolAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ToolAddOptions{}

	cmd := &cobra.Command{
		Use:           "add <name>",
		Short:         "Store a tool in the catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolAdd(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Shape, "shape", "cylindrical", "cutter shape (cylindrical|ballnose|conical)")
	cmd.Flags().StringVar(&opts.Units, "units", "metric", "tool units (metric|imperial)")
	cmd.Flags().Float64Var(&opts.Length, "length", 0, "cutter length")
	cmd.Flags().Float64Var(&opts.Diameter, "diameter", 0, "cutter diameter")
	cmd.Flags().Float64Var(&opts.Angle, "angle", 0, "tip angle in degrees, conical tools only")
	cmd.Flags().StringVar(&opts.Direction, "direction", "clockwise", "spindle direction (clockwise|counterclockwise)")
	cmd.Flags().Float64Var(&opts.SpindleSpeed, "spindle-speed", 0, "spindle speed in rpm")
	cmd.Flags().Float64Var(&opts.FeedRate, "feed-rate", 0, "feed rate in units per minute")

	return cmd
}

func runToolAdd(rootOpts *RootOptions, opts *ToolAddOptions, name string, cmd *cobra.Command) error {
	store, err := openCatalog(rootOpts)
	if err != nil {
		return err
	}
	defer store.Close()

	units := geom.Units(opts.Units)
	direction := geom.Direction(opts.Direction)

	var cutter tool.Tool
	switch tool.Shape(opts.Shape) {
	case tool.ShapeCylindrical:
		cutter = tool.Cylindrical(units, opts.Length, opts.Diameter, direction, opts.SpindleSpeed, opts.FeedRate)
	case tool.ShapeBallnose:
		cutter = tool.Ballnose(units, opts.Length, opts.Diameter, direction, opts.SpindleSpeed, opts.FeedRate)
	case tool.ShapeConical:
		cutter = tool.Conical(units, opts.Angle, opts.Diameter, direction, opts.SpindleSpeed, opts.FeedRate)
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown shape %q", opts.Shape))
	}

	if err := store.Put(cmd.Context(), name, cutter); err != nil {
		return WrapExitError(ExitCommandError, "store tool", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "stored %s: %s\n", name, cutter)
	return nil
}

func newToolListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the tools in the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCatalog(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "list tools", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "catalog is empty")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s: %s\n", entry.Name, entry.Tool)
			}
			return nil
		},
	}
}

func newToolRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rm <name>",
		Short:         "Remove a tool from the catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCatalog(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "remove tool", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}
