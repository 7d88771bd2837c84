package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/probeworks/phmeter/internal/titration"
)

// MeasureOptions holds flags for the measure command.
type MeasureOptions struct {
	*RootOptions
	Solution      string
	Concentration float64
	BufferAcid    float64
	BufferBase    float64
}

// NewMeasureCommand creates the measure command: select a solution, insert
// the probe, report the pH.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MeasureOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure the pH of a solution",
		Long: `Select a solution, optionally set its concentration, and report the
equilibrium measurement without titrating.

Example:
  phmeter measure --solution HCl --conc 0.01
  phmeter measure --solution "NH4Cl" --conc 0.05 --format json
  phmeter measure --solution "Acetic Acid / Sodium Acetate" --acid 0.1 --base 0.1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Solution, "solution", "", "solution name or formula (required)")
	cmd.Flags().Float64Var(&opts.Concentration, "conc", 0, "analyte concentration, mol/L")
	cmd.Flags().Float64Var(&opts.BufferAcid, "acid", 0, "buffer acid component concentration, mol/L")
	cmd.Flags().Float64Var(&opts.BufferBase, "base", 0, "buffer base component concentration, mol/L")
	_ = cmd.MarkFlagRequired("solution")

	return cmd
}

func runMeasure(opts *MeasureOptions, cmd *cobra.Command) error {
	catalog, err := loadCatalog(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	bench := titration.NewBench(catalog, titration.WithLogger(benchLogger(opts.Verbose)))
	if _, err := bench.Apply(titration.SelectSolution{Name: opts.Solution}); err != nil {
		return WrapExitError(ExitCommandError, "selecting solution", err)
	}
	if opts.BufferAcid > 0 || opts.BufferBase > 0 {
		if _, err := bench.Apply(titration.SetBufferConcentrations{Acid: opts.BufferAcid, Base: opts.BufferBase}); err != nil {
			return WrapExitError(ExitCommandError, "setting buffer concentrations", err)
		}
	}
	if opts.Concentration > 0 {
		if _, err := bench.Apply(titration.SetConcentration{Value: opts.Concentration}); err != nil {
			return WrapExitError(ExitCommandError, "setting concentration", err)
		}
	}

	res, err := bench.Apply(titration.InsertProbe{})
	if err != nil {
		return WrapExitError(ExitCommandError, "measuring", err)
	}
	return out.Measurement(res)
}

// benchLogger returns a text slog logger on stderr when verbose, a
// discarding one otherwise.
func benchLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
