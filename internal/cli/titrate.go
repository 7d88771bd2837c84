package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probeworks/phmeter/internal/harness"
	"github.com/probeworks/phmeter/internal/store"
	"github.com/probeworks/phmeter/internal/titration"
)

// TitrateOptions holds flags for the titrate command.
type TitrateOptions struct {
	*RootOptions
	Scenario string

	Solution   string
	Reagent    string
	Drops      int
	Titrant    float64
	BufferAcid float64
	BufferBase float64
	Database   string
}

// NewTitrateCommand creates the titrate command. Two modes:
//
//   - scenario mode (--scenario): run a YAML scenario through the
//     conformance harness and report pass/fail
//   - direct mode: titrate one solution with N drops of one reagent and
//     print the curve
func NewTitrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TitrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "titrate",
		Short: "Add titrant drop by drop and print the pH curve",
		Long: `Titrate a buffer or water with a standard strong acid or base.

Example:
  phmeter titrate --solution Water --reagent acid --drops 10
  phmeter titrate --solution "HC2H3O2 / NaC2H3O2" --reagent acid --drops 50 --titrant 0.5
  phmeter titrate --scenario testdata/acetate.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Scenario != "" {
				return runScenario(opts, cmd)
			}
			return runTitrate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "YAML scenario file to run")
	cmd.Flags().StringVar(&opts.Solution, "solution", "", "solution name or formula")
	cmd.Flags().StringVar(&opts.Reagent, "reagent", "acid", "titrant reagent (acid|base)")
	cmd.Flags().IntVar(&opts.Drops, "drops", 1, "number of drops to add")
	cmd.Flags().Float64Var(&opts.Titrant, "titrant", 0, "titrant molarity, mol/L (default 0.01)")
	cmd.Flags().Float64Var(&opts.BufferAcid, "acid", 0, "buffer acid component concentration, mol/L")
	cmd.Flags().Float64Var(&opts.BufferBase, "base", 0, "buffer base component concentration, mol/L")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the session to this SQLite trace database")

	return cmd
}

func runScenario(opts *TitrateOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	sc, err := harness.LoadScenario(opts.Scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading scenario", err)
	}
	result, err := harness.Run(sc)
	if err != nil {
		return WrapExitError(ExitCommandError, "running scenario", err)
	}

	if opts.Format == "json" {
		return out.Success(harness.Snapshot(sc, result))
	}
	if result.Pass {
		fmt.Fprintf(cmd.OutOrStdout(), "PASS %s (%d drops, final pH %.4f)\n",
			sc.Name, len(result.Curve), result.Final.PH)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", sc.Name)
	for _, f := range result.Failures {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	return &ExitError{Code: ExitFailure, Message: "scenario assertions failed"}
}

func runTitrate(opts *TitrateOptions, cmd *cobra.Command) error {
	if opts.Solution == "" {
		return &ExitError{Code: ExitCommandError, Message: "--solution is required without --scenario"}
	}
	if opts.Drops < 1 {
		return &ExitError{Code: ExitCommandError, Message: "--drops must be >= 1"}
	}
	catalog, err := loadCatalog(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}

	benchOpts := []titration.BenchOption{titration.WithLogger(benchLogger(opts.Verbose))}
	var sessionOpts []titration.SessionOption
	if opts.Titrant > 0 {
		sessionOpts = append(sessionOpts, titration.WithTitrant(opts.Titrant))
	}
	if opts.BufferAcid > 0 || opts.BufferBase > 0 {
		sessionOpts = append(sessionOpts, titration.WithBufferConcentrations(opts.BufferAcid, opts.BufferBase))
	}
	if len(sessionOpts) > 0 {
		benchOpts = append(benchOpts, titration.WithSessionDefaults(sessionOpts...))
	}
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "opening trace database", err)
		}
		defer st.Close()
		benchOpts = append(benchOpts, titration.WithRecorder(st))
	}

	bench := titration.NewBench(catalog, benchOpts...)
	if _, err := bench.Apply(titration.SelectSolution{Name: opts.Solution}); err != nil {
		return WrapExitError(ExitCommandError, "selecting solution", err)
	}
	initial, err := bench.Apply(titration.InsertProbe{})
	if err != nil {
		return WrapExitError(ExitCommandError, "inserting probe", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "text" {
		fmt.Fprintf(w, "drop %3d  pH %.4f\n", 0, initial.PH)
	}
	reagent := titration.Reagent(opts.Reagent)
	last := initial
	for i := 0; i < opts.Drops; i++ {
		res, err := bench.Apply(titration.AddDrop{Reagent: reagent})
		if err != nil {
			return WrapExitError(ExitCommandError, "adding drop", err)
		}
		if opts.Format == "text" {
			marker := ""
			if res.CapacityExceeded && !last.CapacityExceeded {
				marker = "  <- capacity exceeded"
			}
			fmt.Fprintf(w, "drop %3d  pH %.4f%s\n", res.Drops, res.PH, marker)
		}
		last = res
	}
	if opts.Format == "json" {
		out := &OutputFormatter{Format: opts.Format, Writer: w}
		return out.Success(bench.Session().Log())
	}
	fmt.Fprintf(w, "session %s  volume %.4f L\n", bench.Session().ID(), last.Volume)
	return nil
}
