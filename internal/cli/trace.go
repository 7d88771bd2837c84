package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probeworks/phmeter/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	Session  string
}

// NewTraceCommand creates the trace command: inspect recorded titration
// sessions and their drop-by-drop curves.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded titration sessions",
		Long: `List recorded sessions, or print one session's pH curve.

Example:
  phmeter trace --db ./traces.db
  phmeter trace --db ./traces.db --session 0190c7e2-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite trace database (required)")
	cmd.Flags().StringVar(&opts.Session, "session", "", "session ID to print")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening trace database", err)
	}
	defer st.Close()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	w := cmd.OutOrStdout()

	if opts.Session == "" {
		sessions, err := st.Sessions()
		if err != nil {
			return WrapExitError(ExitCommandError, "listing sessions", err)
		}
		if opts.Format == "json" {
			return out.Success(sessions)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(w, "no recorded sessions")
			return nil
		}
		for _, s := range sessions {
			fmt.Fprintf(w, "%s  %-12s %s (%d drops)\n", s.ID, s.Category, s.Solution, s.Drops)
		}
		return nil
	}

	curve, err := st.Curve(opts.Session)
	if err != nil {
		return WrapExitError(ExitCommandError, "reading curve", err)
	}
	if opts.Format == "json" {
		return out.Success(curve)
	}
	if len(curve) == 0 {
		fmt.Fprintln(w, "no drops recorded for session")
		return nil
	}
	for _, e := range curve {
		marker := ""
		if e.CapacityExceeded {
			marker = "  *"
		}
		fmt.Fprintf(w, "drop %3d  %-4s  pH %.4f  volume %.4f L%s\n", e.Seq, e.Reagent, e.PH, e.Volume, marker)
	}
	return nil
}
