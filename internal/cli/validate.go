package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probeworks/phmeter/internal/chem"
)

// NewValidateCommand creates the validate command: load a catalog
// directory, check it against the schema and the per-category field rules,
// and report what it contains.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-dir>",
		Short: "Validate a species catalog directory",
		Long: `Load a directory of CUE catalog files, validate every solution against
the schema and the per-category field rules, and report the result.

Example:
  phmeter validate ./my-catalog`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			catalog, err := chem.LoadDir(args[0])
			if err != nil {
				_ = out.Error("CATALOG_INVALID", err.Error())
				return &ExitError{Code: ExitCommandError, Message: "catalog validation failed", Err: err}
			}
			if rootOpts.Format == "json" {
				return out.Success(map[string]interface{}{
					"solutions": catalog.Len(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog valid: %d solutions\n", catalog.Len())
			return nil
		},
	}
	return cmd
}
