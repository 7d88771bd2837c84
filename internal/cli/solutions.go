package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probeworks/phmeter/internal/chem"
)

// NewSolutionsCommand creates the solutions command: list the selectable
// species by category.
func NewSolutionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solutions",
		Short: "List the selectable solutions",
		Long: `List every solution in the species catalog, grouped by category.

Example:
  phmeter solutions
  phmeter solutions --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(rootOpts)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading catalog", err)
			}
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			if rootOpts.Format == "json" {
				return out.Success(catalog.Specs())
			}

			order := []chem.Category{
				chem.CategoryStrongAcid, chem.CategoryStrongBase,
				chem.CategoryWeakAcid, chem.CategoryWeakBase,
				chem.CategorySalt, chem.CategoryBuffer,
				chem.CategoryWater, chem.CategoryHousehold,
			}
			w := cmd.OutOrStdout()
			for _, cat := range order {
				specs := catalog.ByCategory(cat)
				if len(specs) == 0 {
					continue
				}
				fmt.Fprintf(w, "%s:\n", cat)
				for _, s := range specs {
					if s.Formula != "" {
						fmt.Fprintf(w, "  %-12s %s\n", s.Formula, s.Name)
					} else {
						fmt.Fprintf(w, "  %s\n", s.Name)
					}
				}
			}
			return nil
		},
	}
}
