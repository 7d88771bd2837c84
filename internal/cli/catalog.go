package cli

import "github.com/probeworks/phmeter/internal/chem"

// loadCatalog builds the species catalog once per command invocation:
// the override directory when --catalog is set, the embedded built-in
// catalog otherwise.
func loadCatalog(opts *RootOptions) (*chem.Catalog, error) {
	if opts.Catalog != "" {
		return chem.LoadDir(opts.Catalog)
	}
	return chem.DefaultCatalog()
}
