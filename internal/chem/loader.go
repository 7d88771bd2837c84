package chem

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

//go:embed catalog.cue
var schemaCUE string

//go:embed builtin.cue
var builtinCUE string

// DefaultCatalog compiles the embedded built-in catalog. The result is
// freshly built on every call; callers construct it once at startup and
// share the pointer.
func DefaultCatalog() (*Catalog, error) {
	ctx := cuecontext.New()
	data := ctx.CompileString(builtinCUE, cue.Filename("builtin.cue"))
	if err := data.Err(); err != nil {
		return nil, loadError(fmt.Sprintf("compiling built-in catalog: %v", err))
	}
	return decodeCatalog(data)
}

// LoadDir loads an override catalog from a directory of CUE files. The
// files are unified into one instance, validated against the embedded
// schema, and decoded. Load problems are ConfigurationErrors: a broken
// catalog must abort startup, not limp along.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, loadError(fmt.Sprintf("catalog directory not found: %s", dir))
	}
	if err != nil {
		return nil, loadError(fmt.Sprintf("accessing catalog directory: %v", err))
	}
	if !info.IsDir() {
		return nil, loadError(fmt.Sprintf("not a directory: %s", dir))
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, loadError("no CUE instances loaded")
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, loadError(fmt.Sprintf("loading CUE files: %v", inst.Err))
	}

	ctx := cuecontext.New()
	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, loadError(fmt.Sprintf("building CUE value: %v", err))
	}
	return decodeCatalog(value)
}

// decodeCatalog unifies a catalog value with the embedded schema and
// decodes it into a validated Catalog.
func decodeCatalog(data cue.Value) (*Catalog, error) {
	schema := data.Context().CompileString(schemaCUE, cue.Filename("catalog.cue"))
	if err := schema.Err(); err != nil {
		return nil, loadError(fmt.Sprintf("compiling catalog schema: %v", err))
	}

	merged := data.Unify(schema)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return nil, loadError(fmt.Sprintf("catalog does not satisfy schema: %v", err))
	}

	solutions := merged.LookupPath(cue.ParsePath("solutions"))
	if !solutions.Exists() {
		return nil, loadError(`catalog has no "solutions" list`)
	}
	var specs []SolutionSpec
	if err := solutions.Decode(&specs); err != nil {
		return nil, loadError(fmt.Sprintf("decoding solutions: %v", err))
	}
	return NewCatalog(specs)
}

func loadError(message string) *ConfigurationError {
	return &ConfigurationError{Code: ErrCodeCatalogLoad, Message: message}
}
