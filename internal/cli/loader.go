package cli

import (
	"context"
	"fmt"

	"github.com/tirithen/cnccoder/internal/job"
	"github.com/tirithen/cnccoder/internal/program"
	"github.com/tirithen/cnccoder/internal/toolstore"
)

// loadJob reads and compiles a job file, resolving catalog tool
// references when a catalog path is configured.
func loadJob(ctx context.Context, opts *RootOptions, path string) (*program.Program, error) {
	spec, err := job.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("load %s", path), err)
	}

	var catalog job.Catalog
	if opts.DB != "" {
		store, err := toolstore.Open(opts.DB)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("open catalog %s", opts.DB), err)
		}
		defer store.Close()
		catalog = store
	}

	p, err := spec.Build(ctx, catalog)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("build %s", path), err)
	}
	return p, nil
}

// openCatalog opens the configured tool catalog, failing when no
// catalog path is set.
func openCatalog(opts *RootOptions) (*toolstore.Store, error) {
	if opts.DB == "" {
		return nil, NewExitError(ExitCommandError, "no tool catalog configured, pass --db")
	}
	store, err := toolstore.Open(opts.DB)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("open catalog %s", opts.DB), err)
	}
	return store, nil
}
