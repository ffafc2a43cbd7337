// Package app implements the application layer for icws.
package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/risteon/ic-workspace/internal/core/domain"
	"github.com/risteon/ic-workspace/internal/core/ports"
	"github.com/risteon/ic-workspace/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	buildFile    ports.BuildFileWriter
	reporter     ports.Reporter
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	res *resolver.Resolver,
	buildFile ports.BuildFileWriter,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		buildFile:    buildFile,
		reporter:     reporter,
		telemetry:    telemetry,
		logger:       log,
	}
}

// Options configures a single command.
type Options struct {
	// Root is the workspace root. Empty means the current directory.
	Root string
	// Verbose prints debug messages and the full status after add and check.
	Verbose bool
}

// Status prints the state of the workspace without changing it.
func (a *App) Status(ctx context.Context, opts Options) error {
	layout, err := a.prepare(opts)
	if err != nil {
		return err
	}

	res, err := a.resolver.Resolve(ctx, layout, nil, domain.ModeStatus)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve workspace")
	}

	return a.reporter.Status(res)
}

// Add fetches the given packages and everything they depend on, then rewrites the
// build file.
func (a *App) Add(ctx context.Context, ids []string, opts Options) error {
	if len(ids) == 0 {
		return domain.ErrNoPackagesSpecified
	}
	for _, id := range ids {
		if err := domain.ValidatePackageName(id); err != nil {
			return err
		}
	}
	return a.fetch(ctx, ids, opts)
}

// Check fetches every missing dependency of the workspace, then rewrites the build file.
func (a *App) Check(ctx context.Context, opts Options) error {
	return a.fetch(ctx, nil, opts)
}

func (a *App) fetch(ctx context.Context, ids []string, opts Options) error {
	layout, err := a.prepare(opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = a.telemetry.Close()
	}()

	res, err := a.resolver.Resolve(ctx, layout, ids, domain.ModeFetch)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve workspace")
	}

	if err := a.reporter.Summary(res); err != nil {
		return err
	}
	if opts.Verbose {
		if err := a.reporter.Status(res); err != nil {
			return err
		}
	}

	// The build file is only rewritten when a complete order exists.
	if res.Outcome.IsCyclic() {
		return res.Outcome.Err()
	}

	if err := a.buildFile.Write(layout, res.Outcome.Order()); err != nil {
		return err
	}
	a.logger.Debug("wrote " + layout.BuildFilePath())

	return nil
}

func (a *App) prepare(opts Options) (domain.Layout, error) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(opts.Verbose)
	}

	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Layout{}, zerr.Wrap(err, "failed to determine working directory")
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return domain.Layout{}, zerr.With(zerr.Wrap(err, "invalid workspace root"), "root", opts.Root)
	}

	layout, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Layout{}, zerr.Wrap(err, "failed to load configuration")
	}
	return layout, nil
}
