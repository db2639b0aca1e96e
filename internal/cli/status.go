package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/domain"
	"github.com/gitprofile/gitprofile/internal/port"
	"golang.org/x/sync/errgroup"
)

// StatusCmd represents the status command
type StatusCmd struct {
	Interactive bool `help:"Pick, apply, create or edit a profile for the workspace" short:"i"`
}

// Run executes the status command
func (c *StatusCmd) Run(ctx *kong.Context, indicator *domain.StatusIndicator) error {
	opts := globalsFrom(ctx)
	return c.run(context.Background(), opts, indicator)
}

// run is the internal implementation that can be called from tests with custom parameters
func (c *StatusCmd) run(ctx context.Context, opts globalOptions, indicator *domain.StatusIndicator) error {
	logger := NewLogger(opts.Verbose)
	d := newDeps(opts, os.Stdin, os.Stdout, os.Stderr)

	return c.runWithDeps(ctx, d, indicator, logger)
}

// runWithDeps executes the status command with the given collaborators (for testing)
func (c *StatusCmd) runWithDeps(ctx context.Context, d *deps, indicator *domain.StatusIndicator, logger *Logger) error {
	indicator.Attach(d.manager)
	logger.Verbose("Profiles file: %s", d.store.Path())

	if c.Interactive {
		logger.Verbose("Resolving profile interactively")
		if err := indicator.Activate(ctx); err != nil {
			logger.Error("Failed to resolve profile: %v", err)
			return err
		}
		indicator.Show()
		return nil
	}

	workspace := d.validator.Check(ctx)
	if workspace.IsValid {
		logger.Verbose("Workspace: %s (git dir %s)", workspace.Folder, workspace.GitDir)
	}

	var (
		current port.Identity
		found   bool
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return indicator.Refresh(egCtx)
	})
	if workspace.IsValid {
		eg.Go(func() error {
			var err error
			current, found, err = d.identity.ReadCurrent(egCtx, workspace.Folder)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error("Failed to read profile status: %v", err)
		return err
	}

	indicator.Show()

	switch {
	case !workspace.IsValid:
		logger.Warn("%s", workspace.Message)
	case found:
		logger.Info("Local identity: %s <%s>", current.UserName, current.Email)
	default:
		logger.Info("Local identity: not set")
	}
	if indicator.Status().Kind == domain.StatusEmpty {
		logger.Info("Run 'gitprofile status --interactive' to pick or create a profile")
	}

	return nil
}
