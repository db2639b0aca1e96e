package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/domain"
)

// CreateCmd represents the create command
type CreateCmd struct {
}

// Run executes the create command
func (c *CreateCmd) Run(ctx *kong.Context, indicator *domain.StatusIndicator) error {
	opts := globalsFrom(ctx)
	return c.run(context.Background(), opts, indicator)
}

// run is the internal implementation that can be called from tests with custom parameters
func (c *CreateCmd) run(ctx context.Context, opts globalOptions, indicator *domain.StatusIndicator) error {
	logger := NewLogger(opts.Verbose)
	d := newDeps(opts, os.Stdin, os.Stdout, os.Stderr)

	return c.runWithDeps(ctx, d, indicator, logger)
}

// runWithDeps executes the create command with the given collaborators (for testing)
func (c *CreateCmd) runWithDeps(ctx context.Context, d *deps, indicator *domain.StatusIndicator, logger *Logger) error {
	indicator.Attach(d.manager)
	logger.Verbose("Profiles file: %s", d.store.Path())

	before, err := d.store.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load profiles: %v", err)
		return err
	}

	if err := d.manager.CreateProfile(ctx); err != nil {
		logger.Error("Failed to create profile: %v", err)
		return err
	}

	after, err := d.store.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load profiles: %v", err)
		return err
	}
	if len(after) == len(before) {
		logger.Verbose("Profile creation cancelled, nothing stored")
		return nil
	}

	created := after[len(after)-1]
	logger.Info("Created profile '%s'", created.Name)
	logger.Info("Run 'gitprofile status --interactive' to use it in this repository")

	if err := indicator.Refresh(ctx); err != nil {
		logger.Error("Failed to refresh profile status: %v", err)
		return err
	}
	indicator.Show()

	return nil
}
