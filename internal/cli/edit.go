package cli

import (
	"context"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/domain"
)

// EditCmd represents the edit command
type EditCmd struct {
}

// Run executes the edit command
func (c *EditCmd) Run(ctx *kong.Context, indicator *domain.StatusIndicator) error {
	opts := globalsFrom(ctx)
	return c.run(context.Background(), opts, indicator)
}

// run is the internal implementation that can be called from tests with custom parameters
func (c *EditCmd) run(ctx context.Context, opts globalOptions, indicator *domain.StatusIndicator) error {
	logger := NewLogger(opts.Verbose)
	d := newDeps(opts, os.Stdin, os.Stdout, os.Stderr)

	return c.runWithDeps(ctx, d, indicator, logger)
}

// runWithDeps executes the edit command with the given collaborators (for testing)
func (c *EditCmd) runWithDeps(ctx context.Context, d *deps, indicator *domain.StatusIndicator, logger *Logger) error {
	indicator.Attach(d.manager)
	logger.Verbose("Profiles file: %s", d.store.Path())

	before, err := d.store.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load profiles: %v", err)
		return err
	}

	if err := d.manager.EditProfile(ctx); err != nil {
		logger.Error("Failed to edit profile: %v", err)
		return err
	}

	after, err := d.store.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load profiles: %v", err)
		return err
	}
	if slices.Equal(before, after) {
		logger.Verbose("No profile changed")
	} else {
		logger.Info("Profile updated")
	}

	if err := indicator.Refresh(ctx); err != nil {
		logger.Error("Failed to refresh profile status: %v", err)
		return err
	}
	indicator.Show()

	return nil
}
