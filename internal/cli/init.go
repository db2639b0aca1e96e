package cli

import (
	"context"
	"errors"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/domain"
)

// InitCmd represents the init command
type InitCmd struct {
}

// Run executes the init command
// It creates an empty profiles file at the configured path.
func (c *InitCmd) Run(ctx *kong.Context) error {
	opts := globalsFrom(ctx)
	return c.run(opts.ConfigPath, opts.Verbose)
}

// run is the internal implementation that can be called from tests with custom parameters
func (c *InitCmd) run(configPath string, verbose bool) error {
	logger := NewLogger(verbose)

	return c.runWithLogger(configPath, logger)
}

// runWithLogger executes the init command with a custom logger (for testing)
func (c *InitCmd) runWithLogger(configPath string, logger *Logger) error {
	logger.Info("Initializing profiles file at %s", configPath)

	store := domain.NewFileProfileStore(configPath)
	if err := store.Initialize(context.Background()); err != nil {
		if errors.Is(err, domain.ErrConfigExists) {
			logger.Error("Profiles file already exists at %s", configPath)
			logger.Error("Remove the existing file or use a different path")
			return err
		}

		logger.Error("Failed to create profiles file: %v", err)
		logger.Error("Check file permissions and try again")
		return err
	}

	logger.Info("Successfully initialized %s", configPath)
	logger.Info("Use 'gitprofile create' to define a profile")

	return nil
}
