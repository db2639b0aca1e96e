package cli

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/domain"
)

// ListCmd represents the list command
type ListCmd struct {
}

// Run executes the list command
func (c *ListCmd) Run(ctx *kong.Context) error {
	opts := globalsFrom(ctx)
	return c.run(opts.ConfigPath, opts.Verbose)
}

// run is the internal implementation that can be called from tests with custom parameters
func (c *ListCmd) run(configPath string, verbose bool) error {
	logger := NewLogger(verbose)

	return c.runWithLogger(configPath, logger)
}

// runWithLogger executes the list command with a custom logger (for testing)
func (c *ListCmd) runWithLogger(configPath string, logger *Logger) error {
	logger.Verbose("Loading profiles from %s", configPath)

	store := domain.NewFileProfileStore(configPath)
	profiles, err := store.GetAll(context.Background())
	if err != nil {
		logger.Error("Failed to load profiles: %v", err)
		logger.Error("Check the profiles file and try again")
		return err
	}

	if len(profiles) == 0 {
		logger.Info("No profiles defined")
		logger.Info("Use 'gitprofile create' to define one")
		return nil
	}

	logger.Info("")
	logger.Info("%-1s %-20s %-25s %-30s", "", "NAME", "USER", "EMAIL")
	logger.Info("%s", "--------------------------------------------------------------------------------")

	for _, profile := range profiles {
		marker := ""
		if profile.Selected {
			marker = "*"
		}
		logger.Info("%-1s %-20s %-25s %-30s", marker, profile.Name, profile.UserName, profile.Email)
	}

	logger.Info("")
	logger.Info("Total: %d profile(s)", len(profiles))

	return nil
}
