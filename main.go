package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/cli"
	"github.com/gitprofile/gitprofile/internal/domain"
)

// CLI represents the command-line interface structure
var CLI struct {
	Config    string           `help:"Path to the profiles file" short:"c" env:"GITPROFILE_CONFIG" default:"${default_config}" type:"path"`
	Workspace string           `help:"Repository to work on" short:"C" env:"GITPROFILE_WORKSPACE" default:"." type:"path"`
	Status    cli.StatusCmd    `cmd:"" default:"withargs" help:"Show the profile of the workspace, or pick and apply one with --interactive"`
	Create    cli.CreateCmd    `cmd:"" help:"Create a profile"`
	Edit      cli.EditCmd      `cmd:"" help:"Edit a profile"`
	List      cli.ListCmd      `cmd:"" help:"List the stored profiles"`
	Init      cli.InitCmd      `cmd:"" help:"Create an empty profiles file"`
	Version   kong.VersionFlag `help:"Show version information"`
	Verbose   bool             `help:"Enable verbose output" short:"v"`
}

// Version information, set with -ldflags "-X main.version=..." on release builds
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// defaultConfigPath places the profiles file in the user config directory
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "profiles.toml"
	}
	return filepath.Join(dir, "gitprofile", "profiles.toml")
}

func main() {
	indicator := domain.NewStatusIndicator(os.Stdout)

	ctx := kong.Parse(&CLI,
		kong.Name("gitprofile"),
		kong.Description("Switch the git identity of a repository between named profiles"),
		kong.UsageOnError(),
		kong.Bind(indicator),
		kong.Vars{
			"version":        version + " (" + commit + ", " + date + ")",
			"default_config": defaultConfigPath(),
		},
	)

	if err := ctx.Run(); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
