package cli

import (
	"io"
	"reflect"

	"github.com/alecthomas/kong"
	"github.com/gitprofile/gitprofile/internal/adapter"
	"github.com/gitprofile/gitprofile/internal/adapter/terminal"
	"github.com/gitprofile/gitprofile/internal/domain"
	"github.com/gitprofile/gitprofile/internal/port"
)

// globalOptions are the root flags shared by every command
type globalOptions struct {
	ConfigPath string
	Workspace  string
	Verbose    bool
}

// globalsFrom reads the root flags from the parsed CLI model
func globalsFrom(ctx *kong.Context) globalOptions {
	opts := globalOptions{Workspace: "."}
	if ctx == nil || ctx.Model == nil || !ctx.Model.Target.IsValid() {
		return opts
	}

	target := ctx.Model.Target
	if field := target.FieldByName("Verbose"); field.IsValid() && field.Kind() == reflect.Bool {
		opts.Verbose = field.Bool()
	}
	if field := target.FieldByName("Config"); field.IsValid() && field.Kind() == reflect.String {
		opts.ConfigPath = field.String()
	}
	if field := target.FieldByName("Workspace"); field.IsValid() && field.Kind() == reflect.String && field.String() != "" {
		opts.Workspace = field.String()
	}

	return opts
}

// deps are the collaborators a command works with
type deps struct {
	store     *domain.FileProfileStore
	validator port.WorkspaceValidator
	identity  port.GitIdentityApplier
	manager   domain.ProfileManager
}

// newDeps wires the file store, git adapters and terminal prompter
func newDeps(opts globalOptions, in io.Reader, out, errOut io.Writer) *deps {
	store := domain.NewFileProfileStore(opts.ConfigPath)
	validator := adapter.NewGitWorkspaceValidator(opts.Workspace)
	identity := adapter.NewGitConfigIdentity()
	prompter := terminal.NewPrompter(in, out, errOut)

	return &deps{
		store:     store,
		validator: validator,
		identity:  identity,
		manager:   domain.NewProfileManager(store, validator, identity, prompter),
	}
}
