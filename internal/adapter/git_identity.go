package adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gopasspw/gitconfig"

	"github.com/gitprofile/gitprofile/internal/port"
)

const (
	userNameKey  = "user.name"
	userEmailKey = "user.email"
)

// GitConfigIdentity implements the GitIdentityApplier interface on the
// repository-local git config file.
type GitConfigIdentity struct{}

// NewGitConfigIdentity creates a new GitConfigIdentity instance.
func NewGitConfigIdentity() *GitConfigIdentity {
	return &GitConfigIdentity{}
}

// Apply sets user.name and user.email in the local config of the repository at folder.
// Other settings and comments in the file are preserved.
func (g *GitConfigIdentity) Apply(ctx context.Context, folder string, identity port.Identity) error {
	configs, err := g.load(ctx, folder)
	if err != nil {
		return err
	}

	if err := configs.SetLocal(userNameKey, identity.UserName); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", userNameKey, folder, err)
	}
	if err := configs.SetLocal(userEmailKey, identity.Email); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", userEmailKey, folder, err)
	}

	return nil
}

// ReadCurrent returns the local identity of the repository at folder.
// Global and system settings are ignored; a partially set identity counts as absent.
func (g *GitConfigIdentity) ReadCurrent(ctx context.Context, folder string) (port.Identity, bool, error) {
	configs, err := g.load(ctx, folder)
	if err != nil {
		return port.Identity{}, false, err
	}

	identity := port.Identity{
		UserName: configs.GetLocal(userNameKey),
		Email:    configs.GetLocal(userEmailKey),
	}
	if identity.UserName == "" || identity.Email == "" {
		return port.Identity{}, false, nil
	}
	return identity, true, nil
}

func (g *GitConfigIdentity) load(ctx context.Context, folder string) (*gitconfig.Configs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gitDir, err := locateGitDir(folder)
	if err != nil {
		return nil, err
	}

	// git keeps the local config of linked worktrees in the common dir
	// and only config.worktree next to the worktree's own metadata.
	commonDir, err := commonDirOf(gitDir)
	if err != nil {
		return nil, err
	}
	worktreeConfig, err := filepath.Rel(commonDir, filepath.Join(gitDir, "config.worktree"))
	if err != nil {
		return nil, fmt.Errorf("failed to locate worktree config of %s: %w", folder, err)
	}

	configs := gitconfig.New()
	configs.LocalConfig = "config"
	configs.WorktreeConfig = worktreeConfig
	configs.LoadAll(commonDir)

	return configs, nil
}
