// Package adapter provides implementations of port interfaces backed by git repositories
// on disk.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/gitprofile/gitprofile/internal/port"
)

// GitWorkspaceValidator implements the WorkspaceValidator interface for a folder on disk.
// The folder may be anywhere inside a working tree; the tree root is reported.
type GitWorkspaceValidator struct {
	dir string
}

// NewGitWorkspaceValidator creates a validator for the given folder.
func NewGitWorkspaceValidator(dir string) *GitWorkspaceValidator {
	return &GitWorkspaceValidator{dir: dir}
}

// Check reports whether the folder belongs to a non-bare git repository.
// Every failure is returned as an invalid workspace with a message.
func (v *GitWorkspaceValidator) Check(ctx context.Context) port.Workspace {
	if err := ctx.Err(); err != nil {
		return invalidWorkspace("Workspace check was interrupted: %v", err)
	}
	if v.dir == "" {
		return invalidWorkspace("No workspace folder is open")
	}

	dir, err := filepath.Abs(v.dir)
	if err != nil {
		return invalidWorkspace("Failed to resolve workspace folder %s: %v", v.dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return invalidWorkspace("Workspace folder %s is not accessible: %v", dir, err)
	}
	if !info.IsDir() {
		return invalidWorkspace("Workspace folder %s is not a directory", dir)
	}

	repo, err := openRepository(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return invalidWorkspace("Workspace folder %s is not a git repository", dir)
		}
		return invalidWorkspace("Failed to open git repository at %s: %v", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return invalidWorkspace("Workspace folder %s is a bare git repository", dir)
		}
		return invalidWorkspace("Failed to read working tree of %s: %v", dir, err)
	}

	root := worktree.Filesystem.Root()
	return port.Workspace{
		IsValid: true,
		Folder:  root,
		GitDir:  gitDirOf(repo, root),
	}
}

func invalidWorkspace(format string, args ...any) port.Workspace {
	return port.Workspace{IsValid: false, Message: fmt.Sprintf(format, args...)}
}

// openRepository opens the repository containing folder, searching parent directories.
// Linked worktrees share config and refs with their main repository.
func openRepository(folder string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(folder, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// gitDirOf returns the directory holding the repository metadata.
func gitDirOf(repo *git.Repository, root string) string {
	if storage, ok := repo.Storer.(*filesystem.Storage); ok {
		return storage.Filesystem().Root()
	}
	return filepath.Join(root, git.GitDirName)
}

// locateGitDir finds the metadata directory of the repository containing folder.
func locateGitDir(folder string) (string, error) {
	repo, err := openRepository(folder)
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %s: %w", folder, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to read working tree of %s: %w", folder, err)
	}

	return gitDirOf(repo, worktree.Filesystem.Root()), nil
}

// commonDirOf returns the directory shared by all worktrees of the repository
// whose metadata lives in gitDir. For the main worktree that is gitDir itself.
func commonDirOf(gitDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if errors.Is(err, os.ErrNotExist) {
		return gitDir, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read common directory of %s: %w", gitDir, err)
	}

	commonDir := strings.TrimSpace(string(data))
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(gitDir, commonDir)
	}
	return filepath.Clean(commonDir), nil
}
