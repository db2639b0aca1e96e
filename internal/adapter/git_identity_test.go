package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitprofile/gitprofile/internal/port"
)

func TestGitConfigIdentity_ReadCurrent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    string
		want      port.Identity
		wantFound bool
	}{
		{
			name:      "identity set",
			config:    "[user]\n\tname = John Smith\n\temail = john.smith@myorg.com\n",
			want:      port.Identity{UserName: "John Smith", Email: "john.smith@myorg.com"},
			wantFound: true,
		},
		{
			name:   "email missing",
			config: "[user]\n\tname = John Smith\n",
		},
		{
			name:   "no user section",
			config: "[core]\n\tbare = false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := initRepository(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), []byte(tt.config), 0o644))

			got, found, err := NewGitConfigIdentity().ReadCurrent(context.Background(), dir)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGitConfigIdentity_Apply(t *testing.T) {
	t.Parallel()

	t.Run("writes identity and keeps other settings", func(t *testing.T) {
		t.Parallel()

		dir := initRepository(t)
		identity := NewGitConfigIdentity()
		want := port.Identity{UserName: "John Smith", Email: "john.smith@myorg.com"}

		require.NoError(t, identity.Apply(context.Background(), dir, want))

		got, found, err := identity.ReadCurrent(context.Background(), dir)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)

		repo, err := git.PlainOpen(dir)
		require.NoError(t, err)
		cfg, err := repo.Config()
		require.NoError(t, err)
		assert.Equal(t, "John Smith", cfg.User.Name)
		assert.Equal(t, "john.smith@myorg.com", cfg.User.Email)
		assert.False(t, cfg.Core.IsBare)
	})

	t.Run("overwrites previous identity", func(t *testing.T) {
		t.Parallel()

		dir := initRepository(t)
		identity := NewGitConfigIdentity()
		require.NoError(t, identity.Apply(context.Background(), dir, port.Identity{UserName: "Old", Email: "old@example.com"}))
		require.NoError(t, identity.Apply(context.Background(), dir, port.Identity{UserName: "New", Email: "new@example.com"}))

		got, found, err := identity.ReadCurrent(context.Background(), dir)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, port.Identity{UserName: "New", Email: "new@example.com"}, got)
	})

	t.Run("linked worktree writes the shared config", func(t *testing.T) {
		t.Parallel()

		mainDir, worktreeDir, adminDir := initLinkedWorktree(t)
		identity := NewGitConfigIdentity()
		want := port.Identity{UserName: "John Smith", Email: "john.smith@myorg.com"}

		require.NoError(t, identity.Apply(context.Background(), worktreeDir, want))

		repo, err := git.PlainOpen(mainDir)
		require.NoError(t, err)
		cfg, err := repo.Config()
		require.NoError(t, err)
		assert.Equal(t, "John Smith", cfg.User.Name)
		assert.Equal(t, "john.smith@myorg.com", cfg.User.Email)
		assert.NoFileExists(t, filepath.Join(adminDir, "config"))

		for _, dir := range []string{worktreeDir, mainDir} {
			got, found, err := identity.ReadCurrent(context.Background(), dir)
			require.NoError(t, err)
			assert.True(t, found, dir)
			assert.Equal(t, want, got, dir)
		}
	})

	t.Run("outside a repository", func(t *testing.T) {
		t.Parallel()

		err := NewGitConfigIdentity().Apply(context.Background(), t.TempDir(), port.Identity{UserName: "x", Email: "x@example.com"})
		assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
	})
}
