package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitprofile/gitprofile/internal/domain"
	"github.com/go-git/go-git/v5"
)

// newRepository creates an empty git repository and returns its resolved root
func newRepository(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	return dir
}

// seedProfiles stores the profiles in order
func seedProfiles(t *testing.T, configPath string, profiles ...domain.Profile) {
	t.Helper()

	store := domain.NewFileProfileStore(configPath)
	for _, profile := range profiles {
		if err := store.Upsert(context.Background(), profile, ""); err != nil {
			t.Fatalf("failed to seed profile %q: %v", profile.Name, err)
		}
	}
}

// storedProfiles reads back the profiles file
func storedProfiles(t *testing.T, configPath string) []domain.Profile {
	t.Helper()

	profiles, err := domain.NewFileProfileStore(configPath).GetAll(context.Background())
	if err != nil {
		t.Fatalf("failed to read profiles: %v", err)
	}
	return profiles
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// testEnv is a command environment with scripted terminal input
type testEnv struct {
	deps      *deps
	logger    *Logger
	indicator *domain.StatusIndicator
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	shown     *bytes.Buffer
}

func newTestEnv(t *testing.T, configPath, workspace string, input ...string) *testEnv {
	t.Helper()

	var out, errOut, shown bytes.Buffer
	opts := globalOptions{ConfigPath: configPath, Workspace: workspace}
	return &testEnv{
		deps:      newDeps(opts, strings.NewReader(strings.Join(input, "")), &out, &errOut),
		logger:    NewLoggerTo(&out, &errOut, true),
		indicator: domain.NewStatusIndicator(&shown),
		out:       &out,
		errOut:    &errOut,
		shown:     &shown,
	}
}

func line(s string) string {
	return s + "\n"
}

var (
	workProfile = domain.Profile{Name: "Work", UserName: "John Smith", Email: "john.smith@myorg.com"}
	homeProfile = domain.Profile{Name: "Home", UserName: "Johnny", Email: "johnny@home.example"}
)

func selected(p domain.Profile) domain.Profile {
	p.Selected = true
	return p
}
