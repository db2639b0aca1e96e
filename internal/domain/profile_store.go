package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// File permission constants for the profiles file
const (
	configFileMode fs.FileMode = 0o644 // User: rw, Group: r, Others: r
	configDirMode  fs.FileMode = 0o755
)

// ProfileStore is the ordered collection of profiles the resolution logic reads and writes.
type ProfileStore interface {
	// GetAll returns every stored profile in stored order.
	GetAll(ctx context.Context) ([]Profile, error)

	// Upsert stores the profile, replacing the entry named previousName
	// (or profile.Name when previousName is empty) if present.
	Upsert(ctx context.Context, profile Profile, previousName string) error

	// Select marks the named profile as selected and deselects all others.
	// The profile's fields are not validated.
	Select(ctx context.Context, name string) error
}

// FileProfileStore keeps profiles in a TOML file.
// A missing file behaves as an empty store; the first write creates it.
type FileProfileStore struct {
	mu         sync.Mutex
	configPath string
}

// NewFileProfileStore creates a store backed by the file at configPath.
func NewFileProfileStore(configPath string) *FileProfileStore {
	return &FileProfileStore{configPath: configPath}
}

// Path returns the location of the profiles file.
func (s *FileProfileStore) Path() string {
	return s.configPath
}

// Initialize creates an empty profiles file.
// It returns ErrConfigExists if the file already exists.
func (s *FileProfileStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.configPath); err == nil {
		return fmt.Errorf("%w: profiles file already exists at %s. Remove the existing file or use a different path", ErrConfigExists, s.configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check profiles file existence: %w", err)
	}

	return s.save(ctx, &Config{Version: ProfilesFormatVersion, Profiles: []Profile{}})
}

// Load reads the profiles file.
// It returns *ErrorConfigNotFound if the file does not exist.
func (s *FileProfileStore) Load(ctx context.Context) (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// GetAll returns all profiles, or none if the profiles file does not exist yet.
func (s *FileProfileStore) GetAll(ctx context.Context) ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadOrEmpty(ctx)
	if err != nil {
		return nil, err
	}
	return config.Profiles, nil
}

// Upsert validates the profile and writes it to the profiles file.
// Load, modification and save happen under one lock.
func (s *FileProfileStore) Upsert(ctx context.Context, profile Profile, previousName string) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadOrEmpty(ctx)
	if err != nil {
		return err
	}

	config.Upsert(profile, previousName)

	if err := s.save(ctx, config); err != nil {
		return fmt.Errorf("failed to save profiles file after storing profile '%s': %w", profile.Name, err)
	}
	return nil
}

// Select makes the named profile the only selected one.
// It returns ErrProfileNotFound if no profile has that name.
func (s *FileProfileStore) Select(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadOrEmpty(ctx)
	if err != nil {
		return err
	}

	if !config.Select(name) {
		return fmt.Errorf("%w: '%s'", ErrProfileNotFound, name)
	}

	if err := s.save(ctx, config); err != nil {
		return fmt.Errorf("failed to save profiles file after selecting profile '%s': %w", name, err)
	}
	return nil
}

func (s *FileProfileStore) loadOrEmpty(ctx context.Context) (*Config, error) {
	config, err := s.load(ctx)
	if errors.Is(err, ErrConfigNotFound) {
		return &Config{Version: ProfilesFormatVersion, Profiles: []Profile{}}, nil
	}
	return config, err
}

func (s *FileProfileStore) load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrorConfigNotFound{Path: s.configPath}
		}
		return nil, fmt.Errorf("failed to read profiles file at %s: %w. Check file permissions", s.configPath, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file at %s: %w. Ensure the file is valid TOML format", s.configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("profiles file validation failed: %w", err)
	}

	return &config, nil
}

func (s *FileProfileStore) save(ctx context.Context, config *Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if config.Version == "" {
		config.Version = ProfilesFormatVersion
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("profiles file validation failed: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), configDirMode); err != nil {
		return fmt.Errorf("failed to create directory for profiles file %s: %w", s.configPath, err)
	}

	if err := os.WriteFile(s.configPath, data, configFileMode); err != nil {
		return fmt.Errorf("failed to write profiles file to %s: %w. Check file permissions and directory existence", s.configPath, err)
	}

	return nil
}
