package domain

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ProfilesFormatVersion is the major format version written to new profiles files.
const ProfilesFormatVersion = "v1"

// Config represents the entire profiles file.
// Profiles keep the order in which they were stored; that order decides
// which profile wins when several are marked as selected.
type Config struct {
	Version  string    `toml:"version"`
	Profiles []Profile `toml:"profiles"`
}

// FindProfileIndex returns the index of the profile with the given name, or -1.
func (c *Config) FindProfileIndex(name string) int {
	for i, p := range c.Profiles {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// HasProfile checks if a profile with the given name exists.
func (c *Config) HasProfile(name string) bool {
	return c.FindProfileIndex(name) >= 0
}

// Upsert replaces the profile named previousName (or profile.Name when
// previousName is empty) and appends the profile when no such entry exists.
// Selection flags of the other profiles are left as they are.
func (c *Config) Upsert(profile Profile, previousName string) {
	key := previousName
	if key == "" {
		key = profile.Name
	}

	if i := c.FindProfileIndex(key); i >= 0 {
		c.Profiles[i] = profile
	} else {
		c.Profiles = append(c.Profiles, profile)
	}
}

// Select marks the named profile as the only selected one.
// It reports false and changes nothing when no profile has that name.
func (c *Config) Select(name string) bool {
	target := c.FindProfileIndex(name)
	if target < 0 {
		return false
	}
	for i := range c.Profiles {
		c.Profiles[i].Selected = i == target
	}
	return true
}

// Validate checks the format version and that every profile has a unique, non-empty name.
// Field contents are not checked here so that hand-edited files still load.
func (c *Config) Validate() error {
	if c.Version != "" {
		if !semver.IsValid(c.Version) || semver.Major(c.Version) != ProfilesFormatVersion {
			return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, c.Version, ProfilesFormatVersion)
		}
	}

	names := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: profile name cannot be empty", ErrInvalidProfile)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateProfile, p.Name)
		}
		names[p.Name] = true
	}

	return nil
}
