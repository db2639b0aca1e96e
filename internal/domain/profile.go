// Package domain provides the profile model, the profiles file and the
// resolution logic that decides which git identity applies to a workspace.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitprofile/gitprofile/internal/port"
)

const emptyProfileName = "Git Config Profiles"

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Profile is a named git identity plus the selection flag.
type Profile struct {
	Name     string `toml:"name"`
	UserName string `toml:"user_name"`
	Email    string `toml:"email"`
	Selected bool   `toml:"selected"`
}

// EmptyProfile returns the placeholder used whenever no profile can be resolved.
// It is never persisted.
func EmptyProfile() Profile {
	return Profile{
		Name:     emptyProfileName,
		UserName: "NA",
		Email:    "NA",
		Selected: false,
	}
}

// Identity returns the git settings carried by the profile.
func (p Profile) Identity() port.Identity {
	return port.Identity{UserName: p.UserName, Email: p.Email}
}

// Detail returns the "user (email)" line shown under a profile in selection lists.
func (p Profile) Detail() string {
	return fmt.Sprintf("%s (%s)", p.UserName, p.Email)
}

// Validate checks every field of the profile.
func (p Profile) Validate() error {
	for _, msg := range []string{
		validateRequired(p.Name, "Profile name"),
		ValidateUserName(p.UserName),
		ValidateEmail(p.Email),
	} {
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrInvalidProfile, msg)
		}
	}
	return nil
}

// ValidateProfileName checks a profile name against the stored profiles.
// originalName is empty when creating; when editing it is the name the profile
// had before the edit and is excluded from the collision check.
// It returns an empty string when the name is acceptable.
func ValidateProfileName(name string, profiles []Profile, originalName string) string {
	if msg := validateRequired(name, "Profile name"); msg != "" {
		return msg
	}
	name = strings.TrimSpace(name)
	for _, p := range profiles {
		if p.Name == name && (originalName == "" || p.Name != originalName) {
			return fmt.Sprintf("Profile '%s' already exists", name)
		}
	}
	return ""
}

// ValidateUserName returns an empty string when the user name is acceptable.
func ValidateUserName(userName string) string {
	return validateRequired(userName, "User name")
}

// ValidateEmail returns an empty string when the email has a local@domain.tld shape.
func ValidateEmail(email string) string {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return "Enter a valid email address (e.g. john.smith@myorg.com)"
	}
	return ""
}

func validateRequired(value, field string) string {
	if strings.TrimSpace(value) == "" {
		return field + " cannot be empty"
	}
	return ""
}

// firstSelected returns the first profile marked as selected, in stored order.
func firstSelected(profiles []Profile) (Profile, bool) {
	for _, p := range profiles {
		if p.Selected {
			return p, true
		}
	}
	return Profile{}, false
}
