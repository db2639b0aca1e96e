package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error identification.
var (
	// ErrConfigNotFound indicates that the profiles file was not found.
	ErrConfigNotFound = errors.New("profiles file not found")

	// ErrConfigExists indicates that a profiles file already exists.
	ErrConfigExists = errors.New("profiles file already exists")

	// ErrInvalidProfile indicates that a profile has invalid field values.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrProfileNotFound indicates that no stored profile has the requested name.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrDuplicateProfile indicates that two profiles share the same name.
	ErrDuplicateProfile = errors.New("duplicate profile name")

	// ErrUnsupportedFormat indicates that the profiles file uses an unknown format version.
	ErrUnsupportedFormat = errors.New("unsupported profiles file format")

	// ErrWizardCancelled indicates that the user dismissed a multi-step input.
	ErrWizardCancelled = errors.New("wizard cancelled")

	// ErrSelectionNotPersisted indicates that a picked profile was not stored as selected.
	ErrSelectionNotPersisted = errors.New("profile selection was not persisted")
)

// ErrorConfigNotFound reports the path of a missing profiles file.
type ErrorConfigNotFound struct {
	Path string
}

func (e *ErrorConfigNotFound) Error() string {
	return fmt.Sprintf("profiles file not found at %s. Run 'gitprofile init' to create one", e.Path)
}

func (e *ErrorConfigNotFound) Unwrap() error {
	return ErrConfigNotFound
}
