package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// StatusKind tags the value held by a DisplayStatus.
type StatusKind int

const (
	// StatusUnset means nothing has been resolved yet.
	StatusUnset StatusKind = iota
	// StatusEmpty means resolution ended with the empty profile.
	StatusEmpty
	// StatusProfile means a stored profile was resolved.
	StatusProfile
)

const statusIcon = "👤"

// DisplayStatus is what the status indicator shows.
type DisplayStatus struct {
	Profile Profile
	Kind    StatusKind
}

// EmptyStatus is the result of a resolution that found no profile.
func EmptyStatus() DisplayStatus {
	return DisplayStatus{Kind: StatusEmpty}
}

// ProfileStatus is the result of a resolution that found a stored profile.
func ProfileStatus(profile Profile) DisplayStatus {
	return DisplayStatus{Kind: StatusProfile, Profile: profile}
}

// ResolvedProfile returns the stored profile, or the empty profile for any other kind.
func (d DisplayStatus) ResolvedProfile() Profile {
	if d.Kind == StatusProfile {
		return d.Profile
	}
	return EmptyProfile()
}

// Resolver is the part of ProfileManager the status indicator dispatches to.
type Resolver interface {
	ResolveStatus(ctx context.Context, fromStatusBar bool) (DisplayStatus, error)
}

// StatusIndicator shows the resolved profile of the workspace.
// One instance is created at startup and handed to the commands.
type StatusIndicator struct {
	out      io.Writer
	resolver Resolver
	status   DisplayStatus
}

// NewStatusIndicator creates an indicator that renders to out.
func NewStatusIndicator(out io.Writer) *StatusIndicator {
	return &StatusIndicator{out: out}
}

// Attach sets the resolver used by Refresh and Activate.
func (s *StatusIndicator) Attach(resolver Resolver) {
	s.resolver = resolver
}

// Update replaces the displayed status.
func (s *StatusIndicator) Update(status DisplayStatus) {
	s.status = status
}

// Status returns the displayed status.
func (s *StatusIndicator) Status() DisplayStatus {
	return s.status
}

// Text renders the indicator label.
func (s *StatusIndicator) Text() string {
	switch s.status.Kind {
	case StatusProfile:
		return fmt.Sprintf("%s %s", statusIcon, s.status.Profile.Name)
	case StatusEmpty:
		return fmt.Sprintf("%s %s", statusIcon, emptyProfileName)
	default:
		return ""
	}
}

// Show writes the label; an unset indicator writes nothing.
func (s *StatusIndicator) Show() {
	if text := s.Text(); text != "" {
		fmt.Fprintln(s.out, text)
	}
}

// Refresh resolves silently and updates the indicator.
func (s *StatusIndicator) Refresh(ctx context.Context) error {
	return s.resolve(ctx, false)
}

// Activate resolves interactively, as a click on the indicator does.
func (s *StatusIndicator) Activate(ctx context.Context) error {
	return s.resolve(ctx, true)
}

func (s *StatusIndicator) resolve(ctx context.Context, fromStatusBar bool) error {
	if s.resolver == nil {
		return errors.New("status indicator has no resolver attached")
	}
	status, err := s.resolver.ResolveStatus(ctx, fromStatusBar)
	if err != nil {
		return err
	}
	s.Update(status)
	return nil
}
