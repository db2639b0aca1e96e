package domain

import (
	"context"
	"fmt"

	"github.com/gitprofile/gitprofile/internal/port"
)

// Prompt options offered while resolving interactively.
const (
	optionYes          = "Yes"
	optionNo           = "No"
	optionPickProfile  = "Pick a profile"
	optionApply        = "Yes, apply"
	optionPickAnother  = "No, pick another"
	optionEditExisting = "Edit existing"
	optionCreateNew    = "Create new"
)

const selectProfilePlaceholder = "Select a user profile."

// ProfileManager decides which profile applies to the workspace and runs
// the creation and edit flows.
type ProfileManager interface {
	// Resolve returns the profile for the workspace. With fromStatusBar unset it
	// never prompts or mutates; otherwise it may prompt, apply or re-select.
	Resolve(ctx context.Context, fromStatusBar bool) (Profile, error)

	// ResolveStatus resolves like Resolve and tags the result, so a stored
	// profile is never mistaken for the empty profile.
	ResolveStatus(ctx context.Context, fromStatusBar bool) (DisplayStatus, error)

	// CreateProfile collects a new profile and stores it unselected.
	CreateProfile(ctx context.Context) error

	// EditProfile lets the user pick a profile and change its fields.
	EditProfile(ctx context.Context) error
}

type profileManagerImpl struct {
	store     ProfileStore
	validator port.WorkspaceValidator
	identity  port.GitIdentityApplier
	ui        port.PromptUI
}

// NewProfileManager creates a new ProfileManager instance.
func NewProfileManager(
	store ProfileStore,
	validator port.WorkspaceValidator,
	identity port.GitIdentityApplier,
	ui port.PromptUI,
) ProfileManager {
	return &profileManagerImpl{
		store:     store,
		validator: validator,
		identity:  identity,
		ui:        ui,
	}
}

func (m *profileManagerImpl) Resolve(ctx context.Context, fromStatusBar bool) (Profile, error) {
	status, err := m.ResolveStatus(ctx, fromStatusBar)
	return status.ResolvedProfile(), err
}

func (m *profileManagerImpl) ResolveStatus(ctx context.Context, fromStatusBar bool) (DisplayStatus, error) {
	if !fromStatusBar {
		return m.resolveSilently(ctx)
	}

	// A pick persists a selection and resolves again. Each pass needs a new
	// answer from the user, and the pass after a pick always sees a selection.
	for {
		status, picked, err := m.resolveInteractively(ctx)
		if err != nil || !picked {
			return status, err
		}
	}
}

func (m *profileManagerImpl) resolveSilently(ctx context.Context) (DisplayStatus, error) {
	profiles, err := m.store.GetAll(ctx)
	if err != nil {
		return EmptyStatus(), fmt.Errorf("failed to load profiles: %w", err)
	}
	if len(profiles) == 0 {
		return EmptyStatus(), nil
	}

	if ws := m.validator.Check(ctx); !ws.IsValid {
		return EmptyStatus(), nil
	}

	if selected, ok := firstSelected(profiles); ok {
		return ProfileStatus(selected), nil
	}
	return EmptyStatus(), nil
}

// resolveInteractively runs one prompt round. The boolean result reports that
// the user picked a profile from the list and another round is due.
func (m *profileManagerImpl) resolveInteractively(ctx context.Context) (DisplayStatus, bool, error) {
	profiles, err := m.store.GetAll(ctx)
	if err != nil {
		return EmptyStatus(), false, fmt.Errorf("failed to load profiles: %w", err)
	}

	if len(profiles) == 0 {
		answer, ok, err := m.ui.Choice(ctx, "No user profiles defined. Do you want to define one now?", optionYes, optionNo)
		if err != nil {
			return EmptyStatus(), false, err
		}
		if ok && answer == optionYes {
			if err := m.CreateProfile(ctx); err != nil {
				return EmptyStatus(), false, err
			}
		}
		return EmptyStatus(), false, nil
	}

	ws := m.validator.Check(ctx)
	if !ws.IsValid {
		m.ui.Notify(port.NotifyError, ws.Message)
		return EmptyStatus(), false, nil
	}

	selected, hasSelected := firstSelected(profiles)
	previous := EmptyStatus()
	if hasSelected {
		previous = ProfileStatus(selected)
	}

	var (
		response string
		answered bool
	)
	if hasSelected {
		message := m.applyMessage(ctx, selected, ws.Folder)
		response, answered, err = m.ui.Choice(ctx, message, optionApply, optionPickAnother, optionEditExisting, optionCreateNew)
	} else {
		message := fmt.Sprintf("You have %d profile(s) in settings. What do you want to do?", len(profiles))
		response, answered, err = m.ui.Choice(ctx, message, optionPickProfile, optionEditExisting, optionCreateNew)
	}
	if err != nil {
		return previous, false, err
	}
	if !answered {
		return previous, false, nil
	}

	switch response {
	case optionEditExisting:
		return previous, false, m.EditProfile(ctx)

	case optionApply:
		if err := m.identity.Apply(ctx, ws.Folder, selected.Identity()); err != nil {
			return EmptyStatus(), false, fmt.Errorf("failed to apply profile '%s' to %s: %w", selected.Name, ws.Folder, err)
		}
		m.ui.Notify(port.NotifyInfo, "User name and email updated in git config file.")
		return ProfileStatus(selected), false, nil

	case optionCreateNew:
		return previous, false, m.CreateProfile(ctx)

	case optionPickAnother, optionPickProfile:
		choice, ok, err := m.pickProfile(ctx, profiles)
		if err != nil {
			return previous, false, err
		}
		if !ok {
			// nothing picked: keep whatever was selected before
			return previous, false, nil
		}

		// Selecting only flips flags, so hand-edited entries with invalid fields can still be picked.
		if err := m.store.Select(ctx, choice.Name); err != nil {
			return EmptyStatus(), false, fmt.Errorf("failed to select profile '%s': %w", choice.Name, err)
		}
		if err := m.ensureSelection(ctx); err != nil {
			return EmptyStatus(), false, err
		}
		return DisplayStatus{}, true, nil
	}

	return EmptyStatus(), false, nil
}

// ensureSelection stops re-resolution when a store accepted a pick but did not keep it.
func (m *profileManagerImpl) ensureSelection(ctx context.Context) error {
	profiles, err := m.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload profiles: %w", err)
	}
	if _, ok := firstSelected(profiles); !ok {
		return ErrSelectionNotPersisted
	}
	return nil
}

// applyMessage builds the confirmation text for the selected profile. The
// workspace's current identity is informational; a failed read is shown as unknown.
func (m *profileManagerImpl) applyMessage(ctx context.Context, selected Profile, folder string) string {
	message := fmt.Sprintf("Do you want to use profile '%s' for this repo? (user: %s, email: %s)",
		selected.Name, selected.UserName, selected.Email)

	current, found, err := m.identity.ReadCurrent(ctx, folder)
	switch {
	case err != nil:
		return message + " Current identity could not be read."
	case !found:
		return message + " No local identity is set."
	default:
		return message + fmt.Sprintf(" Current: %s <%s>.", current.UserName, current.Email)
	}
}

// pickProfile shows all profiles with the selected one marked.
func (m *profileManagerImpl) pickProfile(ctx context.Context, profiles []Profile) (Profile, bool, error) {
	items := make([]port.SelectItem, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, port.SelectItem{
			Label:  p.Name,
			Detail: p.Detail(),
			Marked: p.Selected,
		})
	}

	index, ok, err := m.ui.SelectOne(ctx, selectProfilePlaceholder, items)
	if err != nil || !ok {
		return Profile{}, false, err
	}
	if index < 0 || index >= len(profiles) {
		return Profile{}, false, fmt.Errorf("selection index %d out of range for %d profiles", index, len(profiles))
	}
	return profiles[index], true, nil
}
