package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gitprofile/gitprofile/internal/port"
)

const profileWizardSteps = 3

// WizardState accumulates the answers of the profile wizard.
type WizardState struct {
	ProfileName string
	UserName    string
	Email       string
}

// CreateProfile runs the profile wizard and stores the result unselected.
// A cancelled wizard stores nothing and is not an error.
func (m *profileManagerImpl) CreateProfile(ctx context.Context) error {
	profiles, err := m.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	state := &WizardState{}
	wizard := &profileWizard{state: state, profiles: profiles}
	if err := RunWizard(ctx, m.ui, wizard.pickProfileName); err != nil {
		if errors.Is(err, ErrWizardCancelled) {
			return nil
		}
		return err
	}

	profile := Profile{
		Name:     state.ProfileName,
		UserName: state.UserName,
		Email:    state.Email,
		Selected: false,
	}
	if err := m.store.Upsert(ctx, profile, ""); err != nil {
		return fmt.Errorf("failed to save profile '%s': %w", profile.Name, err)
	}
	return nil
}

// EditProfile lets the user pick a profile and runs the wizard seeded with
// its values. The result replaces the picked profile, which may be renamed,
// and keeps its selection flag.
func (m *profileManagerImpl) EditProfile(ctx context.Context) error {
	profiles, err := m.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}
	if len(profiles) == 0 {
		m.ui.Notify(port.NotifyWarning, "No profiles found")
		return nil
	}

	picked, ok, err := m.pickProfile(ctx, profiles)
	if err != nil || !ok {
		return err
	}

	state := &WizardState{
		ProfileName: picked.Name,
		UserName:    picked.UserName,
		Email:       picked.Email,
	}
	wizard := &profileWizard{state: state, profiles: profiles, originalName: picked.Name}
	if err := RunWizard(ctx, m.ui, wizard.pickProfileName); err != nil {
		if errors.Is(err, ErrWizardCancelled) {
			return nil
		}
		return err
	}

	profile := Profile{
		Name:     state.ProfileName,
		UserName: state.UserName,
		Email:    state.Email,
		Selected: picked.Selected,
	}
	if err := m.store.Upsert(ctx, profile, picked.Name); err != nil {
		return fmt.Errorf("failed to save profile '%s': %w", profile.Name, err)
	}
	return nil
}

// profileWizard holds the three steps shared by the create and edit flows.
// originalName is empty when creating.
type profileWizard struct {
	state        *WizardState
	profiles     []Profile
	originalName string
}

func (p *profileWizard) title() string {
	if p.originalName == "" {
		return "Create a profile"
	}
	return "Edit profile"
}

func (p *profileWizard) pickProfileName(ctx context.Context, w *Wizard) (InputStep, error) {
	value, err := w.ShowInput(ctx, port.InputSpec{
		Title:       p.title(),
		Step:        1,
		TotalSteps:  profileWizardSteps,
		Prompt:      "Enter name for the profile",
		Value:       p.state.ProfileName,
		Placeholder: "Work",
	}, func(name string) string {
		return ValidateProfileName(name, p.profiles, p.originalName)
	})
	if err != nil {
		return nil, err
	}
	p.state.ProfileName = strings.TrimSpace(value)
	return p.pickUserName, nil
}

func (p *profileWizard) pickUserName(ctx context.Context, w *Wizard) (InputStep, error) {
	value, err := w.ShowInput(ctx, port.InputSpec{
		Title:       p.title(),
		Step:        2,
		TotalSteps:  profileWizardSteps,
		Prompt:      "Enter the user name",
		Value:       p.state.UserName,
		Placeholder: "John Smith",
	}, ValidateUserName)
	if err != nil {
		return nil, err
	}
	p.state.UserName = strings.TrimSpace(value)
	return p.pickEmail, nil
}

func (p *profileWizard) pickEmail(ctx context.Context, w *Wizard) (InputStep, error) {
	value, err := w.ShowInput(ctx, port.InputSpec{
		Title:       p.title(),
		Step:        3,
		TotalSteps:  profileWizardSteps,
		Prompt:      "Enter the email",
		Value:       p.state.Email,
		Placeholder: "john.smith@myorg.com",
	}, ValidateEmail)
	if err != nil {
		return nil, err
	}
	p.state.Email = strings.TrimSpace(value)
	return nil, nil
}
