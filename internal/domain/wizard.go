package domain

import (
	"context"
	"errors"

	"github.com/gitprofile/gitprofile/internal/port"
)

// InputStep acquires one value and returns the step that follows it,
// or nil when it was the last one.
type InputStep func(ctx context.Context, w *Wizard) (InputStep, error)

// Wizard runs a chain of input steps with back navigation and cancellation.
// Steps keep their values in caller-owned state, so a step re-run after
// going back shows the value entered earlier.
type Wizard struct {
	ui    port.PromptUI
	steps []InputStep
}

// RunWizard drives the steps starting at start until the last step completes.
// It returns ErrWizardCancelled when the user dismisses any input.
func RunWizard(ctx context.Context, ui port.PromptUI, start InputStep) error {
	w := &Wizard{ui: ui}
	return w.stepThrough(ctx, start)
}

func (w *Wizard) stepThrough(ctx context.Context, start InputStep) error {
	step := start
	for step != nil {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.steps = append(w.steps, step)
		next, err := step(ctx, w)
		switch {
		case err == nil:
			step = next
		case errors.Is(err, port.ErrInputBack):
			// drop the current step; re-run the previous one, or the first again
			w.steps = w.steps[:len(w.steps)-1]
			if len(w.steps) > 0 {
				step = w.steps[len(w.steps)-1]
				w.steps = w.steps[:len(w.steps)-1]
			}
		case errors.Is(err, port.ErrInputCancelled):
			return ErrWizardCancelled
		default:
			return err
		}
	}
	return nil
}

// ShowInput asks for a value until validate accepts it.
// A rejected value is shown again together with the rejection message.
func (w *Wizard) ShowInput(ctx context.Context, spec port.InputSpec, validate func(string) string) (string, error) {
	spec.CanGoBack = len(w.steps) > 1
	for {
		value, err := w.ui.TextInput(ctx, spec)
		if err != nil {
			return "", err
		}
		if validate == nil {
			return value, nil
		}
		msg := validate(value)
		if msg == "" {
			return value, nil
		}
		spec.Value = value
		spec.ValidationMessage = msg
	}
}
