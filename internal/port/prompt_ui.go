// Package port defines interfaces for external system integrations.
// It provides abstractions for user prompts, workspace detection and git identity storage.
package port

import (
	"context"
	"errors"
)

// Sentinel errors returned by PromptUI.TextInput for navigation outside of a value.
var (
	// ErrInputBack indicates that the user asked to return to the previous input.
	ErrInputBack = errors.New("input: back requested")

	// ErrInputCancelled indicates that the user dismissed the input.
	ErrInputCancelled = errors.New("input: cancelled")
)

// NotifyKind is the severity of a user-facing notification.
type NotifyKind int

const (
	NotifyInfo NotifyKind = iota
	NotifyWarning
	NotifyError
)

// String returns the lowercase name of the notification kind.
func (k NotifyKind) String() string {
	switch k {
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	default:
		return "info"
	}
}

// InputSpec describes one text acquisition.
type InputSpec struct {
	Title             string // Flow title (e.g., "Create a profile")
	Prompt            string // Question shown to the user
	Value             string // Pre-filled value, returned when the user accepts it unchanged
	Placeholder       string // Example value shown when Value is empty
	ValidationMessage string // Rejection message for the previous attempt, if any
	Step              int
	TotalSteps        int
	CanGoBack         bool
}

// SelectItem is one entry of a selection list.
type SelectItem struct {
	Label  string
	Detail string
	Marked bool // Rendered with a marker, used for the currently selected profile
}

// PromptUI is the abstraction interface for interactive user prompts.
// Every method blocks until the user responds or dismisses the prompt.
type PromptUI interface {
	// TextInput asks for a single line of text.
	// It returns ErrInputBack or ErrInputCancelled when the user navigates away.
	TextInput(ctx context.Context, spec InputSpec) (string, error)

	// Choice asks the user to pick one of the options.
	// The boolean result is false when the prompt was dismissed.
	Choice(ctx context.Context, message string, options ...string) (string, bool, error)

	// SelectOne shows a selection list and returns the index of the picked item.
	// The boolean result is false when nothing was picked.
	SelectOne(ctx context.Context, placeholder string, items []SelectItem) (int, bool, error)

	// Notify shows a message to the user.
	Notify(kind NotifyKind, message string)
}
