// Package terminal implements the PromptUI port on a line-oriented terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitprofile/gitprofile/internal/port"
)

// Keywords recognized by TextInput in place of a value.
const (
	BackKeyword   = ":back"
	CancelKeyword = ":cancel"
)

const selectedMarker = "★"

// styles are bound to a renderer so colors follow the capabilities of the
// writer they are printed to.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	hint    lipgloss.Style
	marker  lipgloss.Style
	info    lipgloss.Style
	warning lipgloss.Style
	invalid lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out, errOut io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return styles{
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
		hint:    r.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		marker:  r.NewStyle().Foreground(lipgloss.Color("220")),
		info:    r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		invalid: r.NewStyle().Foreground(lipgloss.Color("196")),
		failure: errR.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Prompter reads answers line by line from in and writes prompts to out.
// End of input dismisses whatever prompt is active.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	styles styles
}

// NewPrompter creates a Prompter. Error notifications go to errOut.
func NewPrompter(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		styles: newStyles(out, errOut),
	}
}

// TextInput shows the prompt and returns the entered line.
// An empty line accepts the pre-filled value.
func (p *Prompter) TextInput(ctx context.Context, spec port.InputSpec) (string, error) {
	header := p.styles.title.Render(spec.Title)
	if spec.TotalSteps > 0 {
		header += " " + p.styles.muted.Render(fmt.Sprintf("(%d/%d)", spec.Step, spec.TotalSteps))
	}
	p.printf("%s\n", header)

	if spec.ValidationMessage != "" {
		p.printf("%s %s\n", p.styles.invalid.Render("✗"), spec.ValidationMessage)
	}

	hint := CancelKeyword + " to abort"
	if spec.CanGoBack {
		hint = BackKeyword + " for the previous step, " + hint
	}
	p.printf("%s\n", p.styles.hint.Render(hint))

	prompt := spec.Prompt
	switch {
	case spec.Value != "":
		prompt += fmt.Sprintf(" [%s]", spec.Value)
	case spec.Placeholder != "":
		prompt += fmt.Sprintf(" (e.g. %s)", spec.Placeholder)
	}
	p.printf("%s: ", prompt)

	line, err := p.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", port.ErrInputCancelled
		}
		return "", err
	}

	switch strings.TrimSpace(line) {
	case CancelKeyword:
		return "", port.ErrInputCancelled
	case BackKeyword:
		return "", port.ErrInputBack
	case "":
		return spec.Value, nil
	}
	return line, nil
}

// Choice lists the options and reads a number or an option text.
// An empty line or end of input dismisses the prompt.
func (p *Prompter) Choice(ctx context.Context, message string, options ...string) (string, bool, error) {
	p.printf("%s\n", message)
	for i, option := range options {
		p.printf("  [%d] %s\n", i+1, option)
	}

	index, ok, err := p.readIndex(ctx, "Choose an option", options)
	if err != nil || !ok {
		return "", false, err
	}
	return options[index], true, nil
}

// SelectOne lists the items with their details and reads a number or a label.
func (p *Prompter) SelectOne(ctx context.Context, placeholder string, items []port.SelectItem) (int, bool, error) {
	p.printf("%s\n", p.styles.title.Render(placeholder))
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
		label := item.Label
		if item.Marked {
			label += " " + p.styles.marker.Render(selectedMarker)
		}
		p.printf("  [%d] %s\n", i+1, label)
		if item.Detail != "" {
			p.printf("      %s\n", p.styles.muted.Render(item.Detail))
		}
	}

	return p.readIndex(ctx, "Select", labels)
}

// Notify prints the message with a styled severity prefix.
func (p *Prompter) Notify(kind port.NotifyKind, message string) {
	switch kind {
	case port.NotifyError:
		fmt.Fprintf(p.errOut, "%s %s\n", p.styles.failure.Render("error:"), message)
	case port.NotifyWarning:
		fmt.Fprintf(p.out, "%s %s\n", p.styles.warning.Render("warning:"), message)
	default:
		fmt.Fprintf(p.out, "%s %s\n", p.styles.info.Render("info:"), message)
	}
}

// readIndex asks until the answer is a 1-based number or a label (case-insensitive).
func (p *Prompter) readIndex(ctx context.Context, prompt string, labels []string) (int, bool, error) {
	for {
		p.printf("%s (1-%d, empty to dismiss): ", prompt, len(labels))

		line, err := p.readLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}
			return 0, false, err
		}

		answer := strings.TrimSpace(line)
		if answer == "" {
			return 0, false, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(labels) {
			return n - 1, true, nil
		}
		for i, label := range labels {
			if strings.EqualFold(label, answer) {
				return i, true, nil
			}
		}
		p.printf("%s %q is not one of the options\n", p.styles.invalid.Render("✗"), answer)
	}
}

// readLine returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
