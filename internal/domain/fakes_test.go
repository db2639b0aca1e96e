package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gitprofile/gitprofile/internal/domain"
	"github.com/gitprofile/gitprofile/internal/port"
	"github.com/pelletier/go-toml/v2"
)

// inputResponse is one scripted answer to TextInput.
type inputResponse struct {
	err   error
	value string
	keep  bool // answer with the pre-filled value
}

func typed(value string) inputResponse { return inputResponse{value: value} }
func keep() inputResponse              { return inputResponse{keep: true} }
func back() inputResponse              { return inputResponse{err: port.ErrInputBack} }
func cancel() inputResponse            { return inputResponse{err: port.ErrInputCancelled} }

type choiceResponse struct {
	answer string
	ok     bool
}

func answer(option string) choiceResponse { return choiceResponse{answer: option, ok: true} }
func dismiss() choiceResponse             { return choiceResponse{} }

type selectResponse struct {
	index int
	ok    bool
}

func pick(index int) selectResponse { return selectResponse{index: index, ok: true} }
func pickNone() selectResponse      { return selectResponse{} }

type choiceCall struct {
	message string
	options []string
}

type notification struct {
	message string
	kind    port.NotifyKind
}

// scriptedUI replays queued answers. An exhausted queue behaves like a user
// closing the prompt.
type scriptedUI struct {
	inputs        []inputResponse
	choices       []choiceResponse
	selects       []selectResponse
	inputSpecs    []port.InputSpec
	choiceCalls   []choiceCall
	selectCalls   [][]port.SelectItem
	notifications []notification
}

func (u *scriptedUI) TextInput(_ context.Context, spec port.InputSpec) (string, error) {
	u.inputSpecs = append(u.inputSpecs, spec)
	if len(u.inputs) == 0 {
		return "", port.ErrInputCancelled
	}
	r := u.inputs[0]
	u.inputs = u.inputs[1:]
	if r.err != nil {
		return "", r.err
	}
	if r.keep {
		return spec.Value, nil
	}
	return r.value, nil
}

func (u *scriptedUI) Choice(_ context.Context, message string, options ...string) (string, bool, error) {
	u.choiceCalls = append(u.choiceCalls, choiceCall{message: message, options: options})
	if len(u.choices) == 0 {
		return "", false, nil
	}
	r := u.choices[0]
	u.choices = u.choices[1:]
	return r.answer, r.ok, nil
}

func (u *scriptedUI) SelectOne(_ context.Context, _ string, items []port.SelectItem) (int, bool, error) {
	u.selectCalls = append(u.selectCalls, items)
	if len(u.selects) == 0 {
		return 0, false, nil
	}
	r := u.selects[0]
	u.selects = u.selects[1:]
	return r.index, r.ok, nil
}

func (u *scriptedUI) Notify(kind port.NotifyKind, message string) {
	u.notifications = append(u.notifications, notification{kind: kind, message: message})
}

type fakeValidator struct {
	workspace port.Workspace
}

func (v *fakeValidator) Check(context.Context) port.Workspace {
	return v.workspace
}

func validWorkspace() *fakeValidator {
	return &fakeValidator{workspace: port.Workspace{IsValid: true, Folder: "/work/repo", GitDir: "/work/repo/.git"}}
}

func invalidWorkspace(message string) *fakeValidator {
	return &fakeValidator{workspace: port.Workspace{IsValid: false, Message: message}}
}

type applyCall struct {
	folder   string
	identity port.Identity
}

type fakeIdentity struct {
	applyErr error
	readErr  error
	current  port.Identity
	applied  []applyCall
	found    bool
}

func (f *fakeIdentity) Apply(_ context.Context, folder string, identity port.Identity) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, applyCall{folder: folder, identity: identity})
	return nil
}

func (f *fakeIdentity) ReadCurrent(context.Context, string) (port.Identity, bool, error) {
	return f.current, f.found, f.readErr
}

// countingStore records writes made through a real store.
type countingStore struct {
	domain.ProfileStore
	writes int
}

func (s *countingStore) Upsert(ctx context.Context, profile domain.Profile, previousName string) error {
	s.writes++
	return s.ProfileStore.Upsert(ctx, profile, previousName)
}

func (s *countingStore) Select(ctx context.Context, name string) error {
	s.writes++
	return s.ProfileStore.Select(ctx, name)
}

// forgetfulStore accepts writes and drops them.
type forgetfulStore struct {
	domain.ProfileStore
}

func (forgetfulStore) Upsert(context.Context, domain.Profile, string) error {
	return nil
}

func (forgetfulStore) Select(context.Context, string) error {
	return nil
}

var (
	workProfile = domain.Profile{Name: "Work", UserName: "John Smith", Email: "john.smith@myorg.com"}
	homeProfile = domain.Profile{Name: "Home", UserName: "John", Email: "john@home.net"}
	ossProfile  = domain.Profile{Name: "OSS", UserName: "jsmith", Email: "jsmith@users.noreply.github.com"}

	// legacyProfile fails field validation, as a hand-edited entry can.
	legacyProfile = domain.Profile{Name: "Legacy", UserName: "Old Name", Email: "legacy-at-example"}
)

func selectedProfile(p domain.Profile) domain.Profile {
	p.Selected = true
	return p
}

// seedStore writes the profiles verbatim, so tests can start from states
// that Select would never produce (e.g. two selected profiles).
func seedStore(t *testing.T, profiles ...domain.Profile) *domain.FileProfileStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profiles.toml")
	store := domain.NewFileProfileStore(path)
	if len(profiles) == 0 {
		return store
	}

	data, err := toml.Marshal(domain.Config{Version: domain.ProfilesFormatVersion, Profiles: profiles})
	if err != nil {
		t.Fatalf("failed to marshal profiles: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write profiles: %v", err)
	}
	return store
}

func storedProfiles(t *testing.T, store domain.ProfileStore) []domain.Profile {
	t.Helper()

	profiles, err := store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() unexpected error: %v", err)
	}
	return profiles
}

func equalOptions(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
