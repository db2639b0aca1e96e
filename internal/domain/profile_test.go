package domain

import (
	"errors"
	"testing"
)

func TestValidateProfileName(t *testing.T) {
	profiles := []Profile{
		{Name: "Work", UserName: "John Smith", Email: "john.smith@myorg.com"},
		{Name: "Home", UserName: "John", Email: "john@home.net"},
	}

	tests := []struct {
		name         string
		input        string
		originalName string
		wantValid    bool
	}{
		{name: "new unique name", input: "OSS", wantValid: true},
		{name: "empty name", input: "", wantValid: false},
		{name: "whitespace only", input: "   ", wantValid: false},
		{name: "collision on create", input: "Work", wantValid: false},
		{name: "collision after trimming", input: " Work ", wantValid: false},
		{name: "case differs is not a collision", input: "work", wantValid: true},
		{name: "edit keeps own name", input: "Work", originalName: "Work", wantValid: true},
		{name: "edit renames onto another profile", input: "Home", originalName: "Work", wantValid: false},
		{name: "edit renames to a free name", input: "WorkNew", originalName: "Work", wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateProfileName(tt.input, profiles, tt.originalName)
			if got := msg == ""; got != tt.wantValid {
				t.Errorf("ValidateProfileName(%q, original %q) = %q, want valid=%v", tt.input, tt.originalName, msg, tt.wantValid)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email     string
		wantValid bool
	}{
		{email: "john.smith@myorg.com", wantValid: true},
		{email: "a@b.co", wantValid: true},
		{email: "not-an-email", wantValid: false},
		{email: "john@localhost", wantValid: false},
		{email: "john smith@myorg.com", wantValid: false},
		{email: "", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			msg := ValidateEmail(tt.email)
			if got := msg == ""; got != tt.wantValid {
				t.Errorf("ValidateEmail(%q) = %q, want valid=%v", tt.email, msg, tt.wantValid)
			}
		})
	}
}

func TestValidateUserName(t *testing.T) {
	if msg := ValidateUserName("John Smith"); msg != "" {
		t.Errorf("ValidateUserName() = %q, want valid", msg)
	}
	if msg := ValidateUserName(" \t"); msg == "" {
		t.Error("ValidateUserName() should reject blank input")
	}
}

func TestProfile_Validate(t *testing.T) {
	valid := Profile{Name: "Work", UserName: "John Smith", Email: "john.smith@myorg.com"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	invalid := valid
	invalid.Email = "nope"
	if err := invalid.Validate(); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Validate() error = %v, want ErrInvalidProfile", err)
	}
}

func TestFirstSelected(t *testing.T) {
	t.Run("none selected", func(t *testing.T) {
		if _, ok := firstSelected([]Profile{{Name: "A"}, {Name: "B"}}); ok {
			t.Error("firstSelected() should report no selection")
		}
	})

	t.Run("multiple selected resolves to stored order", func(t *testing.T) {
		got, ok := firstSelected([]Profile{{Name: "A"}, {Name: "B", Selected: true}, {Name: "C", Selected: true}})
		if !ok || got.Name != "B" {
			t.Errorf("firstSelected() = %q, %v; want B, true", got.Name, ok)
		}
	})
}

func TestEmptyProfile(t *testing.T) {
	got := EmptyProfile()
	want := Profile{Name: "Git Config Profiles", UserName: "NA", Email: "NA", Selected: false}
	if got != want {
		t.Errorf("EmptyProfile() = %+v, want %+v", got, want)
	}
}
