package port

import "context"

// Identity is the pair of git settings a profile controls.
type Identity struct {
	UserName string // user.name
	Email    string // user.email
}

// GitIdentityApplier is the abstraction interface for the local git identity of a workspace.
type GitIdentityApplier interface {
	// Apply writes user.name and user.email into the local config of the repository at folder.
	Apply(ctx context.Context, folder string, identity Identity) error

	// ReadCurrent reads the local identity of the repository at folder.
	// The boolean result is false when user.name or user.email is not set locally.
	ReadCurrent(ctx context.Context, folder string) (Identity, bool, error)
}
