package port

import "context"

// Workspace is the outcome of a workspace check.
// An invalid workspace is a normal result and carries a user-facing message.
type Workspace struct {
	Folder  string // Root of the working tree
	GitDir  string // Location of the repository metadata (usually Folder/.git)
	Message string // Reason the workspace is not usable
	IsValid bool
}

// WorkspaceValidator is the abstraction interface for deciding whether the
// current workspace is a usable git repository.
type WorkspaceValidator interface {
	Check(ctx context.Context) Workspace
}
