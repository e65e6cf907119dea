package sync

import (
	"context"

	"github.com/platebook/platebook/internal/models"
)

// ResolutionChoice names one of the three directed conflict resolutions.
type ResolutionChoice string

const (
	// KeepLocal discards the remote snapshot and re-pushes the local state
	// using the remote's current version as the new precondition.
	KeepLocal ResolutionChoice = "local"
	// KeepRemote overwrites the local record with the remote snapshot and
	// discards local edits.
	KeepRemote ResolutionChoice = "remote"
	// Merge combines both sides field by field under user direction and
	// re-pushes the result.
	Merge ResolutionChoice = "merge"
)

// Resolution is the answer to a conflict. For Merge, FieldChoices maps a
// differing field path (as reported by diff.Symmetric) to the side that
// survives; paths not listed default to whichever side diverged from the
// last synced baseline.
type Resolution struct {
	FieldChoices map[string]ResolutionChoice
	Choice       ResolutionChoice
}

// Resolver supplies resolutions for detected conflicts. The engine emits the
// conflict and awaits the answer, so an interactive CLI, an automated policy
// or a test harness can all stand behind the same interface.
type Resolver interface {
	Resolve(ctx context.Context, conflict *models.Conflict) (Resolution, error)
}

// PolicyResolver resolves every conflict the same way without asking anyone.
// Useful for headless callers and tests.
type PolicyResolver struct {
	FieldChoices map[string]ResolutionChoice
	Choice       ResolutionChoice
}

// Resolve returns the fixed policy resolution.
func (p *PolicyResolver) Resolve(ctx context.Context, conflict *models.Conflict) (Resolution, error) {
	return Resolution{Choice: p.Choice, FieldChoices: p.FieldChoices}, nil
}
