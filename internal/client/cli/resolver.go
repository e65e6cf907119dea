package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/platebook/platebook/internal/client/iocli"
	"github.com/platebook/platebook/internal/client/sync"
	"github.com/platebook/platebook/internal/diff"
	"github.com/platebook/platebook/internal/models"
)

// InteractiveResolver asks the user how to resolve each conflict the sync
// engine reports. It shows the differing fields side by side and accepts a
// whole-record choice or a per-field merge.
type InteractiveResolver struct {
	io iocli.IO
}

func NewInteractiveResolver(io iocli.IO) *InteractiveResolver {
	return &InteractiveResolver{io: io}
}

var _ sync.Resolver = (*InteractiveResolver)(nil)

func (r *InteractiveResolver) Resolve(ctx context.Context, conflict *models.Conflict) (sync.Resolution, error) {
	r.io.Println()
	r.io.Printf("Conflict in %s/%s (local v%d, server v%d)\n",
		conflict.Collection, conflict.ID, conflict.Local.Record.Version, conflict.Remote.Version)

	diffs := diff.Symmetric(conflict.Local.Record.Fields, conflict.Remote.Fields)
	for _, fd := range diffs {
		r.io.Printf("  %s\n", fd.Path)
		r.io.Printf("    local:  %s\n", formatValue(fd.Local))
		r.io.Printf("    remote: %s\n", formatValue(fd.Remote))
	}

	for {
		answer, err := r.io.ReadInput("Keep (l)ocal, keep (r)emote, or (m)erge field by field? ")
		if err != nil {
			return sync.Resolution{}, fmt.Errorf("failed to read resolution: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "l", "local":
			return sync.Resolution{Choice: sync.KeepLocal}, nil
		case "r", "remote":
			return sync.Resolution{Choice: sync.KeepRemote}, nil
		case "m", "merge":
			choices, err := r.promptFieldChoices(diffs)
			if err != nil {
				return sync.Resolution{}, err
			}
			return sync.Resolution{Choice: sync.Merge, FieldChoices: choices}, nil
		default:
			r.io.Println("Please answer l, r or m.")
		}
	}
}

// promptFieldChoices asks per differing field. Empty input leaves the field
// to the engine default: the side that actually changed since the last sync.
func (r *InteractiveResolver) promptFieldChoices(diffs []diff.FieldDiff) (map[string]sync.ResolutionChoice, error) {
	choices := make(map[string]sync.ResolutionChoice, len(diffs))
	for _, fd := range diffs {
		for {
			answer, err := r.io.ReadInput(fmt.Sprintf("  %s: keep (l)ocal or (r)emote? [auto] ", fd.Path))
			if err != nil {
				return nil, fmt.Errorf("failed to read field choice: %w", err)
			}
			done := true
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "":
				// engine default
			case "l", "local":
				choices[fd.Path] = sync.KeepLocal
			case "r", "remote":
				choices[fd.Path] = sync.KeepRemote
			default:
				r.io.Println("  Please answer l, r or leave empty.")
				done = false
			}
			if done {
				break
			}
		}
	}
	return choices, nil
}
