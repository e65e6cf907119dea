package sync

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/diff"
	"github.com/platebook/platebook/internal/models"
)

// ConflictApplier turns a resolution into local state that the next push can
// carry to the server. It never talks to the network itself.
type ConflictApplier struct {
	records storage.RecordStorage
	logger  *slog.Logger
	now     func() time.Time
}

// NewConflictApplier creates a resolution applier.
func NewConflictApplier(records storage.RecordStorage, logger *slog.Logger) *ConflictApplier {
	return &ConflictApplier{
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// Apply rewrites the conflicted record according to the resolution.
//
// KeepRemote adopts the remote snapshot outright and marks the record synced;
// no push follows. KeepLocal and Merge both rebase the record onto the remote:
// the snapshot becomes the remote state and the record's version becomes the
// remote version, so the next push sends exactly the surviving local values
// with a fresh optimistic-lock precondition. If the server moved on again in
// the meantime, that push raises a new conflict rather than losing data.
func (a *ConflictApplier) Apply(ctx context.Context, conflict *models.Conflict, res Resolution) (*models.StoredRecord, error) {
	rec, err := a.records.GetRecord(ctx, conflict.Collection, conflict.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicted record %s: %w", conflict.ID, err)
	}
	if rec.Sync.Status != models.StatusConflict {
		return nil, fmt.Errorf("record %s is not in conflict (status %s)", conflict.ID, rec.Sync.Status)
	}

	switch res.Choice {
	case KeepRemote:
		rec.Record = *conflict.Remote.Clone()
		rec.MarkSynced(a.now().UTC())

	case KeepLocal:
		a.rebase(rec, conflict, rec.Record.Fields.Clone())

	case Merge:
		merged := a.mergeFields(conflict, res.FieldChoices)
		a.rebase(rec, conflict, merged)

	default:
		return nil, fmt.Errorf("unknown resolution choice %q for record %s", res.Choice, conflict.ID)
	}

	if err := a.records.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}

	a.logger.Info("applied conflict resolution",
		"collection", conflict.Collection,
		"id", conflict.ID,
		"choice", res.Choice,
		"status", rec.Sync.Status)

	return rec, nil
}

// rebase points the record at the remote state as its new baseline while
// keeping the given fields as the local working copy, then marks it pending.
func (a *ConflictApplier) rebase(rec *models.StoredRecord, conflict *models.Conflict, fields models.Fields) {
	rec.Sync.LastSyncedSnapshot = conflict.Remote.Clone()
	rec.Record.Version = conflict.Remote.Version
	rec.Record.UpdatedAt = conflict.Remote.UpdatedAt
	rec.Record.Fields = fields
	rec.Sync.RetryCount = 0
	rec.MarkEdited()
}

// mergeFields builds the merged field set: start from the remote copy, then
// for every differing field apply the chosen side. A field without an
// explicit choice defaults to whichever side actually changed it relative to
// the synced baseline; when both sides changed it, the local edit survives so
// an unanswered prompt never silently drops local work.
func (a *ConflictApplier) mergeFields(conflict *models.Conflict, choices map[string]ResolutionChoice) models.Fields {
	merged := conflict.Remote.Fields.Clone()
	baseline := conflict.Local.BaselineFields()
	for _, fd := range diff.Symmetric(conflict.Local.Record.Fields, conflict.Remote.Fields) {
		choice, ok := choices[fd.Path]
		if !ok {
			choice = defaultMergeChoice(baseline, fd)
		}
		if choice == KeepRemote {
			continue
		}
		diff.SetPath(merged, fd.Path, fd.Local)
	}
	return merged
}

// defaultMergeChoice keeps the side that diverged from the baseline. A field
// the local copy never touched takes the remote change.
func defaultMergeChoice(baseline models.Fields, fd diff.FieldDiff) ResolutionChoice {
	base, _ := diff.GetPath(baseline, fd.Path)
	if reflect.DeepEqual(fd.Local, base) {
		return KeepRemote
	}
	return KeepLocal
}
