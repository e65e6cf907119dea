package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/internal/validation"
	"github.com/platebook/platebook/pkg/api"
)

// ErrBadCheckpoint wraps a malformed stored checkpoint. It is a
// configuration error: the pull for that collection fails before any network
// request is issued, other collections are unaffected.
var ErrBadCheckpoint = errors.New("invalid pull checkpoint")

// PullResult reports what an incremental pull did.
type PullResult struct {
	// Applied is the number of remote records inserted or overwritten
	// locally. Records held back because of pending local edits don't count.
	Applied int
	// CheckpointAdvanced is true when the pull succeeded and the collection
	// checkpoint moved forward.
	CheckpointAdvanced bool
}

// Puller retrieves remote changes since the last checkpoint and merges them
// into the local store. The remote copy is authoritative only for records
// without unsynced local work.
type Puller struct {
	api         apiclient.ClientAPI
	records     storage.RecordStorage
	checkpoints storage.CheckpointStorage
	logger      *slog.Logger
	now         func() time.Time
}

// NewPuller creates a pull engine.
func NewPuller(api apiclient.ClientAPI, records storage.RecordStorage, checkpoints storage.CheckpointStorage, logger *slog.Logger) *Puller {
	return &Puller{
		api:         api,
		records:     records,
		checkpoints: checkpoints,
		logger:      logger,
		now:         time.Now,
	}
}

// Pull fetches remote changes for one collection and merges them locally.
// With no checkpoint the full collection is fetched. The new checkpoint is
// captured before the request is issued, so a record updated on the server
// while the request is in flight is still covered by the next pull.
func (p *Puller) Pull(ctx context.Context, token string, collection models.Collection) (*PullResult, error) {
	var since *time.Time

	stored, err := p.checkpoints.GetCheckpoint(ctx, collection)
	switch {
	case err == nil:
		ts, parseErr := validation.ParseSyncTimestamp(stored)
		if parseErr != nil {
			return nil, fmt.Errorf("%w for %s: %v", ErrBadCheckpoint, collection, parseErr)
		}
		since = &ts
	case errors.Is(err, storage.ErrCheckpointNotFound):
		// First pull for this collection: full fetch.
	default:
		return nil, fmt.Errorf("failed to load checkpoint for %s: %w", collection, err)
	}

	// Capture the next checkpoint before the request goes out, not after it
	// returns: anything updated during the window is re-fetched next time.
	captured := p.now().UTC()

	remote, err := p.api.List(ctx, token, collection, since)
	if err != nil {
		return nil, fmt.Errorf("pull request for %s failed: %w", collection, err)
	}

	p.logger.Info("pulled remote records",
		"collection", collection,
		"count", len(remote),
		"incremental", since != nil)

	result := &PullResult{}
	for i := range remote {
		applied, err := p.applyRemote(ctx, collection, &remote[i])
		if err != nil {
			return result, fmt.Errorf("failed to apply remote record %s: %w", remote[i].ID, err)
		}
		if applied {
			result.Applied++
		}
	}

	if err := p.checkpoints.SaveCheckpoint(ctx, collection, validation.FormatSyncTimestamp(captured)); err != nil {
		// The pull itself succeeded; a stale checkpoint only means extra
		// records on the next pull.
		p.logger.Warn("failed to save checkpoint", "collection", collection, "error", err)
		return result, nil
	}
	result.CheckpointAdvanced = true

	return result, nil
}

// applyRemote merges one remote record into the local store.
// Rules: unknown id is inserted as synced; a clean (synced) local record is
// overwritten, remote being authoritative; a record with pending or
// conflicted local work is never overwritten, so unsynced edits survive and
// the next push detects divergence through the version check.
func (p *Puller) applyRemote(ctx context.Context, collection models.Collection, remote *api.Record) (bool, error) {
	rec := recordFromAPI(collection, remote)

	local, err := p.records.GetRecord(ctx, collection, rec.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrRecordNotFound) {
			return false, err
		}
		inserted := &models.StoredRecord{Record: *rec}
		inserted.MarkSynced(p.now().UTC())
		return true, p.records.SaveRecord(ctx, inserted)
	}

	switch local.Sync.Status {
	case models.StatusSynced:
		local.Record = *rec
		local.MarkSynced(p.now().UTC())
		return true, p.records.SaveRecord(ctx, local)
	default:
		p.logger.Debug("holding back remote record with unsynced local work",
			"collection", collection,
			"id", rec.ID,
			"status", local.Sync.Status)
		return false, nil
	}
}
