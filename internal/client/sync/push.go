package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/diff"
	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/pkg/api"
)

// Backoff bounds for transient push failures, per record.
const (
	backoffBase = 500 * time.Millisecond
	backoffCap  = 15 * time.Second
	maxRetries  = 3
)

// PushResult reports the outcome of pushing one record.
type PushResult struct {
	// Status is the record's sync status after the attempt: synced on
	// success, conflict on a version mismatch, pending or error otherwise.
	Status models.SyncStatus
	// Conflict is set when Status is StatusConflict.
	Conflict *models.Conflict
}

// Pusher sends locally pending creates and partial updates to the remote
// API, supplying the last-known version for optimistic-lock checking.
type Pusher struct {
	api     apiclient.ClientAPI
	records storage.RecordStorage
	logger  *slog.Logger
	now     func() time.Time
	backoff func() retry.Backoff
}

// NewPusher creates a push engine.
func NewPusher(api apiclient.ClientAPI, records storage.RecordStorage, logger *slog.Logger) *Pusher {
	return &Pusher{
		api:     api,
		records: records,
		logger:  logger,
		now:     time.Now,
		backoff: defaultBackoff,
	}
}

// Push sends one pending record to the server. An unmodified record is
// marked synced without a network call. A version mismatch builds a Conflict
// and halts further pushes of the record until it is resolved; the snapshot
// is never touched on failure so the next delta stays correct.
func (p *Pusher) Push(ctx context.Context, token string, rec *models.StoredRecord) (*PushResult, error) {
	if rec.Sync.Status != models.StatusPending {
		return nil, fmt.Errorf("record %s is not pending (status %s)", rec.Record.ID, rec.Sync.Status)
	}

	delta := diff.Changed(rec.Record.Fields, rec.BaselineFields())
	if rec.Record.Version > 0 && len(delta) == 0 {
		// Nothing actually changed: idempotent no-op, no network call.
		rec.MarkSynced(p.now().UTC())
		if err := p.records.SaveRecord(ctx, rec); err != nil {
			return nil, err
		}
		return &PushResult{Status: models.StatusSynced}, nil
	}

	var (
		confirmed *api.Record
		pushErr   error
	)
	if rec.Record.Version == 0 {
		confirmed, pushErr = p.create(ctx, token, rec)
	} else {
		confirmed, pushErr = p.patch(ctx, token, rec, delta)
	}

	if pushErr != nil {
		return p.handlePushError(ctx, token, rec, pushErr)
	}

	// Adopt the server-confirmed state: id, version, timestamps and the
	// merged field set become the new snapshot. A create re-keys the record
	// under the server-assigned id.
	localID := rec.Record.ID
	rec.Record = *recordFromAPI(rec.Record.Collection, confirmed)
	rec.MarkSynced(p.now().UTC())
	if err := p.records.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}
	if localID != rec.Record.ID {
		if err := p.records.DeleteRecord(ctx, rec.Record.Collection, localID); err != nil {
			return nil, fmt.Errorf("failed to drop provisional record %s: %w", localID, err)
		}
	}

	p.logger.Info("pushed record",
		"collection", rec.Record.Collection,
		"id", rec.Record.ID,
		"version", rec.Record.Version)

	return &PushResult{Status: models.StatusSynced}, nil
}

// create issues a full create with transient-failure backoff.
func (p *Pusher) create(ctx context.Context, token string, rec *models.StoredRecord) (*api.Record, error) {
	var out *api.Record
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		created, err := p.api.Create(ctx, token, rec.Record.Collection, rec.Record.Fields)
		if err != nil {
			if apiclient.IsRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = created
		return nil
	})
	return out, err
}

// patch issues a partial update carrying only the delta plus the last-known
// version as the optimistic-lock precondition.
func (p *Pusher) patch(ctx context.Context, token string, rec *models.StoredRecord, delta models.Fields) (*api.Record, error) {
	var out *api.Record
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		updated, err := p.api.Patch(ctx, token, rec.Record.Collection, rec.Record.ID, delta, rec.Record.Version)
		if err != nil {
			if apiclient.IsRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = updated
		return nil
	})
	return out, err
}

func defaultBackoff() retry.Backoff {
	b := retry.NewExponential(backoffBase)
	b = retry.WithCappedDuration(backoffCap, b)
	return retry.WithMaxRetries(maxRetries, b)
}

// handlePushError routes a failed push into the error taxonomy: a 409
// becomes a Conflict, validation errors stick to the record for a manual
// edit, transient errors leave the record pending for the next run.
func (p *Pusher) handlePushError(ctx context.Context, token string, rec *models.StoredRecord, pushErr error) (*PushResult, error) {
	var conflictErr *apiclient.ConflictError
	if errors.As(pushErr, &conflictErr) {
		conflict, err := p.buildConflict(ctx, token, rec, conflictErr)
		if err != nil {
			return nil, err
		}
		rec.Sync.Status = models.StatusConflict
		rec.Sync.LastError = conflictErr.Message
		if err := p.records.SaveRecord(ctx, rec); err != nil {
			return nil, err
		}
		return &PushResult{Status: models.StatusConflict, Conflict: conflict}, nil
	}

	var validationErr *apiclient.ValidationError
	if errors.As(pushErr, &validationErr) {
		// Non-retryable: needs a manual edit before the next attempt.
		rec.Sync.Status = models.StatusError
		rec.Sync.LastError = validationErr.Message
		if err := p.records.SaveRecord(ctx, rec); err != nil {
			return nil, err
		}
		return &PushResult{Status: models.StatusError}, nil
	}

	// Transient failure: the record stays pending, the retry counter feeds
	// the next backoff schedule. The snapshot is untouched.
	rec.Sync.RetryCount++
	rec.Sync.LastError = pushErr.Error()
	if err := p.records.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}
	p.logger.Warn("push failed, will retry",
		"collection", rec.Record.Collection,
		"id", rec.Record.ID,
		"retries", rec.Sync.RetryCount,
		"error", pushErr)
	return &PushResult{Status: models.StatusPending}, nil
}

// buildConflict assembles the conflict record from the local state and the
// current remote record, fetching the latter when the 409 didn't attach it.
func (p *Pusher) buildConflict(ctx context.Context, token string, rec *models.StoredRecord, conflictErr *apiclient.ConflictError) (*models.Conflict, error) {
	remote := conflictErr.Current
	if remote == nil {
		fetched, err := p.api.Get(ctx, token, rec.Record.Collection, rec.Record.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch remote record for conflict %s: %w", rec.Record.ID, err)
		}
		remote = fetched
	}

	return &models.Conflict{
		Collection: rec.Record.Collection,
		ID:         rec.Record.ID,
		Local:      rec.Clone(),
		Remote:     recordFromAPI(rec.Record.Collection, remote),
	}, nil
}
