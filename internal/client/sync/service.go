package sync

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/models"
)

//go:generate moq -out service_mock.go . Service

// maxConflictRounds bounds how many times a single record may conflict and be
// re-pushed within one SyncAll run. A record still conflicting after that many
// rounds stays in conflict for the next run.
const maxConflictRounds = 3

// Service is the sync orchestrator surface used by the CLI.
type Service interface {
	// SyncAll runs a full pull-then-push cycle over every collection.
	// Concurrent calls coalesce into a single run sharing one result.
	SyncAll(ctx context.Context, accessToken string) (*SyncResult, error)

	// PendingCount returns the number of records awaiting a push.
	PendingCount(ctx context.Context) (int, error)
}

// SyncResult aggregates what one SyncAll run did.
type SyncResult struct {
	// Pulled counts remote records applied locally.
	Pulled int
	// Pushed counts local records confirmed by the server.
	Pushed int
	// Conflicts counts version mismatches detected during the run.
	Conflicts int
	// Resolved counts conflicts that were resolved and re-pushed successfully.
	Resolved int
	// Errors counts records whose push failed with a non-conflict error.
	Errors int
}

type service struct {
	puller   *Puller
	pusher   *Pusher
	applier  *ConflictApplier
	resolver Resolver
	records  storage.RecordStorage
	bus      *Bus
	logger   *slog.Logger
	group    singleflight.Group
}

// NewService wires the pull, push and conflict engines into an orchestrator.
// A nil resolver leaves conflicted records in place for a later interactive
// resolution.
func NewService(
	api apiclient.ClientAPI,
	records storage.RecordStorage,
	checkpoints storage.CheckpointStorage,
	resolver Resolver,
	bus *Bus,
	logger *slog.Logger,
) Service {
	return &service{
		puller:   NewPuller(api, records, checkpoints, logger),
		pusher:   NewPusher(api, records, logger),
		applier:  NewConflictApplier(records, logger),
		resolver: resolver,
		records:  records,
		bus:      bus,
		logger:   logger,
	}
}

// SyncAll runs pull then push for every collection. Overlapping calls (a
// manual sync racing a background one) share a single in-flight run through
// singleflight. Failures are isolated per record and per collection: one bad
// record never blocks the rest of the run.
func (s *service) SyncAll(ctx context.Context, accessToken string) (*SyncResult, error) {
	v, err, shared := s.group.Do("sync-all", func() (any, error) {
		return s.syncAll(ctx, accessToken)
	})
	if shared {
		s.logger.Debug("sync request coalesced into an in-flight run")
	}
	result, _ := v.(*SyncResult)
	return result, err
}

func (s *service) syncAll(ctx context.Context, accessToken string) (*SyncResult, error) {
	s.logger.Info("starting synchronization")
	s.bus.Publish(Event{Type: EventSyncStarted})

	result := &SyncResult{}

	var firstErr error
	for _, collection := range models.Collections {
		if err := s.syncCollection(ctx, accessToken, collection, result); err != nil {
			s.logger.Error("collection sync failed",
				"collection", collection,
				"error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("sync of %s failed: %w", collection, err)
			}
		}
	}

	s.logger.Info("synchronization completed",
		"pulled", result.Pulled,
		"pushed", result.Pushed,
		"conflicts", result.Conflicts,
		"resolved", result.Resolved,
		"errors", result.Errors)
	s.bus.Publish(Event{Type: EventSyncCompleted, Result: result})

	if firstErr != nil {
		return result, firstErr
	}
	return result, nil
}

// syncCollection pulls remote changes first so that pushes run against fresh
// local state, then pushes every pending record.
func (s *service) syncCollection(ctx context.Context, accessToken string, collection models.Collection, result *SyncResult) error {
	pullRes, err := s.puller.Pull(ctx, accessToken, collection)
	if err != nil {
		return err
	}
	result.Pulled += pullRes.Applied

	pending, err := s.records.ListByStatus(ctx, collection, models.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to list pending records: %w", err)
	}

	for _, rec := range pending {
		s.pushRecord(ctx, accessToken, rec, result)
	}
	return nil
}

// pushRecord pushes one record, resolving conflicts as they surface, up to
// maxConflictRounds times. Any failure is absorbed into the result so the
// remaining records still sync.
func (s *service) pushRecord(ctx context.Context, accessToken string, rec *models.StoredRecord, result *SyncResult) {
	for round := 0; round < maxConflictRounds; round++ {
		pushRes, err := s.pusher.Push(ctx, accessToken, rec)
		if err != nil {
			result.Errors++
			s.bus.Publish(Event{
				Type:       EventRecordError,
				Collection: rec.Record.Collection,
				RecordID:   rec.Record.ID,
				Error:      err.Error(),
			})
			return
		}

		switch pushRes.Status {
		case models.StatusSynced:
			result.Pushed++
			if round > 0 {
				result.Resolved++
			}
			return

		case models.StatusConflict:
			result.Conflicts++
			s.bus.Publish(Event{
				Type:       EventConflictDetected,
				Collection: rec.Record.Collection,
				RecordID:   rec.Record.ID,
				Conflict:   pushRes.Conflict,
			})
			resolved, err := s.resolveConflict(ctx, pushRes.Conflict)
			if err != nil {
				result.Errors++
				s.bus.Publish(Event{
					Type:       EventRecordError,
					Collection: rec.Record.Collection,
					RecordID:   rec.Record.ID,
					Error:      err.Error(),
				})
				return
			}
			if resolved == nil {
				// No resolver, or the user deferred: the record stays in
				// conflict until someone deals with it.
				return
			}
			if resolved.Sync.Status == models.StatusSynced {
				result.Resolved++
				return
			}
			rec = resolved

		default:
			result.Errors++
			s.bus.Publish(Event{
				Type:       EventRecordError,
				Collection: rec.Record.Collection,
				RecordID:   rec.Record.ID,
				Error:      rec.Sync.LastError,
			})
			return
		}
	}

	s.logger.Warn("record still conflicting after max resolution rounds",
		"collection", rec.Record.Collection,
		"id", rec.Record.ID,
		"rounds", maxConflictRounds)
}

// resolveConflict asks the resolver for a decision and applies it. Returns
// nil when no resolver is configured.
func (s *service) resolveConflict(ctx context.Context, conflict *models.Conflict) (*models.StoredRecord, error) {
	if s.resolver == nil {
		return nil, nil
	}
	res, err := s.resolver.Resolve(ctx, conflict)
	if err != nil {
		return nil, fmt.Errorf("conflict resolution for %s failed: %w", conflict.ID, err)
	}
	return s.applier.Apply(ctx, conflict, res)
}

// PendingCount returns the number of records awaiting a push across all
// collections.
func (s *service) PendingCount(ctx context.Context) (int, error) {
	total := 0
	for _, collection := range models.Collections {
		pending, err := s.records.ListByStatus(ctx, collection, models.StatusPending)
		if err != nil {
			return 0, fmt.Errorf("failed to count pending records for %s: %w", collection, err)
		}
		total += len(pending)
	}
	return total, nil
}
