package sync

import (
	"context"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/pkg/api"
)

func emptyList(ctx context.Context, token string, collection models.Collection, since *time.Time) ([]api.Record, error) {
	return nil, nil
}

func TestSyncAll_PullsThenPushes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	mockAPI := &apiclient.ClientAPIMock{
		ListFunc: func(ctx context.Context, token string, collection models.Collection, since *time.Time) ([]api.Record, error) {
			if collection == models.CollectionPlaces {
				return []api.Record{apiRecordFixture("remote-1", 1, map[string]any{"name": "Geranium"})}, nil
			}
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, token string, collection models.Collection, fields map[string]any) (*api.Record, error) {
			created := apiRecordFixture("srv-cur-1", 1, fields)
			return &created, nil
		},
	}

	local := &models.StoredRecord{
		Record: models.Record{
			ID:         "local-1",
			Collection: models.CollectionCurations,
			Fields:     models.Fields{"title": "Summer in Copenhagen"},
		},
		Sync: models.SyncState{Status: models.StatusPending},
	}
	require.NoError(t, store.SaveRecord(ctx, local))

	svc := NewService(mockAPI, store, store, nil, NewBus(), testLogger())

	result, err := svc.SyncAll(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pulled)
	assert.Equal(t, 1, result.Pushed)
	assert.Zero(t, result.Conflicts)
	assert.Zero(t, result.Errors)

	pulled, err := store.GetRecord(ctx, models.CollectionPlaces, "remote-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, pulled.Sync.Status)

	pushed, err := store.GetRecord(ctx, models.CollectionCurations, "srv-cur-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, pushed.Sync.Status)
	assert.Equal(t, int64(1), pushed.Record.Version)
}

func TestSyncAll_CoalescesConcurrentRuns(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once gosync.Once

	mockAPI := &apiclient.ClientAPIMock{
		ListFunc: func(ctx context.Context, token string, collection models.Collection, since *time.Time) ([]api.Record, error) {
			once.Do(func() {
				close(entered)
				<-release
			})
			return nil, nil
		},
	}

	svc := NewService(mockAPI, store, store, nil, NewBus(), testLogger())

	results := make([]*SyncResult, 2)
	errs := make([]error, 2)
	var wg gosync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = svc.SyncAll(ctx, testToken)
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = svc.SyncAll(ctx, testToken)
	}()
	// Let the second call reach the singleflight gate before the first run
	// finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Same(t, results[0], results[1], "concurrent calls share one run")
	assert.Len(t, mockAPI.ListCalls(), len(models.Collections), "only one run hit the network")
}

func TestSyncAll_ConflictWithoutResolverStaysConflicted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	current := apiRecordFixture("p1", 5, map[string]any{"name": "Noma", "rating": float64(5)})
	mockAPI := &apiclient.ClientAPIMock{
		ListFunc: emptyList,
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			return nil, &apiclient.ConflictError{Current: &current, Message: "version mismatch"}
		},
	}

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma", "rating": float64(4)})
	rec.Record.Fields["name"] = "Noma 2.0"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	bus := NewBus()
	events, unsubscribe := bus.Subscribe(16)
	defer unsubscribe()

	svc := NewService(mockAPI, store, store, nil, bus, testLogger())

	result, err := svc.SyncAll(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)
	assert.Zero(t, result.Resolved)

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConflict, saved.Sync.Status)

	var types []EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Contains(t, types, EventSyncStarted)
	assert.Contains(t, types, EventConflictDetected)
	assert.Contains(t, types, EventSyncCompleted)
}

func TestSyncAll_ResolvesConflictAndRepushes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// First patch hits a version mismatch; after the merge resolution the
	// second patch carries only the local change against the fresh version.
	current := apiRecordFixture("p1", 5, map[string]any{"name": "Noma", "rating": float64(5)})
	var patches []struct {
		delta   map[string]any
		version int64
	}
	mockAPI := &apiclient.ClientAPIMock{
		ListFunc: emptyList,
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			patches = append(patches, struct {
				delta   map[string]any
				version int64
			}{delta, expectedVersion})
			if expectedVersion < 5 {
				return nil, &apiclient.ConflictError{Current: &current, Message: "version mismatch"}
			}
			updated := apiRecordFixture(id, 6, map[string]any{"name": "Noma 2.0", "rating": float64(5)})
			return &updated, nil
		},
	}

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma", "rating": float64(4)})
	rec.Record.Fields["name"] = "Noma 2.0"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	svc := NewService(mockAPI, store, store, &PolicyResolver{Choice: Merge}, NewBus(), testLogger())

	result, err := svc.SyncAll(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 1, result.Resolved)
	assert.Equal(t, 1, result.Pushed)

	require.Len(t, patches, 2)
	assert.Equal(t, int64(3), patches[0].version)
	assert.Equal(t, int64(5), patches[1].version, "re-push uses the remote version")
	assert.Equal(t, map[string]any{"name": "Noma 2.0"}, patches[1].delta, "re-push carries only the surviving local change")

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, saved.Sync.Status)
	assert.Equal(t, int64(6), saved.Record.Version)
	assert.Equal(t, "Noma 2.0", saved.Record.Fields["name"])
	assert.Equal(t, float64(5), saved.Record.Fields["rating"])
}

func TestSyncAll_KeepRemoteResolutionNeedsNoRepush(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	current := apiRecordFixture("p1", 5, map[string]any{"name": "Noma", "rating": float64(5)})
	mockAPI := &apiclient.ClientAPIMock{
		ListFunc: emptyList,
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			return nil, &apiclient.ConflictError{Current: &current, Message: "version mismatch"}
		},
	}

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma", "rating": float64(4)})
	rec.Record.Fields["name"] = "Noma 2.0"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	svc := NewService(mockAPI, store, store, &PolicyResolver{Choice: KeepRemote}, NewBus(), testLogger())

	result, err := svc.SyncAll(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 1, result.Resolved)
	assert.Len(t, mockAPI.PatchCalls(), 1, "adopting the remote state needs no second push")

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, saved.Sync.Status)
	assert.Equal(t, int64(5), saved.Record.Version)
	assert.Equal(t, "Noma", saved.Record.Fields["name"])
}

func TestSyncAll_PullFailureIsolatedPerCollection(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	mockAPI := &apiclient.ClientAPIMock{
		ListFunc: func(ctx context.Context, token string, collection models.Collection, since *time.Time) ([]api.Record, error) {
			if collection == models.CollectionPlaces {
				return nil, &apiclient.TransportError{Err: context.DeadlineExceeded}
			}
			return []api.Record{apiRecordFixture("c1", 1, map[string]any{"title": "Tokyo"})}, nil
		},
	}

	svc := NewService(mockAPI, store, store, nil, NewBus(), testLogger())

	result, err := svc.SyncAll(ctx, testToken)
	require.Error(t, err, "the failed collection surfaces in the run error")
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Pulled, "the healthy collection still synced")

	_, err = store.GetRecord(ctx, models.CollectionCurations, "c1")
	assert.NoError(t, err)
}

func TestPendingCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	svc := NewService(&apiclient.ClientAPIMock{}, store, store, nil, NewBus(), testLogger())

	count, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	pending := storedFixture(models.CollectionPlaces, "p1", 1, models.Fields{"name": "Noma"})
	pending.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, pending))

	synced := storedFixture(models.CollectionCurations, "c1", 1, models.Fields{"title": "Tokyo"})
	require.NoError(t, store.SaveRecord(ctx, synced))

	count, err = svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
