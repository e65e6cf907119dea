package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/platebook/platebook/internal/client/api"
	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/client/storage/boltdb"
	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/pkg/api"
)

func newTestPusher(t *testing.T, mockAPI *apiclient.ClientAPIMock) (*Pusher, *boltdb.Storage) {
	t.Helper()

	store := newTestStore(t)
	pusher := NewPusher(mockAPI, store, testLogger())
	pusher.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
	}
	return pusher, store
}

func TestPush_CreatesNewRecord(t *testing.T) {
	ctx := context.Background()

	mockAPI := &apiclient.ClientAPIMock{
		CreateFunc: func(ctx context.Context, token string, collection models.Collection, fields map[string]any) (*api.Record, error) {
			created := apiRecordFixture("srv-1", 1, fields)
			return &created, nil
		},
	}
	pusher, store := newTestPusher(t, mockAPI)

	rec := &models.StoredRecord{
		Record: models.Record{
			ID:         "local-tmp-1",
			Collection: models.CollectionPlaces,
			Fields:     models.Fields{"name": "Noma"},
		},
		Sync: models.SyncState{Status: models.StatusPending},
	}
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, result.Status)

	// The record is re-keyed under the server-assigned id.
	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Record.Version)
	assert.Equal(t, models.StatusSynced, saved.Sync.Status)
	require.NotNil(t, saved.Sync.LastSyncedSnapshot)
	assert.Equal(t, "Noma", saved.Sync.LastSyncedSnapshot.Fields["name"])

	_, err = store.GetRecord(ctx, models.CollectionPlaces, "local-tmp-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound, "the provisional record is gone")

	require.Len(t, mockAPI.CreateCalls(), 1)
	assert.Equal(t, testToken, mockAPI.CreateCalls()[0].Token)
}

func TestPush_PatchSendsOnlyChangedFields(t *testing.T) {
	ctx := context.Background()

	var gotDelta map[string]any
	var gotVersion int64
	mockAPI := &apiclient.ClientAPIMock{
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			gotDelta = delta
			gotVersion = expectedVersion
			updated := apiRecordFixture(id, expectedVersion+1, map[string]any{"name": "Geranium", "rating": float64(4)})
			return &updated, nil
		},
	}
	pusher, store := newTestPusher(t, mockAPI)

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma", "rating": float64(4)})
	rec.Record.Fields["name"] = "Geranium"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, result.Status)

	assert.Equal(t, map[string]any{"name": "Geranium"}, gotDelta, "only the changed field travels")
	assert.Equal(t, int64(3), gotVersion)

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.Record.Version)
	assert.Equal(t, models.StatusSynced, saved.Sync.Status)
}

func TestPush_NoChangesSkipsNetwork(t *testing.T) {
	ctx := context.Background()

	mockAPI := &apiclient.ClientAPIMock{}
	pusher, store := newTestPusher(t, mockAPI)

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma"})
	rec.MarkEdited() // pending but nothing actually changed
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, result.Status)
	assert.Empty(t, mockAPI.CreateCalls())
	assert.Empty(t, mockAPI.PatchCalls())
}

func TestPush_RejectsNonPendingRecord(t *testing.T) {
	ctx := context.Background()

	pusher, store := newTestPusher(t, &apiclient.ClientAPIMock{})

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma"})
	require.NoError(t, store.SaveRecord(ctx, rec))

	_, err := pusher.Push(ctx, testToken, rec)
	require.Error(t, err)
}

func TestPush_VersionMismatchBecomesConflict(t *testing.T) {
	ctx := context.Background()

	current := apiRecordFixture("p1", 5, map[string]any{"name": "Noma", "rating": float64(5)})
	mockAPI := &apiclient.ClientAPIMock{
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			return nil, &apiclient.ConflictError{Current: &current, Message: "version mismatch"}
		},
	}
	pusher, store := newTestPusher(t, mockAPI)

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma", "rating": float64(4)})
	rec.Record.Fields["name"] = "Noma 2.0"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConflict, result.Status)

	require.NotNil(t, result.Conflict)
	assert.Equal(t, "p1", result.Conflict.ID)
	assert.Equal(t, int64(5), result.Conflict.Remote.Version)
	assert.Equal(t, "Noma 2.0", result.Conflict.Local.Record.Fields["name"])
	assert.Empty(t, mockAPI.GetCalls(), "the 409 body already carried the current record")

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConflict, saved.Sync.Status)
	assert.Equal(t, "Noma 2.0", saved.Record.Fields["name"], "local edits survive a conflict")
	require.NotNil(t, saved.Sync.LastSyncedSnapshot)
	assert.Equal(t, "Noma", saved.Sync.LastSyncedSnapshot.Fields["name"], "the snapshot is untouched on failure")
}

func TestPush_ConflictFetchesRemoteWhenBodyOmitsIt(t *testing.T) {
	ctx := context.Background()

	mockAPI := &apiclient.ClientAPIMock{
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			return nil, &apiclient.ConflictError{Message: "version mismatch"}
		},
		GetFunc: func(ctx context.Context, token string, collection models.Collection, id string) (*api.Record, error) {
			current := apiRecordFixture(id, 7, map[string]any{"name": "Remote"})
			return &current, nil
		},
	}
	pusher, store := newTestPusher(t, mockAPI)

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Local"})
	rec.Record.Fields["name"] = "Local Edit"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConflict, result.Status)
	require.NotNil(t, result.Conflict)
	assert.Equal(t, int64(7), result.Conflict.Remote.Version)
	assert.Len(t, mockAPI.GetCalls(), 1)
}

func TestPush_TransientFailureStaysPending(t *testing.T) {
	ctx := context.Background()

	mockAPI := &apiclient.ClientAPIMock{
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			return nil, &apiclient.TransportError{Err: errors.New("connection refused")}
		},
	}
	pusher, store := newTestPusher(t, mockAPI)

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"name": "Noma"})
	rec.Record.Fields["name"] = "Edited"
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, result.Status)
	assert.Len(t, mockAPI.PatchCalls(), 3, "initial attempt plus two retries")

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, saved.Sync.Status)
	assert.Equal(t, 1, saved.Sync.RetryCount)
	assert.NotEmpty(t, saved.Sync.LastError)
}

func TestPush_ValidationErrorMarksRecordError(t *testing.T) {
	ctx := context.Background()

	mockAPI := &apiclient.ClientAPIMock{
		PatchFunc: func(ctx context.Context, token string, collection models.Collection, id string, delta map[string]any, expectedVersion int64) (*api.Record, error) {
			return nil, &apiclient.ValidationError{Message: "rating out of range", StatusCode: 400}
		},
	}
	pusher, store := newTestPusher(t, mockAPI)

	rec := storedFixture(models.CollectionPlaces, "p1", 3, models.Fields{"rating": float64(4)})
	rec.Record.Fields["rating"] = float64(11)
	rec.MarkEdited()
	require.NoError(t, store.SaveRecord(ctx, rec))

	result, err := pusher.Push(ctx, testToken, rec)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, result.Status)
	assert.Len(t, mockAPI.PatchCalls(), 1, "validation errors are not retried")

	saved, err := store.GetRecord(ctx, models.CollectionPlaces, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, saved.Sync.Status)
	assert.Equal(t, "rating out of range", saved.Sync.LastError)
}
