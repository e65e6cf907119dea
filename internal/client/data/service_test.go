package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/client/storage/boltdb"
	"github.com/platebook/platebook/internal/models"
)

func newTestService(t *testing.T) (Service, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "data-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return NewService(store), store
}

func ratingPtr(v float64) *float64 { return &v }

func TestService_AddPlace(t *testing.T) {
	svc, store := newTestService(t)

	rec, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{
		Name:    "Noma",
		Cuisine: "nordic",
		Rating:  ratingPtr(5),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.Record.ID, "a provisional local id is assigned")
	assert.Equal(t, int64(0), rec.Record.Version, "never pushed yet")
	assert.Equal(t, models.StatusPending, rec.Sync.Status)
	assert.Nil(t, rec.Sync.LastSyncedSnapshot)
	assert.Equal(t, "user-1", rec.Record.CreatedBy)

	stored, err := store.GetRecord(context.Background(), models.CollectionPlaces, rec.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Noma", stored.Record.Fields["name"])
	assert.Equal(t, float64(5), stored.Record.Fields["rating"])
}

func TestService_AddPlace_OmitsUnsetFields(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Noma"})
	require.NoError(t, err)

	assert.NotContains(t, rec.Record.Fields, "rating")
	assert.NotContains(t, rec.Record.Fields, "location")
	assert.NotContains(t, rec.Record.Fields, "tags")
}

func TestService_EditPlace(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Noma"})
	require.NoError(t, err)

	edited, err := svc.EditPlace(context.Background(), rec.Record.ID, &models.PlaceFields{
		Name:  "Noma",
		Notes: "book months ahead",
	})
	require.NoError(t, err)

	assert.Equal(t, "book months ahead", edited.Record.Fields["notes"])
	assert.Equal(t, models.StatusPending, edited.Sync.Status)
}

func TestService_EditPlace_RejectsConflictedRecord(t *testing.T) {
	svc, store := newTestService(t)

	rec, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Noma"})
	require.NoError(t, err)

	rec.Sync.Status = models.StatusConflict
	require.NoError(t, store.SaveRecord(context.Background(), rec))

	_, err = svc.EditPlace(context.Background(), rec.Record.ID, &models.PlaceFields{Name: "Other"})
	assert.ErrorIs(t, err, ErrConflictPending)
}

func TestService_AddCuration(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.AddCuration(context.Background(), "user-1", &models.CurationFields{
		Title:    "Date night",
		PlaceIDs: []string{"place-1", "place-2"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.CollectionCurations, rec.Record.Collection)
	assert.Equal(t, "Date night", rec.Record.Fields["title"])

	curations, err := svc.ListCurations(context.Background())
	require.NoError(t, err)
	require.Len(t, curations, 1)

	typed, err := models.CurationFromFields(curations[0].Record.Fields)
	require.NoError(t, err)
	assert.Equal(t, []string{"place-1", "place-2"}, typed.PlaceIDs)
}

func TestService_ListPlaces(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Noma"})
	require.NoError(t, err)
	_, err = svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Alinea"})
	require.NoError(t, err)

	places, err := svc.ListPlaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Typo"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), models.CollectionPlaces, rec.Record.ID))

	_, err = svc.Get(context.Background(), models.CollectionPlaces, rec.Record.ID)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestService_Delete_RejectsSyncedRecord(t *testing.T) {
	svc, store := newTestService(t)

	rec, err := svc.AddPlace(context.Background(), "user-1", &models.PlaceFields{Name: "Noma"})
	require.NoError(t, err)

	rec.Record.Version = 3
	require.NoError(t, store.SaveRecord(context.Background(), rec))

	err = svc.Delete(context.Background(), models.CollectionPlaces, rec.Record.ID)
	assert.ErrorIs(t, err, ErrAlreadySynced)
}
