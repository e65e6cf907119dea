package storage

import (
	"context"

	"github.com/platebook/platebook/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines the interface for the durable client-side record
// store. Every record carries its embedded sync state; writes are atomic per
// record.
type RecordStorage interface {
	// SaveRecord stores or replaces a record together with its sync state.
	SaveRecord(ctx context.Context, rec *models.StoredRecord) error

	// GetRecord retrieves a record by collection and id.
	// Returns ErrRecordNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, collection models.Collection, id string) (*models.StoredRecord, error)

	// ListRecords returns all records of a collection.
	ListRecords(ctx context.Context, collection models.Collection) ([]*models.StoredRecord, error)

	// ListByStatus returns all records of a collection in the given sync
	// status. Used to collect pending records for push and conflicts for
	// resolution.
	ListByStatus(ctx context.Context, collection models.Collection, status models.SyncStatus) ([]*models.StoredRecord, error)

	// DeleteRecord removes a record locally. Only records that were never
	// created remotely may be deleted this way.
	DeleteRecord(ctx context.Context, collection models.Collection, id string) error

	// Clear removes all records of a collection. Used for tests and full
	// re-sync.
	Clear(ctx context.Context, collection models.Collection) error
}
