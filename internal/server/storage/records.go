package storage

import (
	"context"
	"time"

	"github.com/platebook/platebook/internal/models"
)

// RecordStorage defines the interface for synchronized record persistence.
// The server is the sole authority for version numbers: every accepted write
// bumps the version by exactly one.
type RecordStorage interface {
	// CreateRecord inserts a new record at version 1 with server-assigned
	// timestamps. The caller supplies the id and owner.
	CreateRecord(ctx context.Context, rec *models.Record) error

	// GetRecord retrieves one record of an owner.
	// Returns ErrRecordNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, ownerID string, collection models.Collection, id string) (*models.Record, error)

	// ListRecords returns the owner's records of a collection updated at or
	// after since, ordered by update time. A nil since returns everything.
	ListRecords(ctx context.Context, ownerID string, collection models.Collection, since *time.Time) ([]models.Record, error)

	// PatchRecord applies a partial update under an optimistic lock: the
	// stored version must equal expectedVersion. On success the delta is
	// merged into the stored fields, the version is incremented and the
	// updated record returned. On a mismatch the current record is returned
	// together with ErrVersionMismatch so the caller can attach it to a 409.
	PatchRecord(ctx context.Context, ownerID string, collection models.Collection, id string, delta models.Fields, expectedVersion int64) (*models.Record, error)
}
