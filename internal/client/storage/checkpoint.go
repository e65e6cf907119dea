package storage

import (
	"context"

	"github.com/platebook/platebook/internal/models"
)

//go:generate moq -out checkpoint_mock.go . CheckpointStorage

// CheckpointStorage holds one pull checkpoint per collection: the timestamp
// of the last successful incremental pull, stored in RFC3339 form. An absent
// checkpoint means the collection has never been pulled and the next pull
// must fetch it in full.
type CheckpointStorage interface {
	// SaveCheckpoint stores the checkpoint for a collection.
	SaveCheckpoint(ctx context.Context, collection models.Collection, value string) error

	// GetCheckpoint retrieves the checkpoint for a collection.
	// Returns ErrCheckpointNotFound if the collection was never pulled.
	GetCheckpoint(ctx context.Context, collection models.Collection) (string, error)

	// DeleteCheckpoint removes the checkpoint, forcing a full fetch on the
	// next pull.
	DeleteCheckpoint(ctx context.Context, collection models.Collection) error
}
