package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/models"
)

// SaveCheckpoint stores the last successful pull timestamp for a collection
func (s *Storage) SaveCheckpoint(ctx context.Context, collection models.Collection, value string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return fmt.Errorf("checkpoints bucket not found")
		}

		if err := bucket.Put([]byte(collection), []byte(value)); err != nil {
			return fmt.Errorf("failed to save checkpoint: %w", err)
		}

		return nil
	})
}

// GetCheckpoint retrieves the pull checkpoint for a collection
// Returns ErrCheckpointNotFound if the collection has never been pulled
func (s *Storage) GetCheckpoint(ctx context.Context, collection models.Collection) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return storage.ErrCheckpointNotFound
		}

		data := bucket.Get([]byte(collection))
		if data == nil {
			return storage.ErrCheckpointNotFound
		}

		value = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return value, nil
}

// DeleteCheckpoint removes the checkpoint, forcing a full fetch on next pull
func (s *Storage) DeleteCheckpoint(ctx context.Context, collection models.Collection) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(collection)); err != nil {
			return fmt.Errorf("failed to delete checkpoint: %w", err)
		}

		return nil
	})
}
