// Package boltdb implements the client LocalStore on BoltDB.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/platebook/platebook/internal/models"
)

var (
	// BoltDB bucket names
	bucketAuth        = []byte("auth")
	bucketCheckpoints = []byte("checkpoints")
	bucketPlaces      = []byte("places")
	bucketCurations   = []byte("curations")
)

// Storage represents BoltDB storage implementation for the client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they don't exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketCheckpoints, bucketPlaces, bucketCurations} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// collectionBucket maps a collection to its bucket name.
func collectionBucket(collection models.Collection) ([]byte, error) {
	switch collection {
	case models.CollectionPlaces:
		return bucketPlaces, nil
	case models.CollectionCurations:
		return bucketCurations, nil
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}
