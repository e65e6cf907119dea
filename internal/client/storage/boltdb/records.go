package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/models"
)

// SaveRecord stores or replaces a record with its sync state
func (s *Storage) SaveRecord(ctx context.Context, rec *models.StoredRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := collectionBucket(rec.Record.Collection)
	if err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", name)
		}

		if err := bucket.Put([]byte(rec.Record.ID), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by collection and id
func (s *Storage) GetRecord(ctx context.Context, collection models.Collection, id string) (*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return nil, err
	}

	var rec *models.StoredRecord

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec = &models.StoredRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListRecords returns all records of a collection
func (s *Storage) ListRecords(ctx context.Context, collection models.Collection) ([]*models.StoredRecord, error) {
	return s.listRecords(collection, func(*models.StoredRecord) bool { return true })
}

// ListByStatus returns all records of a collection in the given sync status
func (s *Storage) ListByStatus(ctx context.Context, collection models.Collection, status models.SyncStatus) ([]*models.StoredRecord, error) {
	return s.listRecords(collection, func(rec *models.StoredRecord) bool {
		return rec.Sync.Status == status
	})
}

func (s *Storage) listRecords(collection models.Collection, keep func(*models.StoredRecord) bool) ([]*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return nil, err
	}

	var records []*models.StoredRecord

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var rec models.StoredRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			if keep(&rec) {
				records = append(records, &rec)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// DeleteRecord removes a record locally
func (s *Storage) DeleteRecord(ctx context.Context, collection models.Collection, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrRecordNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		return nil
	})
}

// Clear removes all records of a collection
func (s *Storage) Clear(ctx context.Context, collection models.Collection) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		if _, err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
