package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/platebook/platebook/internal/diff"
	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/internal/server/storage"
)

// Timestamps are stored as unix milliseconds so the since filter keeps
// sub-second precision.

// CreateRecord inserts a new record at version 1 with server-assigned timestamps
func (s *Storage) CreateRecord(ctx context.Context, rec *models.Record) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	now := time.Now().UTC()
	rec.Version = 1
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `
		INSERT INTO records (id, collection, owner_id, fields, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Collection),
		rec.CreatedBy,
		string(fields),
		rec.Version,
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// GetRecord retrieves one record of an owner
func (s *Storage) GetRecord(ctx context.Context, ownerID string, collection models.Collection, id string) (*models.Record, error) {
	query := `
		SELECT id, collection, owner_id, fields, version, created_at, updated_at
		FROM records
		WHERE collection = ? AND id = ? AND owner_id = ?
	`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, string(collection), id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return rec, nil
}

// ListRecords returns the owner's records of a collection updated at or after
// since, ordered by update time
func (s *Storage) ListRecords(ctx context.Context, ownerID string, collection models.Collection, since *time.Time) ([]models.Record, error) {
	query := `
		SELECT id, collection, owner_id, fields, version, created_at, updated_at
		FROM records
		WHERE owner_id = ? AND collection = ?
	`
	args := []any{ownerID, string(collection)}
	if since != nil {
		query += " AND updated_at >= ?"
		args = append(args, since.UnixMilli())
	}
	query += " ORDER BY updated_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var records []models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// PatchRecord applies a partial update under the optimistic lock. The check
// and the write run in one transaction; with a single writer connection the
// read-check-write sequence cannot interleave with another patch.
func (s *Storage) PatchRecord(ctx context.Context, ownerID string, collection models.Collection, id string, delta models.Fields, expectedVersion int64) (*models.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := `
		SELECT id, collection, owner_id, fields, version, created_at, updated_at
		FROM records
		WHERE collection = ? AND id = ? AND owner_id = ?
	`

	current, err := scanRecord(tx.QueryRowContext(ctx, query, string(collection), id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record for patch: %w", err)
	}

	if current.Version != expectedVersion {
		return current, storage.ErrVersionMismatch
	}

	current.Fields = diff.Apply(current.Fields, delta)
	current.Version++
	current.UpdatedAt = time.Now().UTC()

	fields, err := json.Marshal(current.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	update := `
		UPDATE records
		SET fields = ?, version = ?, updated_at = ?
		WHERE collection = ? AND id = ?
	`
	if _, err := tx.ExecContext(ctx, update,
		string(fields),
		current.Version,
		current.UpdatedAt.UnixMilli(),
		string(collection),
		id,
	); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit patch: %w", err)
	}

	return current, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var (
		rec        models.Record
		collection string
		fields     string
		createdAt  int64
		updatedAt  int64
	)

	if err := row.Scan(
		&rec.ID,
		&collection,
		&rec.CreatedBy,
		&fields,
		&rec.Version,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	rec.Collection = models.Collection(collection)
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}

	return &rec, nil
}
