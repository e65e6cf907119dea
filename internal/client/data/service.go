package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/platebook/platebook/internal/client/storage"
	"github.com/platebook/platebook/internal/models"
)

var (
	// ErrConflictPending indicates an edit was attempted on a record that is
	// halted in conflict state.
	ErrConflictPending = errors.New("record has an unresolved conflict")

	// ErrAlreadySynced indicates a local delete was attempted on a record the
	// server already knows about.
	ErrAlreadySynced = errors.New("record exists on the server and cannot be deleted locally")
)

// Service provides the domain-level operations the CLI works with: creating
// and editing places and curations in the local store. All writes land as
// pending records; the sync engine moves them to the server.
type Service interface {
	AddPlace(ctx context.Context, userID string, place *models.PlaceFields) (*models.StoredRecord, error)
	EditPlace(ctx context.Context, id string, place *models.PlaceFields) (*models.StoredRecord, error)
	ListPlaces(ctx context.Context) ([]*models.StoredRecord, error)

	AddCuration(ctx context.Context, userID string, curation *models.CurationFields) (*models.StoredRecord, error)
	EditCuration(ctx context.Context, id string, curation *models.CurationFields) (*models.StoredRecord, error)
	ListCurations(ctx context.Context) ([]*models.StoredRecord, error)

	Get(ctx context.Context, collection models.Collection, id string) (*models.StoredRecord, error)

	// Delete removes a record that was never pushed. Records the server
	// already holds return ErrAlreadySynced.
	Delete(ctx context.Context, collection models.Collection, id string) error
}

type service struct {
	records storage.RecordStorage
	now     func() time.Time
}

// NewService creates a new data service over the local record store.
func NewService(records storage.RecordStorage) Service {
	return &service{
		records: records,
		now:     time.Now,
	}
}

func (s *service) AddPlace(ctx context.Context, userID string, place *models.PlaceFields) (*models.StoredRecord, error) {
	fields, err := place.Fields()
	if err != nil {
		return nil, err
	}
	return s.add(ctx, userID, models.CollectionPlaces, fields)
}

func (s *service) EditPlace(ctx context.Context, id string, place *models.PlaceFields) (*models.StoredRecord, error) {
	fields, err := place.Fields()
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, models.CollectionPlaces, id, fields)
}

func (s *service) ListPlaces(ctx context.Context) ([]*models.StoredRecord, error) {
	return s.records.ListRecords(ctx, models.CollectionPlaces)
}

func (s *service) AddCuration(ctx context.Context, userID string, curation *models.CurationFields) (*models.StoredRecord, error) {
	fields, err := curation.Fields()
	if err != nil {
		return nil, err
	}
	return s.add(ctx, userID, models.CollectionCurations, fields)
}

func (s *service) EditCuration(ctx context.Context, id string, curation *models.CurationFields) (*models.StoredRecord, error) {
	fields, err := curation.Fields()
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, models.CollectionCurations, id, fields)
}

func (s *service) ListCurations(ctx context.Context) ([]*models.StoredRecord, error) {
	return s.records.ListRecords(ctx, models.CollectionCurations)
}

func (s *service) Get(ctx context.Context, collection models.Collection, id string) (*models.StoredRecord, error) {
	return s.records.GetRecord(ctx, collection, id)
}

func (s *service) Delete(ctx context.Context, collection models.Collection, id string) error {
	rec, err := s.records.GetRecord(ctx, collection, id)
	if err != nil {
		return err
	}
	if rec.Record.Version > 0 {
		return ErrAlreadySynced
	}
	return s.records.DeleteRecord(ctx, collection, id)
}

// add stores a new record with a provisional local id and version 0. The
// server assigns the real id and version on the first push.
func (s *service) add(ctx context.Context, userID string, collection models.Collection, fields models.Fields) (*models.StoredRecord, error) {
	now := s.now().UTC()
	rec := &models.StoredRecord{
		Record: models.Record{
			ID:         uuid.New().String(),
			Collection: collection,
			CreatedBy:  userID,
			Fields:     fields,
			Version:    0,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	rec.MarkEdited()

	if err := rec.Record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record: %w", err)
	}

	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}
	return rec, nil
}

func (s *service) edit(ctx context.Context, collection models.Collection, id string, fields models.Fields) (*models.StoredRecord, error) {
	rec, err := s.records.GetRecord(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	if rec.Sync.Status == models.StatusConflict {
		return nil, ErrConflictPending
	}

	rec.Record.Fields = fields
	rec.Record.UpdatedAt = s.now().UTC()
	rec.MarkEdited()

	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}
	return rec, nil
}
