package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/internal/server/storage"
	"github.com/platebook/platebook/internal/validation"
	"github.com/platebook/platebook/pkg/api"
)

// contextKey is the type for request context keys
type contextKey string

const (
	// UserIDKey is the context key holding the authenticated user id
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key holding the authenticated username
	UsernameKey contextKey = "username"
)

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername extracts the authenticated username from the request context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// RecordsHandler serves the synchronized record collections. All operations
// are scoped to the authenticated user; the server owns version assignment.
type RecordsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(logger *slog.Logger, storage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		storage: storage,
	}
}

// List handles GET /api/v1/{collection}?since=<RFC3339>.
// Without since the full collection is returned; with it, only records
// updated at or after the timestamp. A malformed since is a 400.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		ts, err := validation.ParseSyncTimestamp(raw)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid since parameter", slog.String("since", raw), slog.Any("error", err))
			h.sendError(w, "invalid since parameter", http.StatusBadRequest)
			return
		}
		since = &ts
	}

	records, err := h.storage.ListRecords(ctx, userID, collection, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list records", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListResponse{Records: make([]api.Record, 0, len(records))}
	for i := range records {
		resp.Records = append(resp.Records, recordToAPI(&records[i]))
	}

	h.logger.InfoContext(ctx, "listed records",
		slog.String("collection", string(collection)),
		slog.Int("count", len(resp.Records)),
		slog.Bool("incremental", since != nil))

	h.sendJSON(w, resp, http.StatusOK)
}

// Create handles POST /api/v1/{collection}. The server assigns the id,
// version 1 and both timestamps.
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var req api.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Fields) == 0 {
		h.sendError(w, "fields are required", http.StatusBadRequest)
		return
	}

	rec := &models.Record{
		ID:         uuid.New().String(),
		Collection: collection,
		CreatedBy:  userID,
		Fields:     models.Fields(req.Fields).Clone(),
	}
	if err := rec.Validate(); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.storage.CreateRecord(ctx, rec); err != nil {
		h.logger.ErrorContext(ctx, "failed to create record", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "record created",
		slog.String("collection", string(collection)),
		slog.String("record_id", rec.ID))

	h.sendJSON(w, recordToAPI(rec), http.StatusCreated)
}

// Get handles GET /api/v1/{collection}/{id}
func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	rec, err := h.storage.GetRecord(ctx, userID, collection, id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			h.sendError(w, "record not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get record", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, recordToAPI(rec), http.StatusOK)
}

// Patch handles PATCH /api/v1/{collection}/{id}: a partial update guarded by
// the expected version. A stale version yields a 409 carrying the current
// server record.
func (h *RecordsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var req api.PatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode patch request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ExpectedVersion < 1 {
		h.sendError(w, "expected_version is required", http.StatusBadRequest)
		return
	}
	if len(req.Fields) == 0 {
		h.sendError(w, "fields are required", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	rec, err := h.storage.PatchRecord(ctx, userID, collection, id, models.Fields(req.Fields), req.ExpectedVersion)
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		h.sendError(w, "record not found", http.StatusNotFound)
		return
	case errors.Is(err, storage.ErrVersionMismatch):
		h.logger.InfoContext(ctx, "patch rejected: version mismatch",
			slog.String("collection", string(collection)),
			slog.String("record_id", id),
			slog.Int64("expected", req.ExpectedVersion),
			slog.Int64("current", rec.Version))
		current := recordToAPI(rec)
		h.sendJSON(w, api.ConflictResponse{
			Message: "version mismatch",
			Current: &current,
		}, http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to patch record", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "record patched",
		slog.String("collection", string(collection)),
		slog.String("record_id", id),
		slog.Int64("version", rec.Version))

	h.sendJSON(w, recordToAPI(rec), http.StatusOK)
}

// requestScope pulls the authenticated user and the collection out of the
// request, rejecting unknown collections.
func (h *RecordsHandler) requestScope(w http.ResponseWriter, r *http.Request) (string, models.Collection, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	collection := models.Collection(r.PathValue("collection"))
	if !collection.Valid() {
		h.sendError(w, "unknown collection", http.StatusNotFound)
		return "", "", false
	}

	return userID, collection, true
}

func recordToAPI(rec *models.Record) api.Record {
	return api.Record{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		CreatedBy: rec.CreatedBy,
		Fields:    rec.Fields,
		Version:   rec.Version,
	}
}

func (h *RecordsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *RecordsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}
