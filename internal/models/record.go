package models

import (
	"fmt"
	"time"
)

// Collection identifies a synchronized domain collection.
type Collection string

const (
	// CollectionPlaces holds restaurant entities.
	CollectionPlaces Collection = "places"
	// CollectionCurations holds curated lists of places.
	CollectionCurations Collection = "curations"
)

// Collections lists every synchronized collection in sync order.
var Collections = []Collection{CollectionPlaces, CollectionCurations}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	return c == CollectionPlaces || c == CollectionCurations
}

// Fields is the JSON-shaped set of domain fields carried by a record.
// Nested objects are map[string]any, arrays are []any, numbers are float64,
// matching encoding/json defaults so the diff engine stays total.
type Fields map[string]any

// Clone creates a deep copy of the field set.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case Fields:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return val
	}
}

// Record is the envelope shared by every synchronized document.
// Version is assigned by the server and increases by exactly one on every
// accepted update; the server is the sole authority for it.
type Record struct {
	CreatedAt  time.Time  `json:"created_at"` // server-assigned creation time
	UpdatedAt  time.Time  `json:"updated_at"` // server-assigned last update time
	ID         string     `json:"id"`         // UUID, server-assigned on create
	Collection Collection `json:"collection"` // owning collection
	CreatedBy  string     `json:"created_by"` // user id for attribution
	Fields     Fields     `json:"fields"`     // domain fields
	Version    int64      `json:"version"`    // optimistic-lock version, 0 = never created remotely
}

// Clone creates a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.Fields = r.Fields.Clone()
	return &out
}

// Validate checks the envelope invariants that do not depend on the server.
func (r *Record) Validate() error {
	if !r.Collection.Valid() {
		return fmt.Errorf("unknown collection %q", r.Collection)
	}
	if r.Version < 0 {
		return fmt.Errorf("negative version %d", r.Version)
	}
	return nil
}
