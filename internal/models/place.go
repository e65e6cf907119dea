package models

import (
	"encoding/json"
	"fmt"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceFields are the domain fields of a restaurant entity. Optional fields
// are pointers or omitempty values so an unset field stays absent from the
// wire representation.
type PlaceFields struct {
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	Cuisine  string    `json:"cuisine,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Location *GeoPoint `json:"location,omitempty"`
	Rating   *float64  `json:"rating,omitempty"`
}

// Fields converts the typed struct into the generic JSON-shaped field map the
// sync engine operates on.
func (p *PlaceFields) Fields() (Fields, error) {
	return toFields(p)
}

// PlaceFromFields converts a generic field map back into the typed struct.
func PlaceFromFields(f Fields) (*PlaceFields, error) {
	var p PlaceFields
	if err := fromFields(f, &p); err != nil {
		return nil, fmt.Errorf("decode place fields: %w", err)
	}
	return &p, nil
}

// toFields round-trips a typed struct through JSON so nested values take the
// canonical map[string]any / []any / float64 shapes.
func toFields(v any) (Fields, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal fields: %w", err)
	}
	return f, nil
}

func fromFields(f Fields, dst any) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal field map: %w", err)
	}
	return json.Unmarshal(data, dst)
}
