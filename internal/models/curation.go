package models

import "fmt"

// CurationFields are the domain fields of a curated list of places.
type CurationFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PlaceIDs    []string `json:"place_ids,omitempty"`
	Pinned      bool     `json:"pinned,omitempty"`
}

// Fields converts the typed struct into the generic field map.
func (c *CurationFields) Fields() (Fields, error) {
	return toFields(c)
}

// CurationFromFields converts a generic field map back into the typed struct.
func CurationFromFields(f Fields) (*CurationFields, error) {
	var c CurationFields
	if err := fromFields(f, &c); err != nil {
		return nil, fmt.Errorf("decode curation fields: %w", err)
	}
	return &c, nil
}
