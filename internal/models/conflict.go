package models

// Conflict captures a detected divergence between the local record and the
// current server record. It is constructed when a push fails the optimistic
// version check and lives only for the duration of the resolution flow.
type Conflict struct {
	Collection Collection    `json:"collection"`
	ID         string        `json:"id"`
	Local      *StoredRecord `json:"local"`
	Remote     *Record       `json:"remote"`
}
