package models

import "time"

// User represents a registered account on the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"` // argon2id encoded hash
	CreatedAt    time.Time `json:"created_at"`
}
