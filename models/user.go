package models

import "time"

// User is a pool participant. ID is the opaque subject issued by the
// identity provider and is never parsed or interpreted.
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
