package models

import "time"

// Project is a top-level container for tasks and files.
//
// OwnerID is a placeholder for a future accounts feature and is always
// null on the wire.
type Project struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	OwnerID   *int      `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}
