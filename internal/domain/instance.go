package domain

import "time"

// Instance represents the singleton server identity, generated on first boot
// and persisted alongside the favorites document.
type Instance struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}
