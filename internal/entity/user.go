package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a report owner for data transfer between layers.
// Authentication is handled outside this service; users exist here only so
// reports and their history can be scoped to an owner.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
