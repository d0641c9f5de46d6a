package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the users table. Only the fields the adventure
// core reads are modeled here.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Friend is a connection of a user, used when picking adventure participants.
type Friend struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	AvatarURL   *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	ConnectedAt time.Time `json:"connectedAt" db:"connected_at"`
}
