package models

import (
	"time"

	"github.com/google/uuid"
)

// AdventureStatus is the lifecycle state of an adventure.
// The only transition is upcoming -> completed; completed is terminal.
type AdventureStatus string

const (
	StatusUpcoming  AdventureStatus = "upcoming"
	StatusCompleted AdventureStatus = "completed"
)

// ValidStatus reports whether s is a known adventure status.
func ValidStatus(s AdventureStatus) bool {
	return s == StatusUpcoming || s == StatusCompleted
}

// Participant is the denormalized view of a user inside an adventure.
// It is derived at read time from the users table plus the membership rows,
// never persisted on its own.
type Participant struct {
	ID        uuid.UUID `json:"id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	AvatarURL *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
}

// Adventure represents a planned shared outing.
type Adventure struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	CreatorID    uuid.UUID       `json:"creatorId" db:"creator_id"`
	Title        string          `json:"title" db:"title"`
	Description  string          `json:"description" db:"description"`
	Status       AdventureStatus `json:"status" db:"status"`
	Summary      *string         `json:"summary,omitempty" db:"summary"`
	ShareToken   string          `json:"shareToken" db:"share_token"`
	Creator      Participant     `json:"creator"`
	Participants []Participant   `json:"participants"`
	StartsAt     time.Time       `json:"startsAt" db:"starts_at"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// HasParticipant reports whether the user is a member of the adventure.
func (a *Adventure) HasParticipant(userID uuid.UUID) bool {
	for _, p := range a.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// AdventurePhoto belongs to exactly one adventure.
type AdventurePhoto struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	AdventureID uuid.UUID   `json:"adventureId" db:"adventure_id"`
	URL         string      `json:"url" db:"url"`
	Uploader    Participant `json:"uploader"`
	Caption     *string     `json:"caption,omitempty" db:"caption"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// AdventureReaction is an emoji reaction on an adventure.
// At most one reaction exists per (adventure, user); adding a new one
// replaces the previous.
type AdventureReaction struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AdventureID uuid.UUID `json:"adventureId" db:"adventure_id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Emoji       string    `json:"emoji" db:"emoji"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
