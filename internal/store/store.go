// Package store holds the persistence abstractions of the adventure core.
// Each interface has a pgx-backed implementation and an in-memory one used
// by tests and local development.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ADVENTURA_BACK-END/internal/models"
)

// Common store errors
var (
	// ErrNotFound means the requested record, or its parent, does not exist
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicate means an insert violated a unique constraint
	// (share tokens are the usual suspect)
	ErrDuplicate = errors.New("store: duplicate entry")
)

// AdventureStore persists adventures with their participants, photos and
// reactions. Methods taking a foreign-key-like reference return ErrNotFound
// when the parent is missing, so the service layer can map absence straight
// to a not-found response. Boolean results only say "did a row change".
type AdventureStore interface {
	// CreateAdventure inserts the adventure row and all participant rows in
	// one atomic unit and returns the persisted view.
	CreateAdventure(ctx context.Context, adventure *models.Adventure, participants []models.Participant) (*models.Adventure, error)

	// UpdateAdventure performs a full-row update by id. Last writer wins.
	UpdateAdventure(ctx context.Context, adventure *models.Adventure) (*models.Adventure, error)

	FindByID(ctx context.Context, id uuid.UUID) (*models.Adventure, error)
	FindByShareToken(ctx context.Context, token string) (*models.Adventure, error)

	// ListByStatus returns all adventures where userID is a participant and
	// the status matches. Ordering is stable within one call only.
	ListByStatus(ctx context.Context, userID uuid.UUID, status models.AdventureStatus) ([]models.Adventure, error)

	ListParticipants(ctx context.Context, adventureID uuid.UUID) ([]models.Participant, error)

	// AddParticipant is idempotent: re-adding an existing participant is a
	// no-op that still returns the current adventure.
	AddParticipant(ctx context.Context, adventureID uuid.UUID, participant models.Participant) (*models.Adventure, error)

	CreatePhoto(ctx context.Context, photo *models.AdventurePhoto) (*models.AdventurePhoto, error)
	ListPhotos(ctx context.Context, adventureID uuid.UUID) ([]models.AdventurePhoto, error)
	DeletePhoto(ctx context.Context, adventureID, photoID uuid.UUID) (bool, error)

	// AddReaction replaces any prior reaction by the same user atomically.
	AddReaction(ctx context.Context, reaction *models.AdventureReaction) (*models.AdventureReaction, error)
	RemoveReaction(ctx context.Context, adventureID, userID uuid.UUID, emoji string) (bool, error)
	ListReactions(ctx context.Context, adventureID uuid.UUID) ([]models.AdventureReaction, error)
}

// UserStore resolves user ids to accounts.
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// FriendStore lists a user's connections for participant picking.
type FriendStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Friend, error)
}
