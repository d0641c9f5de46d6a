package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ADVENTURA_BACK-END/internal/models"
	"ADVENTURA_BACK-END/internal/store"
)

func seedAdventure(t *testing.T, s *store.MemoryAdventureStore, creator models.Participant) *models.Adventure {
	t.Helper()

	now := time.Now()
	adventure := &models.Adventure{
		ID:         uuid.New(),
		CreatorID:  creator.ID,
		Title:      "Night run",
		Status:     models.StatusUpcoming,
		ShareToken: "ADV-" + uuid.NewString()[:12],
		Creator:    creator,
		StartsAt:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	saved, err := s.CreateAdventure(context.Background(), adventure, []models.Participant{creator})
	require.NoError(t, err)
	return saved
}

func TestMemoryStore_CreateRejectsDuplicateShareToken(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	creator := models.Participant{ID: uuid.New(), Username: "alice"}
	first := seedAdventure(t, s, creator)

	dup := *first
	dup.ID = uuid.New()
	_, err := s.CreateAdventure(context.Background(), &dup, []models.Participant{creator})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestMemoryStore_FindByShareToken(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	creator := models.Participant{ID: uuid.New(), Username: "alice"}
	created := seedAdventure(t, s, creator)

	found, err := s.FindByShareToken(context.Background(), created.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.FindByShareToken(context.Background(), "ADV-missing00000")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStore_UpdatePreservesParticipants(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	creator := models.Participant{ID: uuid.New(), Username: "alice"}
	created := seedAdventure(t, s, creator)

	_, err := s.AddParticipant(context.Background(), created.ID, models.Participant{ID: uuid.New(), Username: "bob"})
	require.NoError(t, err)

	patch := *created
	patch.Title = "Dawn run"
	patch.Participants = nil
	updated, err := s.UpdateAdventure(context.Background(), &patch)
	require.NoError(t, err)
	assert.Equal(t, "Dawn run", updated.Title)
	assert.Len(t, updated.Participants, 2, "membership rows survive field updates")
}

func TestMemoryStore_AddParticipantIdempotent(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	creator := models.Participant{ID: uuid.New(), Username: "alice"}
	created := seedAdventure(t, s, creator)
	bob := models.Participant{ID: uuid.New(), Username: "bob"}

	first, err := s.AddParticipant(context.Background(), created.ID, bob)
	require.NoError(t, err)
	assert.Len(t, first.Participants, 2)

	second, err := s.AddParticipant(context.Background(), created.ID, bob)
	require.NoError(t, err)
	assert.Len(t, second.Participants, 2)
}

func TestMemoryStore_ListByStatusFiltersMembership(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	alice := models.Participant{ID: uuid.New(), Username: "alice"}
	outsider := uuid.New()
	created := seedAdventure(t, s, alice)

	mine, err := s.ListByStatus(context.Background(), alice.ID, models.StatusUpcoming)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	theirs, err := s.ListByStatus(context.Background(), outsider, models.StatusUpcoming)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	done, err := s.ListByStatus(context.Background(), alice.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, done)
}

func TestMemoryStore_ReactionReplace(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	alice := models.Participant{ID: uuid.New(), Username: "alice"}
	created := seedAdventure(t, s, alice)

	_, err := s.AddReaction(context.Background(), &models.AdventureReaction{
		AdventureID: created.ID, UserID: alice.ID, Emoji: "🔥", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = s.AddReaction(context.Background(), &models.AdventureReaction{
		AdventureID: created.ID, UserID: alice.ID, Emoji: "❤️", CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	reactions, err := s.ListReactions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, "❤️", reactions[0].Emoji)

	removed, err := s.RemoveReaction(context.Background(), created.ID, alice.ID, "❤️")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveReaction(context.Background(), created.ID, alice.ID, "❤️")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryStore_PhotoLifecycle(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	alice := models.Participant{ID: uuid.New(), Username: "alice"}
	created := seedAdventure(t, s, alice)

	photo, err := s.CreatePhoto(context.Background(), &models.AdventurePhoto{
		ID:          uuid.New(),
		AdventureID: created.ID,
		URL:         "https://photos.example.com/a.jpg",
		Uploader:    alice,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)

	photos, err := s.ListPhotos(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	deleted, err := s.DeletePhoto(context.Background(), created.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeletePhoto(context.Background(), created.ID, photo.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStore_PhotoForUnknownAdventure(t *testing.T) {
	s := store.NewMemoryAdventureStore(nil)
	_, err := s.CreatePhoto(context.Background(), &models.AdventurePhoto{
		ID:          uuid.New(),
		AdventureID: uuid.New(),
		URL:         "https://photos.example.com/a.jpg",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
