package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ADVENTURA_BACK-END/internal/models"
)

// MemoryAdventureStore is an in-memory AdventureStore used in tests and
// local development. Each instance owns its own maps, so parallel tests can
// construct independent stores without cross-contamination.
type MemoryAdventureStore struct {
	mu         sync.RWMutex
	adventures map[uuid.UUID]models.Adventure
	photos     map[uuid.UUID]models.AdventurePhoto
	reactions  map[uuid.UUID]models.AdventureReaction
	now        func() time.Time
}

// NewMemoryAdventureStore creates an empty in-memory store. A nil now
// defaults to time.Now.
func NewMemoryAdventureStore(now func() time.Time) *MemoryAdventureStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryAdventureStore{
		adventures: make(map[uuid.UUID]models.Adventure),
		photos:     make(map[uuid.UUID]models.AdventurePhoto),
		reactions:  make(map[uuid.UUID]models.AdventureReaction),
		now:        now,
	}
}

func cloneAdventure(a models.Adventure) models.Adventure {
	out := a
	out.Participants = append([]models.Participant(nil), a.Participants...)
	return out
}

func (s *MemoryAdventureStore) CreateAdventure(ctx context.Context, adventure *models.Adventure, participants []models.Participant) (*models.Adventure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.adventures {
		if existing.ShareToken == adventure.ShareToken {
			return nil, ErrDuplicate
		}
	}

	stored := cloneAdventure(*adventure)
	stored.Participants = append([]models.Participant(nil), participants...)
	s.adventures[stored.ID] = stored

	out := cloneAdventure(stored)
	return &out, nil
}

func (s *MemoryAdventureStore) UpdateAdventure(ctx context.Context, adventure *models.Adventure) (*models.Adventure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.adventures[adventure.ID]
	if !ok {
		return nil, ErrNotFound
	}

	updated := cloneAdventure(*adventure)
	// Participant membership is managed through AddParticipant only.
	updated.Participants = append([]models.Participant(nil), existing.Participants...)
	s.adventures[adventure.ID] = updated

	out := cloneAdventure(updated)
	return &out, nil
}

func (s *MemoryAdventureStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found, ok := s.adventures[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneAdventure(found)
	return &out, nil
}

func (s *MemoryAdventureStore) FindByShareToken(ctx context.Context, token string) (*models.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.adventures {
		if a.ShareToken == token {
			out := cloneAdventure(a)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAdventureStore) ListByStatus(ctx context.Context, userID uuid.UUID, status models.AdventureStatus) ([]models.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Adventure, 0)
	for _, a := range s.adventures {
		if a.Status != status {
			continue
		}
		if !a.HasParticipant(userID) {
			continue
		}
		items = append(items, cloneAdventure(a))
	}
	return items, nil
}

func (s *MemoryAdventureStore) ListParticipants(ctx context.Context, adventureID uuid.UUID) ([]models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.adventures[adventureID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.Participant(nil), a.Participants...), nil
}

func (s *MemoryAdventureStore) AddParticipant(ctx context.Context, adventureID uuid.UUID, participant models.Participant) (*models.Adventure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.adventures[adventureID]
	if !ok {
		return nil, ErrNotFound
	}
	if a.HasParticipant(participant.ID) {
		out := cloneAdventure(a)
		return &out, nil
	}

	updated := cloneAdventure(a)
	updated.Participants = append(updated.Participants, participant)
	updated.UpdatedAt = s.now()
	s.adventures[adventureID] = updated

	out := cloneAdventure(updated)
	return &out, nil
}

func (s *MemoryAdventureStore) CreatePhoto(ctx context.Context, photo *models.AdventurePhoto) (*models.AdventurePhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.adventures[photo.AdventureID]; !ok {
		return nil, ErrNotFound
	}
	stored := *photo
	s.photos[stored.ID] = stored
	out := stored
	return &out, nil
}

func (s *MemoryAdventureStore) ListPhotos(ctx context.Context, adventureID uuid.UUID) ([]models.AdventurePhoto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.adventures[adventureID]; !ok {
		return nil, ErrNotFound
	}
	items := make([]models.AdventurePhoto, 0)
	for _, p := range s.photos {
		if p.AdventureID == adventureID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *MemoryAdventureStore) DeletePhoto(ctx context.Context, adventureID, photoID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.photos[photoID]
	if !ok || p.AdventureID != adventureID {
		return false, nil
	}
	delete(s.photos, photoID)
	return true, nil
}

func (s *MemoryAdventureStore) AddReaction(ctx context.Context, reaction *models.AdventureReaction) (*models.AdventureReaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.adventures[reaction.AdventureID]; !ok {
		return nil, ErrNotFound
	}

	// Replace-on-add: at most one reaction per (adventure, user).
	for id, entry := range s.reactions {
		if entry.AdventureID == reaction.AdventureID && entry.UserID == reaction.UserID {
			delete(s.reactions, id)
		}
	}

	stored := *reaction
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.reactions[stored.ID] = stored
	out := stored
	return &out, nil
}

func (s *MemoryAdventureStore) RemoveReaction(ctx context.Context, adventureID, userID uuid.UUID, emoji string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for id, entry := range s.reactions {
		if entry.AdventureID == adventureID && entry.UserID == userID && entry.Emoji == emoji {
			delete(s.reactions, id)
			removed = true
		}
	}
	return removed, nil
}

func (s *MemoryAdventureStore) ListReactions(ctx context.Context, adventureID uuid.UUID) ([]models.AdventureReaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.adventures[adventureID]; !ok {
		return nil, ErrNotFound
	}
	items := make([]models.AdventureReaction, 0)
	for _, r := range s.reactions {
		if r.AdventureID == adventureID {
			items = append(items, r)
		}
	}
	return items, nil
}

// MemoryUserStore is an in-memory UserStore for tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]models.User)}
}

// Add registers a user and returns it.
func (s *MemoryUserStore) Add(username string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{ID: uuid.New(), Username: username, CreatedAt: time.Now()}
	s.users[user.ID] = user
	return user
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := user
	return &out, nil
}

// MemoryFriendStore is an in-memory FriendStore for tests.
type MemoryFriendStore struct {
	mu      sync.RWMutex
	friends map[uuid.UUID][]models.Friend
}

// NewMemoryFriendStore creates an empty in-memory friend store.
func NewMemoryFriendStore() *MemoryFriendStore {
	return &MemoryFriendStore{friends: make(map[uuid.UUID][]models.Friend)}
}

// Add connects a friend to a user.
func (s *MemoryFriendStore) Add(userID uuid.UUID, name string) models.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()

	friend := models.Friend{ID: uuid.New(), UserID: userID, Name: name, ConnectedAt: time.Now()}
	s.friends[userID] = append(s.friends[userID], friend)
	return friend
}

func (s *MemoryFriendStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Friend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Friend(nil), s.friends[userID]...), nil
}
