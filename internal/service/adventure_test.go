package service_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ADVENTURA_BACK-END/internal/cache"
	"ADVENTURA_BACK-END/internal/models"
	"ADVENTURA_BACK-END/internal/service"
	"ADVENTURA_BACK-END/internal/store"
)

var shareTokenPattern = regexp.MustCompile(`^ADV-[0-9a-f]{12}$`)

type testEnv struct {
	svc     *service.AdventureService
	store   *store.MemoryAdventureStore
	users   *store.MemoryUserStore
	friends *store.MemoryFriendStore
	cache   *countingCache
	http    *fakeDoer
}

// countingCache wraps the in-process cache and records hits and misses so
// tests can assert read-through behavior.
type countingCache struct {
	inner   cache.Cache
	gets    int
	hits    int
	failGet bool
}

func (c *countingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets++
	if c.failGet {
		return nil, false, errors.New("cache down")
	}
	value, ok, err := c.inner.Get(ctx, key)
	if ok {
		c.hits++
	}
	return value, ok, err
}

func (c *countingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, key, value, ttl)
}

func (c *countingCache) Del(ctx context.Context, keys ...string) error {
	return c.inner.Del(ctx, keys...)
}

// fakeDoer intercepts presigned upload transfers.
type fakeDoer struct {
	requests []*http.Request
	status   int
	err      error
}

func (d *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	d.requests = append(d.requests, req)
	if d.err != nil {
		return nil, d.err
	}
	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}, nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:   store.NewMemoryAdventureStore(nil),
		users:   store.NewMemoryUserStore(),
		friends: store.NewMemoryFriendStore(),
		cache:   &countingCache{inner: cache.NewMemory()},
		http:    &fakeDoer{},
	}
	env.svc = service.NewAdventureService(service.AdventureServiceDeps{
		Store:   env.store,
		Users:   env.users,
		Friends: env.friends,
		Cache:   env.cache,
		AI:      service.FallbackAI{},
		HTTP:    env.http,
		BaseURL: "https://adventura.app",
	})
	return env
}

func TestCreateAdventure_ShareTokenFormat(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
		require.NoError(t, err)
		assert.Regexp(t, shareTokenPattern, adventure.ShareToken)
		assert.False(t, seen[adventure.ShareToken], "share token should be unique")
		seen[adventure.ShareToken] = true
	}
}

func TestCreateAdventure_ParticipantsAndDescription(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	bob := env.users.Add("bob")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{
		Title:     "Night run",
		FriendIDs: []uuid.UUID{bob.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, alice.ID, adventure.CreatorID)
	assert.Equal(t, "alice", adventure.Creator.Username)
	assert.Equal(t, models.StatusUpcoming, adventure.Status)
	require.Len(t, adventure.Participants, 2)
	assert.True(t, adventure.HasParticipant(alice.ID))
	assert.True(t, adventure.HasParticipant(bob.ID))

	// deterministic fallback copy mentions the title and the participants
	assert.Contains(t, adventure.Description, "Night run")
	assert.Contains(t, adventure.Description, "alice")
	assert.Contains(t, adventure.Description, "bob")
}

func TestCreateAdventure_UnknownFriendGetsPlaceholderUsername(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	ghost := uuid.New()

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{
		Title:     "Night run",
		FriendIDs: []uuid.UUID{ghost},
	})
	require.NoError(t, err)

	var found bool
	for _, p := range adventure.Participants {
		if p.ID == ghost {
			found = true
			assert.Equal(t, "user-"+ghost.String()[:6], p.Username)
		}
	}
	assert.True(t, found)
}

func TestJoinByToken_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	bob := env.users.Add("bob")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	joined, err := env.svc.JoinByToken(context.Background(), bob.ID, adventure.ShareToken)
	require.NoError(t, err)
	assert.Len(t, joined.Participants, 2)

	// joining again keeps exactly one membership row
	joined, err = env.svc.JoinByToken(context.Background(), bob.ID, adventure.ShareToken)
	require.NoError(t, err)
	assert.Len(t, joined.Participants, 2)
}

func TestJoinByToken_UnknownToken(t *testing.T) {
	env := newTestEnv(t)
	bob := env.users.Add("bob")

	_, err := env.svc.JoinByToken(context.Background(), bob.ID, "ADV-000000000000")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCompleteAdventure_CreatorOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	bob := env.users.Add("bob")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{
		Title:     "Night run",
		FriendIDs: []uuid.UUID{bob.ID},
	})
	require.NoError(t, err)

	_, err = env.svc.CompleteAdventure(context.Background(), adventure.ID, &bob.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	completed, err := env.svc.CompleteAdventure(context.Background(), adventure.ID, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.Summary)
	assert.Contains(t, *completed.Summary, "Night run")
}

func TestCompleteAdventure_StatusIsMonotonic(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	_, err = env.svc.CompleteAdventure(context.Background(), adventure.ID, &alice.ID)
	require.NoError(t, err)

	// completing again is harmless
	again, err := env.svc.CompleteAdventure(context.Background(), adventure.ID, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, again.Status)

	// an update can never move it back to upcoming
	upcoming := models.StatusUpcoming
	reverted, err := env.svc.UpdateAdventure(context.Background(), adventure.ID, service.UpdateAdventurePatch{Status: &upcoming})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, reverted.Status)
}

func TestListByStatus_CacheReadThrough(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	_, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	first, err := env.svc.ListByStatus(context.Background(), alice.ID, models.StatusUpcoming)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 0, env.cache.hits)

	second, err := env.svc.ListByStatus(context.Background(), alice.ID, models.StatusUpcoming)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, env.cache.hits, "second read should be served from cache")
}

func TestListByStatus_CompletionInvalidatesLists(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	upcoming, err := env.svc.ListByStatus(context.Background(), alice.ID, models.StatusUpcoming)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)

	_, err = env.svc.CompleteAdventure(context.Background(), adventure.ID, &alice.ID)
	require.NoError(t, err)

	upcoming, err = env.svc.ListByStatus(context.Background(), alice.ID, models.StatusUpcoming)
	require.NoError(t, err)
	assert.Empty(t, upcoming, "completed adventure must leave the upcoming list immediately")

	completed, err := env.svc.ListByStatus(context.Background(), alice.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, adventure.ID, completed[0].ID)
}

func TestListByStatus_CacheFailureFallsBackToStore(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	_, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	env.cache.failGet = true
	items, err := env.svc.ListByStatus(context.Background(), alice.ID, models.StatusUpcoming)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddReaction_ReplacesPreviousEmoji(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	bob := env.users.Add("bob")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{
		Title:     "Night run",
		FriendIDs: []uuid.UUID{bob.ID},
	})
	require.NoError(t, err)

	_, err = env.svc.AddReaction(context.Background(), adventure.ID, bob.ID, "🔥")
	require.NoError(t, err)
	_, err = env.svc.AddReaction(context.Background(), adventure.ID, bob.ID, "❤️")
	require.NoError(t, err)

	reactions, err := env.svc.ListReactions(context.Background(), adventure.ID)
	require.NoError(t, err)
	require.Len(t, reactions, 1, "a user has at most one reaction per adventure")
	assert.Equal(t, "❤️", reactions[0].Emoji)
}

func TestAddReaction_NonParticipantForbidden(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	mallory := env.users.Add("mallory")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	_, err = env.svc.AddReaction(context.Background(), adventure.ID, mallory.ID, "🔥")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestUploadPhoto_TransferFailureLeavesNoPhoto(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	env.http.status = http.StatusForbidden
	_, err = env.svc.UploadPhoto(context.Background(), adventure.ID, alice.ID, service.UploadPhotoInput{
		File:     strings.NewReader("not really a jpeg"),
		Filename: "sunset.jpg",
	})
	require.Error(t, err)

	photos, err := env.svc.ListPhotos(context.Background(), adventure.ID)
	require.NoError(t, err)
	assert.Empty(t, photos, "a failed transfer must not persist a photo row")
}

func TestUploadPhoto_FileTransferPersistsPhoto(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	caption := "golden hour"
	photo, err := env.svc.UploadPhoto(context.Background(), adventure.ID, alice.ID, service.UploadPhotoInput{
		File:     strings.NewReader("bytes"),
		Filename: "sunset.jpg",
		Caption:  &caption,
	})
	require.NoError(t, err)

	require.Len(t, env.http.requests, 1)
	assert.Equal(t, http.MethodPut, env.http.requests[0].Method)
	assert.Equal(t, "image/jpeg", env.http.requests[0].Header.Get("Content-Type"))

	assert.NotEmpty(t, photo.URL)
	assert.Equal(t, "alice", photo.Uploader.Username)
	require.NotNil(t, photo.Caption)
	assert.Equal(t, caption, *photo.Caption)
}

func TestUploadPhoto_NonParticipantForbidden(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	mallory := env.users.Add("mallory")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	url := "https://photos.example.com/x.jpg"
	_, err = env.svc.UploadPhoto(context.Background(), adventure.ID, mallory.ID, service.UploadPhotoInput{PhotoURL: &url})
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestUploadPhoto_PlaceholderWhenNoSource(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	photo, err := env.svc.UploadPhoto(context.Background(), adventure.ID, alice.ID, service.UploadPhotoInput{})
	require.NoError(t, err)
	assert.Contains(t, photo.URL, "placehold.co")
	assert.Contains(t, photo.URL, adventure.ID.String()[:6])
}

func TestSignPhotoView_NonParticipantGetsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	mallory := env.users.Add("mallory")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	photo, err := env.svc.UploadPhoto(context.Background(), adventure.ID, alice.ID, service.UploadPhotoInput{
		File:     strings.NewReader("bytes"),
		Filename: "sunset.jpg",
	})
	require.NoError(t, err)

	// outsiders cannot distinguish "exists but private" from "does not exist"
	_, err = env.svc.SignPhotoView(context.Background(), adventure.ID, photo.ID, mallory.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	signed, err := env.svc.SignPhotoView(context.Background(), adventure.ID, photo.ID, alice.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, signed.URL)
}

func TestGetShareToken_BuildsInviteURL(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)

	link, err := env.svc.GetShareToken(context.Background(), adventure.ID)
	require.NoError(t, err)
	assert.Equal(t, adventure.ShareToken, link.Token)
	assert.Equal(t, "https://adventura.app/join/"+adventure.ShareToken, link.URL)
}

func TestListFriends_NilStoreReturnsEmpty(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")

	svc := service.NewAdventureService(service.AdventureServiceDeps{
		Store: env.store,
		Users: env.users,
	})
	friends, err := svc.ListFriends(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestListFriends_ReturnsConnections(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	env.friends.Add(alice.ID, "bob")
	env.friends.Add(alice.ID, "carol")

	friends, err := env.svc.ListFriends(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "bob", friends[0].Username)
	assert.Equal(t, "carol", friends[1].Username)
}

func TestNightRunScenario(t *testing.T) {
	env := newTestEnv(t)
	alice := env.users.Add("alice")
	bob := env.users.Add("bob")

	// alice plans the adventure
	adventure, err := env.svc.CreateAdventure(context.Background(), alice.ID, service.CreateAdventureInput{Title: "Night run"})
	require.NoError(t, err)
	assert.Regexp(t, shareTokenPattern, adventure.ShareToken)

	// bob joins through the share link
	_, err = env.svc.JoinByToken(context.Background(), bob.ID, adventure.ShareToken)
	require.NoError(t, err)

	// bob uploads a photo and reacts, changing his mind about the emoji
	photo, err := env.svc.UploadPhoto(context.Background(), adventure.ID, bob.ID, service.UploadPhotoInput{
		File:     strings.NewReader("bytes"),
		Filename: "finish-line.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", photo.Uploader.Username)

	_, err = env.svc.AddReaction(context.Background(), adventure.ID, bob.ID, "🔥")
	require.NoError(t, err)
	_, err = env.svc.AddReaction(context.Background(), adventure.ID, bob.ID, "❤️")
	require.NoError(t, err)

	// alice completes it
	completed, err := env.svc.CompleteAdventure(context.Background(), adventure.ID, &alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.Summary)

	// bob cannot complete, and the status stays completed
	_, err = env.svc.CompleteAdventure(context.Background(), adventure.ID, &bob.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)
	current, err := env.svc.GetByID(context.Background(), adventure.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, current.Status)

	// the detail view holds everything together
	media, err := env.svc.GetWithMedia(context.Background(), adventure.ID)
	require.NoError(t, err)
	assert.Len(t, media.Adventure.Participants, 2)
	require.Len(t, media.Photos, 1)
	require.Len(t, media.Reactions, 1)
	assert.Equal(t, "❤️", media.Reactions[0].Emoji)
}
