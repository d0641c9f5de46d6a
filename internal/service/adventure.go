package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ADVENTURA_BACK-END/internal/cache"
	"ADVENTURA_BACK-END/internal/models"
	"ADVENTURA_BACK-END/internal/storage"
	"ADVENTURA_BACK-END/internal/store"
)

// Doer executes HTTP requests. It exists so tests can intercept the byte
// transfer to signed upload URLs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AdventureServiceDeps wires the collaborators of the adventure service.
// Users and Store are required; everything else is optional with documented
// defaults (in-process cache, fallback signer and AI copy, no friends).
type AdventureServiceDeps struct {
	Store   store.AdventureStore
	Users   store.UserStore
	Friends store.FriendStore // optional; nil means ListFriends returns []
	Cache   cache.Cache       // optional; defaults to an in-process cache
	Signer  storage.Signer    // optional; defaults to the local fallback signer
	AI      AIClient          // optional; defaults to deterministic fallback copy
	HTTP    Doer              // optional; defaults to http.DefaultClient
	BaseURL string            // share-link prefix; defaults to https://example.com
	ListTTL time.Duration     // adventure-list cache TTL; defaults to 30s
	Now     func() time.Time  // optional clock override for tests
}

// AdventureService orchestrates the adventure lifecycle: creation, sharing,
// membership, photos and reactions.
type AdventureService struct {
	store   store.AdventureStore
	users   store.UserStore
	friends store.FriendStore
	cache   cache.Cache
	signer  storage.Signer
	ai      AIClient
	http    Doer
	baseURL string
	listTTL time.Duration
	now     func() time.Time
	log     *logrus.Entry
}

// NewAdventureService creates an AdventureService, applying defaults for
// the optional collaborators.
func NewAdventureService(deps AdventureServiceDeps) *AdventureService {
	if deps.Store == nil {
		panic("AdventureService requires a store")
	}
	if deps.Users == nil {
		panic("AdventureService requires a user store")
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewMemory()
	}
	if deps.Signer == nil {
		deps.Signer = storage.NewLocal("", 0)
	}
	if deps.AI == nil {
		deps.AI = FallbackAI{}
	}
	if deps.HTTP == nil {
		deps.HTTP = http.DefaultClient
	}
	if deps.BaseURL == "" {
		deps.BaseURL = "https://example.com"
	}
	if deps.ListTTL <= 0 {
		deps.ListTTL = 30 * time.Second
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &AdventureService{
		store:   deps.Store,
		users:   deps.Users,
		friends: deps.Friends,
		cache:   deps.Cache,
		signer:  deps.Signer,
		ai:      deps.AI,
		http:    deps.HTTP,
		baseURL: strings.TrimRight(deps.BaseURL, "/"),
		listTTL: deps.ListTTL,
		now:     deps.Now,
		log:     logrus.WithField("component", "adventure_service"),
	}
}

// newShareToken builds the human-shareable join code. Uniqueness is not
// guaranteed here; the store's unique constraint is the backstop.
func newShareToken() string {
	return "ADV-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// participantForUser resolves a user id to its display participant. Unknown
// users still resolve, with a placeholder username, so membership rows with
// deleted accounts stay renderable.
func (s *AdventureService) participantForUser(ctx context.Context, userID uuid.UUID) models.Participant {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return models.Participant{ID: userID, Username: "user-" + userID.String()[:6]}
	}
	return models.Participant{ID: userID, Username: user.Username, AvatarURL: user.AvatarURL}
}

// CreateAdventureInput carries the caller-supplied creation fields.
type CreateAdventureInput struct {
	Title     string
	StartsAt  *time.Time
	FriendIDs []uuid.UUID
}

// CreateAdventure persists a new adventure with the creator and invited
// friends as participants. The description comes from the AI collaborator,
// with a deterministic fallback on any failure.
func (s *AdventureService) CreateAdventure(ctx context.Context, creatorID uuid.UUID, input CreateAdventureInput) (*models.Adventure, error) {
	creator := s.participantForUser(ctx, creatorID)
	participants := []models.Participant{creator}
	for _, friendID := range input.FriendIDs {
		participants = append(participants, s.participantForUser(ctx, friendID))
	}

	startsAt := s.now()
	if input.StartsAt != nil {
		startsAt = *input.StartsAt
	}

	description, err := s.ai.GenerateDescription(ctx, input.Title, participants)
	if err != nil || description == "" {
		if err != nil {
			s.log.WithError(err).Warn("AI description failed, using fallback")
		}
		description = FallbackDescription(input.Title, participants)
	}

	now := s.now()
	adventure := &models.Adventure{
		ID:           uuid.New(),
		CreatorID:    creatorID,
		Title:        input.Title,
		Description:  description,
		Status:       models.StatusUpcoming,
		ShareToken:   newShareToken(),
		Creator:      creator,
		Participants: participants,
		StartsAt:     startsAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.store.CreateAdventure(ctx, adventure, participants)
	if err != nil {
		return nil, fmt.Errorf("create adventure: %w", err)
	}

	s.invalidateLists(ctx, saved)
	return saved, nil
}

// ListByStatus is a cache-first read of the adventures a user participates
// in. Cache failures degrade to the store of record.
func (s *AdventureService) ListByStatus(ctx context.Context, userID uuid.UUID, status models.AdventureStatus) ([]models.Adventure, error) {
	key := listCacheKey(status, userID)

	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache get failed")
	} else if ok {
		var cached []models.Adventure
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.log.WithField("key", key).Warn("dropping unreadable cache entry")
	}

	items, err := s.store.ListByStatus(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("list adventures: %w", err)
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.listTTL); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("cache set failed")
		}
	}
	return items, nil
}

// GetByID is a direct store pass-through, no cache.
func (s *AdventureService) GetByID(ctx context.Context, id uuid.UUID) (*models.Adventure, error) {
	adventure, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return adventure, nil
}

// UpdateAdventurePatch carries the optional fields a caller may merge onto
// an adventure. Nil means "leave unchanged".
type UpdateAdventurePatch struct {
	Title       *string
	Description *string
	Status      *models.AdventureStatus
	Summary     *string
	StartsAt    *time.Time
}

// UpdateAdventure merges the patch onto the current row, bumps updatedAt and
// persists. Completed adventures never transition back to upcoming.
func (s *AdventureService) UpdateAdventure(ctx context.Context, id uuid.UUID, patch UpdateAdventurePatch) (*models.Adventure, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	updated := *current
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Status != nil {
		// completed is terminal
		if current.Status != models.StatusCompleted {
			updated.Status = *patch.Status
		}
	}
	if patch.Summary != nil {
		updated.Summary = patch.Summary
	}
	if patch.StartsAt != nil {
		updated.StartsAt = *patch.StartsAt
	}
	updated.UpdatedAt = s.now()

	persisted, err := s.store.UpdateAdventure(ctx, &updated)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.invalidateLists(ctx, persisted)
	return persisted, nil
}

// CompleteAdventure marks an adventure completed and attaches an AI recap.
// When requesterID is non-nil only the creator may complete; a mismatch is
// ErrForbidden, distinct from ErrNotFound.
func (s *AdventureService) CompleteAdventure(ctx context.Context, id uuid.UUID, requesterID *uuid.UUID) (*models.Adventure, error) {
	adventure, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if requesterID != nil && *requesterID != adventure.CreatorID {
		return nil, ErrForbidden
	}

	summary, err := s.ai.GenerateSummary(ctx, adventure.Title, adventure.Description, adventure.Participants)
	if err != nil || summary == "" {
		if err != nil {
			s.log.WithError(err).Warn("AI summary failed, using fallback")
		}
		summary = FallbackSummary(adventure.Title, adventure.Description, adventure.Participants)
	}

	completed := models.StatusCompleted
	return s.UpdateAdventure(ctx, id, UpdateAdventurePatch{Status: &completed, Summary: &summary})
}

// JoinByToken adds the user to the adventure behind the share token.
// Joining an adventure the user already belongs to is a no-op.
func (s *AdventureService) JoinByToken(ctx context.Context, userID uuid.UUID, token string) (*models.Adventure, error) {
	adventure, err := s.store.FindByShareToken(ctx, token)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if adventure.HasParticipant(userID) {
		return adventure, nil
	}

	participant := s.participantForUser(ctx, userID)
	updated, err := s.store.AddParticipant(ctx, adventure.ID, participant)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.invalidateLists(ctx, updated)
	return updated, nil
}

// ShareLink carries the share token and the full invite URL.
type ShareLink struct {
	Token string
	URL   string
}

// GetShareToken returns the share token and invite link of an adventure.
func (s *AdventureService) GetShareToken(ctx context.Context, id uuid.UUID) (*ShareLink, error) {
	adventure, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &ShareLink{
		Token: adventure.ShareToken,
		URL:   s.baseURL + "/join/" + adventure.ShareToken,
	}, nil
}

// ListParticipants returns the resolved participant list.
func (s *AdventureService) ListParticipants(ctx context.Context, adventureID uuid.UUID) ([]models.Participant, error) {
	participants, err := s.store.ListParticipants(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return participants, nil
}

// AddParticipant resolves the user and appends them to the adventure.
func (s *AdventureService) AddParticipant(ctx context.Context, adventureID, userID uuid.UUID) ([]models.Participant, error) {
	participant := s.participantForUser(ctx, userID)
	updated, err := s.store.AddParticipant(ctx, adventureID, participant)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	s.invalidateLists(ctx, updated)
	return updated.Participants, nil
}

// ListFriends returns the user's connections as pickable participants. An
// unconfigured friend store yields an empty list, never an error.
func (s *AdventureService) ListFriends(ctx context.Context, userID uuid.UUID) ([]models.Participant, error) {
	if s.friends == nil {
		return []models.Participant{}, nil
	}
	friends, err := s.friends.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	out := make([]models.Participant, 0, len(friends))
	for _, f := range friends {
		out = append(out, models.Participant{ID: f.ID, Username: f.Name, AvatarURL: f.AvatarURL})
	}
	return out, nil
}

// UploadPhotoInput carries either a pre-hosted photo URL or raw file bytes.
type UploadPhotoInput struct {
	Caption     *string
	PhotoURL    *string
	ContentType string
	File        io.Reader
	Filename    string
}

// UploadPhoto attaches a photo to an adventure. Only participants may
// upload. When raw bytes are supplied the service signs a fresh object key,
// transfers the bytes and aborts without persisting anything if the
// transfer fails.
func (s *AdventureService) UploadPhoto(ctx context.Context, adventureID, uploaderID uuid.UUID, input UploadPhotoInput) (*models.AdventurePhoto, error) {
	adventure, err := s.store.FindByID(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !adventure.HasParticipant(uploaderID) {
		return nil, ErrForbidden
	}

	url := ""
	switch {
	case input.File != nil:
		url, err = s.transferFile(ctx, adventureID, input)
		if err != nil {
			s.log.WithError(err).WithField("adventure_id", adventureID).Warn("photo transfer failed")
			return nil, fmt.Errorf("transfer photo: %w", err)
		}
	case input.PhotoURL != nil && *input.PhotoURL != "":
		url = *input.PhotoURL
	default:
		url = "https://placehold.co/800x600?text=" + adventureID.String()[:6]
	}

	photo := &models.AdventurePhoto{
		ID:          uuid.New(),
		AdventureID: adventureID,
		URL:         url,
		Uploader:    s.participantForUser(ctx, uploaderID),
		Caption:     input.Caption,
		CreatedAt:   s.now(),
	}

	created, err := s.store.CreatePhoto(ctx, photo)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return created, nil
}

// transferFile signs a fresh object key and PUTs the bytes to it. No photo
// row exists yet at this point, so a failure leaves no partial state.
func (s *AdventureService) transferFile(ctx context.Context, adventureID uuid.UUID, input UploadPhotoInput) (string, error) {
	filename := input.Filename
	if filename == "" {
		filename = "photo"
	}
	key := fmt.Sprintf("adventures/%s/%s/%s", adventureID, uuid.NewString(), filename)

	contentType := input.ContentType
	if contentType == "" {
		contentType = storage.ContentTypeFromFilename(filename)
	}

	signed, err := s.signer.SignPutURL(ctx, key, contentType)
	if err != nil {
		return "", fmt.Errorf("sign upload: %w", err)
	}

	body, err := io.ReadAll(input.File)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signed.UploadURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload bytes: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("upload rejected with status %d", res.StatusCode)
	}

	return signed.PhotoURL, nil
}

// SignPhotoUpload issues a presigned upload URL under the adventure's
// namespace.
func (s *AdventureService) SignPhotoUpload(ctx context.Context, adventureID uuid.UUID, filename, contentType string) (*storage.SignedPut, error) {
	if _, err := s.store.FindByID(ctx, adventureID); err != nil {
		return nil, mapStoreErr(err)
	}

	key := fmt.Sprintf("adventures/%s/%s/%s", adventureID, uuid.NewString(), filename)
	if contentType == "" {
		contentType = storage.ContentTypeFromFilename(filename)
	}

	signed, err := s.signer.SignPutURL(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("sign photo upload: %w", err)
	}
	return signed, nil
}

// SignPhotoView issues a presigned download URL for a photo. Non-participant
// requesters get ErrNotFound, indistinguishable from a missing photo.
func (s *AdventureService) SignPhotoView(ctx context.Context, adventureID, photoID, requesterID uuid.UUID) (*storage.SignedGet, error) {
	adventure, err := s.store.FindByID(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !adventure.HasParticipant(requesterID) {
		return nil, ErrNotFound
	}

	photos, err := s.store.ListPhotos(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	for _, photo := range photos {
		if photo.ID != photoID {
			continue
		}
		key := storage.KeyFromURL(photo.URL, s.signer.BaseURL())
		if key == "" {
			// Photo lives outside our bucket (pre-hosted URL); nothing to sign.
			return &storage.SignedGet{URL: photo.URL, ExpiresIn: 0, Key: ""}, nil
		}
		signed, err := s.signer.SignGetURL(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("sign photo view: %w", err)
		}
		return signed, nil
	}
	return nil, ErrNotFound
}

// ListPhotos returns the photos of an adventure.
func (s *AdventureService) ListPhotos(ctx context.Context, adventureID uuid.UUID) ([]models.AdventurePhoto, error) {
	photos, err := s.store.ListPhotos(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return photos, nil
}

// DeletePhoto removes a photo by id. False means no matching row existed.
func (s *AdventureService) DeletePhoto(ctx context.Context, adventureID, photoID uuid.UUID) (bool, error) {
	deleted, err := s.store.DeletePhoto(ctx, adventureID, photoID)
	if err != nil {
		return false, mapStoreErr(err)
	}
	return deleted, nil
}

// AddReaction puts the user's emoji on the adventure, replacing any
// previous reaction by the same user. Participants only.
func (s *AdventureService) AddReaction(ctx context.Context, adventureID, userID uuid.UUID, emoji string) (*models.AdventureReaction, error) {
	adventure, err := s.store.FindByID(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !adventure.HasParticipant(userID) {
		return nil, ErrForbidden
	}

	reaction := &models.AdventureReaction{
		ID:          uuid.New(),
		AdventureID: adventureID,
		UserID:      userID,
		Emoji:       emoji,
		CreatedAt:   s.now(),
	}
	created, err := s.store.AddReaction(ctx, reaction)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return created, nil
}

// RemoveReaction deletes the user's reaction. Participants only.
func (s *AdventureService) RemoveReaction(ctx context.Context, adventureID, userID uuid.UUID, emoji string) (bool, error) {
	adventure, err := s.store.FindByID(ctx, adventureID)
	if err != nil {
		return false, mapStoreErr(err)
	}
	if !adventure.HasParticipant(userID) {
		return false, ErrForbidden
	}
	removed, err := s.store.RemoveReaction(ctx, adventureID, userID, emoji)
	if err != nil {
		return false, mapStoreErr(err)
	}
	return removed, nil
}

// ListReactions returns the reactions of an adventure.
func (s *AdventureService) ListReactions(ctx context.Context, adventureID uuid.UUID) ([]models.AdventureReaction, error) {
	reactions, err := s.store.ListReactions(ctx, adventureID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return reactions, nil
}

// AdventureMedia bundles an adventure with its photos and reactions for
// detail views.
type AdventureMedia struct {
	Adventure models.Adventure
	Photos    []models.AdventurePhoto
	Reactions []models.AdventureReaction
}

// GetWithMedia loads an adventure together with its photos and reactions.
func (s *AdventureService) GetWithMedia(ctx context.Context, id uuid.UUID) (*AdventureMedia, error) {
	adventure, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	photos, err := s.store.ListPhotos(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	reactions, err := s.store.ListReactions(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &AdventureMedia{Adventure: *adventure, Photos: photos, Reactions: reactions}, nil
}

// listCacheKey follows the adv:<status>:<userId> convention.
func listCacheKey(status models.AdventureStatus, userID uuid.UUID) string {
	return "adv:" + string(status) + ":" + userID.String()
}

// invalidateLists deletes both status keys for every current participant.
// Over-invalidation is fine; under-invalidation is not. Cache errors are
// logged and swallowed.
func (s *AdventureService) invalidateLists(ctx context.Context, adventure *models.Adventure) {
	if adventure == nil {
		return
	}
	keys := make([]string, 0, 2*len(adventure.Participants))
	for _, p := range adventure.Participants {
		keys = append(keys,
			listCacheKey(models.StatusUpcoming, p.ID),
			listCacheKey(models.StatusCompleted, p.ID),
		)
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.log.WithError(err).WithField("adventure_id", adventure.ID).Warn("cache invalidation failed")
	}
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
