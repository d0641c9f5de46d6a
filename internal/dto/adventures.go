package dto

import (
	"time"

	"ADVENTURA_BACK-END/internal/models"
)

// CreateAdventureRequest represents the payload to create an adventure
type CreateAdventureRequest struct {
	Title     string     `json:"title" validate:"required,max=140"`
	StartsAt  *time.Time `json:"startsAt"` // defaults to now when omitted
	FriendIDs []string   `json:"friendIds" validate:"omitempty,dive,uuid"`
}

// UpdateAdventureRequest represents fields allowed to update an adventure
// All fields are optional; only provided ones will be merged
type UpdateAdventureRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=140"`
	Description *string    `json:"description" validate:"omitempty,max=512"`
	Summary     *string    `json:"summary" validate:"omitempty,max=512"`
	StartsAt    *time.Time `json:"startsAt"`
}

// AddParticipantRequest adds a friend to an adventure
type AddParticipantRequest struct {
	FriendID string `json:"friendId" validate:"required,uuid"`
}

// UploadPhotoRequest attaches a photo by URL (raw file uploads go through
// multipart form fields instead)
type UploadPhotoRequest struct {
	PhotoURL    *string `json:"photoUrl" validate:"omitempty,url"`
	Caption     *string `json:"caption" validate:"omitempty,max=160"`
	ContentType *string `json:"contentType" validate:"omitempty,max=128"`
}

// SignPhotoUploadRequest asks for a presigned upload URL
type SignPhotoUploadRequest struct {
	Filename    string  `json:"filename" validate:"required,max=256"`
	ContentType *string `json:"contentType" validate:"omitempty,max=128"`
}

// AddReactionRequest puts an emoji on an adventure
type AddReactionRequest struct {
	Emoji string `json:"emoji" validate:"required,min=1,max=8"`
}

// AdventureListResponse envelope
type AdventureListResponse struct {
	Adventures []models.Adventure `json:"adventures"`
}

// AdventureWithMedia is an adventure enriched with its photos and reactions
type AdventureWithMedia struct {
	models.Adventure
	Photos    []models.AdventurePhoto    `json:"photos"`
	Reactions []models.AdventureReaction `json:"reactions"`
}

// AdventureDetailResponse envelope
type AdventureDetailResponse struct {
	Adventure AdventureWithMedia `json:"adventure"`
}

// ShareTokenResponse carries the share token and the full invite link
type ShareTokenResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// ParticipantsResponse envelope
type ParticipantsResponse struct {
	Participants []models.Participant `json:"participants"`
}

// FriendsResponse envelope
type FriendsResponse struct {
	Friends []models.Participant `json:"friends"`
}

// PhotosResponse envelope
type PhotosResponse struct {
	Photos []models.AdventurePhoto `json:"photos"`
}

// ReactionsResponse envelope
type ReactionsResponse struct {
	Reactions []models.AdventureReaction `json:"reactions"`
}
