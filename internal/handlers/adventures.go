package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"ADVENTURA_BACK-END/internal/dto"
	"ADVENTURA_BACK-END/internal/models"
	"ADVENTURA_BACK-END/internal/service"
	"ADVENTURA_BACK-END/internal/utils"
)

// AdventuresHandler manages adventure-related endpoints
type AdventuresHandler struct {
	svc      *service.AdventureService
	validate *validator.Validate
}

// NewAdventuresHandler creates a new AdventuresHandler
func NewAdventuresHandler(svc *service.AdventureService) *AdventuresHandler {
	return &AdventuresHandler{svc: svc, validate: validator.New()}
}

// Adventures dispatches by path and method for /api/adventures and all
// nested resources.
func (h *AdventuresHandler) Adventures(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/adventures"), "/")
	segments := []string{}
	if rest != "" {
		segments = strings.Split(rest, "/")
	}

	switch {
	case len(segments) == 0:
		switch r.Method {
		case http.MethodPost:
			h.CreateAdventure(w, r)
		case http.MethodGet:
			h.ListAdventures(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return

	case segments[0] == "join" && len(segments) == 2:
		h.JoinByToken(w, r, segments[1])
		return
	}

	adventureID, err := uuid.Parse(segments[0])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid adventure id", "adventure_id must be UUID")
		return
	}

	switch {
	case len(segments) == 1:
		switch r.Method {
		case http.MethodGet:
			h.AdventureDetail(w, r, adventureID)
		case http.MethodPut, http.MethodPatch:
			h.UpdateAdventure(w, r, adventureID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case len(segments) == 2 && segments[1] == "complete":
		h.CompleteAdventure(w, r, adventureID)
	case len(segments) == 2 && segments[1] == "share":
		h.ShareToken(w, r, adventureID)
	case len(segments) == 2 && segments[1] == "participants":
		switch r.Method {
		case http.MethodGet:
			h.ListParticipants(w, r, adventureID)
		case http.MethodPost:
			h.AddParticipant(w, r, adventureID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case len(segments) == 2 && segments[1] == "photos":
		switch r.Method {
		case http.MethodGet:
			h.ListPhotos(w, r, adventureID)
		case http.MethodPost:
			h.UploadPhoto(w, r, adventureID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case len(segments) == 3 && segments[1] == "photos" && segments[2] == "sign":
		h.SignPhotoUpload(w, r, adventureID)
	case len(segments) == 3 && segments[1] == "photos":
		h.DeletePhoto(w, r, adventureID, segments[2])
	case len(segments) == 4 && segments[1] == "photos" && segments[3] == "view":
		h.SignPhotoView(w, r, adventureID, segments[2])
	case len(segments) == 2 && segments[1] == "reactions":
		switch r.Method {
		case http.MethodGet:
			h.ListReactions(w, r, adventureID)
		case http.MethodPost:
			h.AddReaction(w, r, adventureID)
		case http.MethodDelete:
			h.RemoveReaction(w, r, adventureID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Unknown adventure resource")
	}
}

// writeServiceError maps service sentinel errors to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == service.ErrNotFound:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Adventure not found")
	case err == service.ErrForbidden:
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "You are not allowed to perform this action")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// CreateAdventure handles POST /api/adventures
// @Summary Create a new adventure
// @Tags adventures
// @Accept json
// @Produce json
// @Param payload body dto.CreateAdventureRequest true "Adventure payload"
// @Success 201 {object} models.Adventure
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures [post]
func (h *AdventuresHandler) CreateAdventure(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateAdventureRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	friendIDs := make([]uuid.UUID, 0, len(req.FriendIDs))
	for _, raw := range req.FriendIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "friendIds must be UUIDs")
			return
		}
		friendIDs = append(friendIDs, id)
	}

	adventure, err := h.svc.CreateAdventure(r.Context(), userID, service.CreateAdventureInput{
		Title:     req.Title,
		StartsAt:  req.StartsAt,
		FriendIDs: friendIDs,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, adventure)
}

// ListAdventures handles GET /api/adventures?status=upcoming|completed
// @Summary List the caller's adventures by status
// @Tags adventures
// @Produce json
// @Param status query string false "upcoming|completed (default upcoming)"
// @Success 200 {object} dto.AdventureListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures [get]
func (h *AdventuresHandler) ListAdventures(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	status := models.AdventureStatus(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))))
	if status == "" {
		status = models.StatusUpcoming
	}
	if !models.ValidStatus(status) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "status must be upcoming or completed")
		return
	}

	adventures, err := h.svc.ListByStatus(r.Context(), userID, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AdventureListResponse{Adventures: adventures})
}

// AdventureDetail handles GET /api/adventures/{adventure_id}
// @Summary Get adventure detail with photos and reactions
// @Tags adventures
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 200 {object} dto.AdventureDetailResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id} [get]
func (h *AdventuresHandler) AdventureDetail(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	media, err := h.svc.GetWithMedia(r.Context(), adventureID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AdventureDetailResponse{Adventure: dto.AdventureWithMedia{
		Adventure: media.Adventure,
		Photos:    media.Photos,
		Reactions: media.Reactions,
	}})
}

// UpdateAdventure handles PUT/PATCH /api/adventures/{adventure_id}
// @Summary Update adventure fields
// @Tags adventures
// @Accept json
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param payload body dto.UpdateAdventureRequest true "Update payload"
// @Success 200 {object} models.Adventure
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id} [patch]
func (h *AdventuresHandler) UpdateAdventure(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.UpdateAdventureRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	adventure, err := h.svc.UpdateAdventure(r.Context(), adventureID, service.UpdateAdventurePatch{
		Title:       req.Title,
		Description: req.Description,
		Summary:     req.Summary,
		StartsAt:    req.StartsAt,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, adventure)
}

// CompleteAdventure handles POST /api/adventures/{adventure_id}/complete
// @Summary Mark an adventure completed with an AI recap
// @Tags adventures
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 200 {object} models.Adventure
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/complete [post]
func (h *AdventuresHandler) CompleteAdventure(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	adventure, err := h.svc.CompleteAdventure(r.Context(), adventureID, &userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, adventure)
}

// ShareToken handles GET /api/adventures/{adventure_id}/share
// @Summary Get the adventure's share token and invite link
// @Tags adventures
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 200 {object} dto.ShareTokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/share [get]
func (h *AdventuresHandler) ShareToken(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	link, err := h.svc.GetShareToken(r.Context(), adventureID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ShareTokenResponse{Token: link.Token, URL: link.URL})
}

// JoinByToken handles POST /api/adventures/join/{token}
// @Summary Join an adventure via share token
// @Tags adventures
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} models.Adventure
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/join/{token} [post]
func (h *AdventuresHandler) JoinByToken(w http.ResponseWriter, r *http.Request, token string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	adventure, err := h.svc.JoinByToken(r.Context(), userID, token)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, adventure)
}

// ListParticipants handles GET /api/adventures/{adventure_id}/participants
// @Summary List adventure participants
// @Tags participants
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 200 {object} dto.ParticipantsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/participants [get]
func (h *AdventuresHandler) ListParticipants(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	participants, err := h.svc.ListParticipants(r.Context(), adventureID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ParticipantsResponse{Participants: participants})
}

// AddParticipant handles POST /api/adventures/{adventure_id}/participants
// @Summary Add a friend to an adventure
// @Tags participants
// @Accept json
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param payload body dto.AddParticipantRequest true "Friend to add"
// @Success 200 {object} dto.ParticipantsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/participants [post]
func (h *AdventuresHandler) AddParticipant(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.AddParticipantRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	friendID, err := uuid.Parse(req.FriendID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "friendId must be UUID")
		return
	}

	participants, err := h.svc.AddParticipant(r.Context(), adventureID, friendID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ParticipantsResponse{Participants: participants})
}

// ListPhotos handles GET /api/adventures/{adventure_id}/photos
// @Summary List adventure photos
// @Tags photos
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 200 {object} dto.PhotosResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/photos [get]
func (h *AdventuresHandler) ListPhotos(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	photos, err := h.svc.ListPhotos(r.Context(), adventureID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PhotosResponse{Photos: photos})
}

// UploadPhoto handles POST /api/adventures/{adventure_id}/photos
// Accepts either multipart form data with a "photo" file field or a JSON
// body with a pre-hosted photoUrl.
// @Summary Upload a photo to an adventure
// @Tags photos
// @Accept json
// @Accept mpfd
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 201 {object} models.AdventurePhoto
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/photos [post]
func (h *AdventuresHandler) UploadPhoto(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var input service.UploadPhotoInput

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Malformed multipart form")
			return
		}
		file, header, err := r.FormFile("photo")
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "photo file field is required")
			return
		}
		defer file.Close()

		input.File = file
		input.Filename = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
		if caption := strings.TrimSpace(r.FormValue("caption")); caption != "" {
			input.Caption = &caption
		}
	} else {
		var req dto.UploadPhotoRequest
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return
		}
		if err := h.validate.Struct(req); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
			return
		}
		input.PhotoURL = req.PhotoURL
		input.Caption = req.Caption
		if req.ContentType != nil {
			input.ContentType = *req.ContentType
		}
	}

	photo, err := h.svc.UploadPhoto(r.Context(), adventureID, userID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, photo)
}

// SignPhotoUpload handles POST /api/adventures/{adventure_id}/photos/sign
// @Summary Get a presigned URL to upload a photo directly
// @Tags photos
// @Accept json
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param payload body dto.SignPhotoUploadRequest true "Upload descriptor"
// @Success 200 {object} storage.SignedPut
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/photos/sign [post]
func (h *AdventuresHandler) SignPhotoUpload(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.SignPhotoUploadRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	contentType := ""
	if req.ContentType != nil {
		contentType = *req.ContentType
	}

	signed, err := h.svc.SignPhotoUpload(r.Context(), adventureID, req.Filename, contentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, signed)
}

// SignPhotoView handles GET /api/adventures/{adventure_id}/photos/{photo_id}/view
// @Summary Get a presigned URL to view a photo
// @Tags photos
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param photo_id path string true "Photo ID"
// @Success 200 {object} storage.SignedGet
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/photos/{photo_id}/view [get]
func (h *AdventuresHandler) SignPhotoView(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID, photoIDStr string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	photoID, err := uuid.Parse(photoIDStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid photo id", "photo_id must be UUID")
		return
	}

	signed, err := h.svc.SignPhotoView(r.Context(), adventureID, photoID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, signed)
}

// DeletePhoto handles DELETE /api/adventures/{adventure_id}/photos/{photo_id}
// @Summary Delete a photo from an adventure
// @Tags photos
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param photo_id path string true "Photo ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/photos/{photo_id} [delete]
func (h *AdventuresHandler) DeletePhoto(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID, photoIDStr string) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	photoID, err := uuid.Parse(photoIDStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid photo id", "photo_id must be UUID")
		return
	}

	deleted, err := h.svc.DeletePhoto(r.Context(), adventureID, photoID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Photo not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Photo deleted successfully"})
}

// ListReactions handles GET /api/adventures/{adventure_id}/reactions
// @Summary List adventure reactions
// @Tags reactions
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Success 200 {object} dto.ReactionsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/reactions [get]
func (h *AdventuresHandler) ListReactions(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	reactions, err := h.svc.ListReactions(r.Context(), adventureID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ReactionsResponse{Reactions: reactions})
}

// AddReaction handles POST /api/adventures/{adventure_id}/reactions
// @Summary React to an adventure with an emoji
// @Tags reactions
// @Accept json
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param payload body dto.AddReactionRequest true "Reaction payload"
// @Success 201 {object} models.AdventureReaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/reactions [post]
func (h *AdventuresHandler) AddReaction(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.AddReactionRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	reaction, err := h.svc.AddReaction(r.Context(), adventureID, userID, req.Emoji)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, reaction)
}

// RemoveReaction handles DELETE /api/adventures/{adventure_id}/reactions?emoji=🔥
// @Summary Remove the caller's reaction from an adventure
// @Tags reactions
// @Produce json
// @Param adventure_id path string true "Adventure ID"
// @Param emoji query string true "Emoji to remove"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/adventures/{adventure_id}/reactions [delete]
func (h *AdventuresHandler) RemoveReaction(w http.ResponseWriter, r *http.Request, adventureID uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	emoji := strings.TrimSpace(r.URL.Query().Get("emoji"))
	if emoji == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "emoji query parameter is required")
		return
	}

	removed, err := h.svc.RemoveReaction(r.Context(), adventureID, userID, emoji)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !removed {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Reaction not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Reaction removed successfully"})
}
