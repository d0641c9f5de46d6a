package handlers

import (
	"net/http"

	"ADVENTURA_BACK-END/internal/dto"
	"ADVENTURA_BACK-END/internal/service"
	"ADVENTURA_BACK-END/internal/utils"
)

// FriendsHandler exposes the caller's connections for the invite picker
type FriendsHandler struct {
	svc *service.AdventureService
}

// NewFriendsHandler creates a new FriendsHandler
func NewFriendsHandler(svc *service.AdventureService) *FriendsHandler {
	return &FriendsHandler{svc: svc}
}

// ListFriends handles GET /api/friends
// @Summary List the caller's friends
// @Tags friends
// @Produce json
// @Success 200 {object} dto.FriendsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/friends [get]
func (h *FriendsHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	friends, err := h.svc.ListFriends(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.FriendsResponse{Friends: friends})
}
