package handler

import (
	"net/http"
	"strconv"

	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/service"
)

// ChatHandler handles HTTP requests for the coaching chat.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleSend handles POST /chat requests.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ChatRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	resp, err := h.service.Send(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleHistory handles GET /chat/history requests.
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
