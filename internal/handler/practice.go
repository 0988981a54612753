package handler

import (
	"net/http"

	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/service"
)

// PracticeHandler handles HTTP requests for mock-interview sessions.
type PracticeHandler struct {
	service *service.PracticeService
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(svc *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: svc}
}

// HandleStart handles POST /practice requests.
func (h *PracticeHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PracticeRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	session, err := h.service.Start(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// HandleList handles GET /practice requests.
func (h *PracticeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	sessions, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// HandleGet handles GET /practice/{session_id} requests.
func (h *PracticeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := pathUUID(w, r, "session_id")
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// HandleFeedback handles POST /practice/{session_id}/feedback requests.
func (h *PracticeHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := pathUUID(w, r, "session_id")
	if !ok {
		return
	}

	var req model.PracticeFeedbackRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	session, err := h.service.Feedback(r.Context(), userID, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// HandleDelete handles DELETE /practice/{session_id} requests.
func (h *PracticeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := pathUUID(w, r, "session_id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
