package handler

import (
	"net/http"

	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/service"
)

// ConceptHandler handles HTTP requests for concepts.
type ConceptHandler struct {
	service *service.ConceptService
}

// NewConceptHandler creates a new ConceptHandler.
func NewConceptHandler(svc *service.ConceptService) *ConceptHandler {
	return &ConceptHandler{service: svc}
}

// HandleCreate handles POST /concepts requests.
func (h *ConceptHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ConceptRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	concept, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, concept)
}

// HandleList handles GET /concepts requests.
func (h *ConceptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	concepts, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, concepts)
}

// HandleUpdate handles PUT /concepts/{concept_id} requests.
func (h *ConceptHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	conceptID, ok := pathID(w, r, "concept_id")
	if !ok {
		return
	}

	var req model.ConceptRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	concept, err := h.service.Update(r.Context(), userID, conceptID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, concept)
}

// HandleDelete handles DELETE /concepts/{concept_id} requests.
func (h *ConceptHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	conceptID, ok := pathID(w, r, "concept_id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, conceptID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
