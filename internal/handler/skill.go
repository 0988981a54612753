package handler

import (
	"net/http"

	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/service"
)

// SkillHandler handles HTTP requests for skills.
type SkillHandler struct {
	service *service.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(svc *service.SkillService) *SkillHandler {
	return &SkillHandler{service: svc}
}

// HandleCreate handles POST /skills requests.
func (h *SkillHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SkillRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	skill, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, skill)
}

// HandleList handles GET /skills requests.
func (h *SkillHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skills, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skills)
}

// HandleUpdate handles PUT /skills/{skill_id} requests.
func (h *SkillHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skillID, ok := pathID(w, r, "skill_id")
	if !ok {
		return
	}

	var req model.SkillRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	skill, err := h.service.Update(r.Context(), userID, skillID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skill)
}

// HandleDelete handles DELETE /skills/{skill_id} requests.
func (h *SkillHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skillID, ok := pathID(w, r, "skill_id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, skillID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
