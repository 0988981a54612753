package handler

import (
	"net/http"
	"strconv"

	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler handles HTTP requests for projects and milestones.
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// HandleCreate handles POST /projects requests.
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ProjectRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	project, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// HandleList handles GET /projects requests.
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projects, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// HandleUpdate handles PUT /projects/{project_id} requests.
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projectID, ok := pathID(w, r, "project_id")
	if !ok {
		return
	}

	var req model.ProjectRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	project, err := h.service.Update(r.Context(), userID, projectID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// HandleDelete handles DELETE /projects/{project_id} requests.
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projectID, ok := pathID(w, r, "project_id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, projectID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddMilestone handles POST /projects/{project_id}/milestones requests.
func (h *ProjectHandler) HandleAddMilestone(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projectID, ok := pathID(w, r, "project_id")
	if !ok {
		return
	}

	var req model.MilestoneRequest
	if !decodeBody(w, r, &req, 1<<20) {
		return
	}

	milestone, err := h.service.AddMilestone(r.Context(), userID, projectID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, milestone)
}

// HandleToggleMilestone handles PUT /projects/{project_id}/milestones/{milestone_id}/toggle requests.
func (h *ProjectHandler) HandleToggleMilestone(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	projectID, ok := pathID(w, r, "project_id")
	if !ok {
		return
	}
	milestoneID, ok := pathID(w, r, "milestone_id")
	if !ok {
		return
	}

	if err := h.service.ToggleMilestone(r.Context(), userID, projectID, milestoneID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a numeric chi URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid "+name))
		return 0, false
	}
	return id, true
}
