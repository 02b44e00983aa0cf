package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/supabase"
)

type ProjectsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewProjectsHandler(dbClient *supabase.DatabaseClient) *ProjectsHandler {
	return &ProjectsHandler{dbClient: dbClient}
}

// CreateProject godoc
// @Summary     Create project
// @Description Creates a construction project with a name and an external reference code.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateProjectRequest true "Project"
// @Success     201 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	project := &models.Project{
		Name:        strings.TrimSpace(req.Name),
		Status:      models.ProjectStatusOpen,
		ExternalRef: sql.NullString{String: strings.TrimSpace(req.Code), Valid: strings.TrimSpace(req.Code) != ""},
	}
	if project.Name == "" {
		badRequest(c, "invalid request body", "name must not be empty")
		return
	}

	if err := h.dbClient.CreateProject(c.Request.Context(), project); err != nil {
		respondError(c, err, "create project")
		return
	}

	c.JSON(http.StatusCreated, projectResponse(*project))
}

// ListProjects godoc
// @Summary     List projects
// @Description Lists projects newest first, optionally filtered by name or code.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       q query string false "Search over name and code"
// @Success     200 {object} models.ProjectListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	projects, err := h.dbClient.ListProjects(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "list projects")
		return
	}

	response := models.ProjectListResponse{Projects: make([]models.ProjectResponse, len(projects))}
	for i, p := range projects {
		response.Projects[i] = projectResponse(p)
	}
	c.JSON(http.StatusOK, response)
}

// GetProject godoc
// @Summary     Get project
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}

	project, err := h.dbClient.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "get project")
		return
	}
	c.JSON(http.StatusOK, projectResponse(*project))
}

// UpdateProject godoc
// @Summary     Update project
// @Description Updates name, code or status. Omitted fields are left unchanged.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       request body models.UpdateProjectRequest true "Fields to change"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [patch]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	project, err := h.dbClient.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "get project")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			badRequest(c, "invalid request body", "name must not be empty")
			return
		}
		project.Name = name
	}
	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		project.ExternalRef = sql.NullString{String: code, Valid: code != ""}
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ProjectStatusOpen, models.ProjectStatusPending, models.ProjectStatusCompleted:
			project.Status = *req.Status
		default:
			badRequest(c, "invalid status", "status must be open, pending or completed")
			return
		}
	}

	if err := h.dbClient.UpdateProject(c.Request.Context(), project); err != nil {
		respondError(c, err, "update project")
		return
	}
	c.JSON(http.StatusOK, projectResponse(*project))
}

// DeleteProject godoc
// @Summary     Delete project
// @Description Deletes a project with its to-dos, notes, reports and media rows.
// @Tags        projects
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     204
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, "delete project")
		return
	}
	c.Status(http.StatusNoContent)
}
