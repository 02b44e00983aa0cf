package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/middleware"
	"sitelog-backend/internal/models"
	"sitelog-backend/internal/supabase"
)

type TodosHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewTodosHandler(dbClient *supabase.DatabaseClient) *TodosHandler {
	return &TodosHandler{dbClient: dbClient}
}

// CreateTodo godoc
// @Summary     Create to-do
// @Tags        todos
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       request body models.CreateTodoRequest true "To-do"
// @Success     201 {object} models.TodoResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/todos [post]
func (h *TodosHandler) CreateTodo(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}

	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	switch req.Status {
	case "", models.TodoStatusIncomplete, models.TodoStatusInProgress, models.TodoStatusComplete:
	default:
		badRequest(c, "invalid status", "status must be incomplete, in_progress or complete")
		return
	}

	var assignee string
	if req.AssignedTo != nil {
		assignee = *req.AssignedTo
	}
	assignedTo, err := optionalUUID(assignee)
	if err != nil {
		badRequest(c, "invalid assigned_to", err.Error())
		return
	}

	if _, err := h.dbClient.GetProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, "get project")
		return
	}

	notes := strings.TrimSpace(req.Notes)
	todo := &models.Todo{
		ProjectID:  projectID,
		Title:      strings.TrimSpace(req.Title),
		Notes:      sql.NullString{String: notes, Valid: notes != ""},
		Status:     req.Status,
		Priority:   req.Priority,
		DueDate:    req.DueDate,
		AssignedTo: assignedTo,
		CreatedBy:  middleware.UserID(c),
	}
	if todo.Title == "" {
		badRequest(c, "invalid request body", "title must not be empty")
		return
	}

	if err := h.dbClient.CreateTodo(c.Request.Context(), todo); err != nil {
		respondError(c, err, "create todo")
		return
	}
	c.JSON(http.StatusCreated, todoResponse(*todo))
}

// ListTodos godoc
// @Summary     List to-dos
// @Tags        todos
// @Produce     json
// @Security    Bearer
// @Param       project_id  path  string true  "Project ID (UUID)"
// @Param       status      query string false "Status" Enums(incomplete, in_progress, complete)
// @Param       priority    query string false "Priority"
// @Param       assigned_to query string false "Assignee (UUID)"
// @Param       due_date    query string false "Due date (YYYY-MM-DD)"
// @Success     200 {object} models.TodoListResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /projects/{project_id}/todos [get]
func (h *TodosHandler) ListTodos(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}

	filter := supabase.TodoFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	assignedTo, err := optionalUUID(c.Query("assigned_to"))
	if err != nil {
		badRequest(c, "invalid assigned_to", err.Error())
		return
	}
	filter.AssignedTo = assignedTo

	if raw := c.Query("due_date"); raw != "" {
		due, err := models.ParseDate(raw)
		if err != nil {
			badRequest(c, "invalid due_date", err.Error())
			return
		}
		filter.DueDate = &due
	}

	todos, err := h.dbClient.ListTodos(c.Request.Context(), projectID, filter)
	if err != nil {
		respondError(c, err, "list todos")
		return
	}

	response := models.TodoListResponse{Todos: make([]models.TodoResponse, len(todos))}
	for i, t := range todos {
		response.Todos[i] = todoResponse(t)
	}
	c.JSON(http.StatusOK, response)
}
