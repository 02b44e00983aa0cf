package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitelog-backend/internal/config"
	"sitelog-backend/internal/middleware"
	"sitelog-backend/internal/services"
	"sitelog-backend/internal/supabase"
)

type RouterDeps struct {
	Config     *config.Config
	Logger     *zap.Logger
	DB         *supabase.DatabaseClient
	Feed       *services.FeedRepository
	Aggregator *services.DailyAggregator
	Notes      *services.NoteSubmissionWorkflow
	Reports    *services.ExecutionReportWorkflow
}

// NewRouter registers the health check and the /api/v1 routes.
func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(d.Logger))
	router.Use(gin.Recovery())

	healthHandler := NewHealthHandler(d.DB)
	projectsHandler := NewProjectsHandler(d.DB)
	todosHandler := NewTodosHandler(d.DB)
	reasonsHandler := NewReasonsHandler(d.DB)
	feedHandler := NewFeedHandler(d.Feed, d.Aggregator, d.Config.FeedPageSize)
	notesHandler := NewNotesHandler(d.Notes, d.Config.MaxUploadBytes)
	reportsHandler := NewExecutionReportsHandler(d.Reports, d.Config.MaxUploadBytes)

	// Health check (no identity)
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api/v1")
	api.Use(middleware.IdentityMiddleware(d.Config))

	// Projects and to-dos
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PATCH("/projects/:project_id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)
	api.POST("/projects/:project_id/todos", todosHandler.CreateTodo)
	api.GET("/projects/:project_id/todos", todosHandler.ListTodos)
	api.GET("/reasons", reasonsHandler.ListReasons)
	api.PATCH("/reasons/:reason_id", reasonsHandler.UpdateReason)

	// Feed and daily summaries
	api.GET("/projects/:project_id/feed", feedHandler.ListFeed)
	api.GET("/projects/:project_id/feed/:kind/:entry_id/media", feedHandler.ListEntryMedia)
	api.GET("/projects/:project_id/days", feedHandler.ListDays)
	api.GET("/projects/:project_id/days/:date", feedHandler.GetDay)

	// Notes
	api.POST("/projects/:project_id/notes", notesHandler.CreateNote)
	api.POST("/projects/:project_id/notes/:log_id/media", notesHandler.RetryNoteMedia)

	// Execution reports
	api.POST("/todos/:todo_id/execution-report", reportsHandler.SubmitReport)
	api.POST("/todos/:todo_id/execution-report/media", reportsHandler.RetryReportMedia)
	api.PATCH("/execution-reports/:report_id/review", reportsHandler.ReviewReport)

	return router
}
