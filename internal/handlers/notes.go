package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/middleware"
	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

type NotesHandler struct {
	notes        *services.NoteSubmissionWorkflow
	maxFileBytes int64
}

func NewNotesHandler(notes *services.NoteSubmissionWorkflow, maxFileBytes int64) *NotesHandler {
	return &NotesHandler{notes: notes, maxFileBytes: maxFileBytes}
}

// CreateNote godoc
// @Summary     Add note
// @Description Adds a note to the project's daily log with up to two photos or one video.
// @Description The note is created before files upload; failed files are listed in upload_results
// @Description and can be retried without re-creating the note.
// @Tags        notes
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       project_id path     string true  "Project ID (UUID)"
// @Param       comment    formData string true  "Note text"
// @Param       title      formData string false "Title"
// @Param       todo_id    formData string false "Linked to-do (UUID)"
// @Param       files      formData file   false "Evidence (up to 2 photos or 1 video)"
// @Success     201 {object} models.NoteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Router      /projects/{project_id}/notes [post]
func (h *NotesHandler) CreateNote(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}

	files, ok := readEvidence(c, h.maxFileBytes)
	if !ok {
		return
	}

	todoID, err := optionalUUID(formValue(c, "todo_id"))
	if err != nil {
		badRequest(c, "invalid todo id", err.Error())
		return
	}

	result, err := h.notes.Submit(c.Request.Context(), services.NoteSubmission{
		ProjectID:   projectID,
		TodoID:      todoID,
		Title:       formValue(c, "title"),
		Comment:     formValue(c, "comment"),
		Files:       files,
		SubmittedBy: middleware.UserID(c),
	})
	if err != nil {
		respondError(c, err, "create note")
		return
	}

	uploaded, failed := services.CountUploads(result.Uploads)
	c.JSON(http.StatusCreated, models.NoteResponse{
		LogID:         result.Entry.ID.String(),
		Uploaded:      uploaded,
		Failed:        failed,
		UploadResults: uploadResultResponses(result.Uploads),
	})
}

// RetryNoteMedia godoc
// @Summary     Retry note uploads
// @Description Uploads more evidence to an existing note. Media already attached count towards the limit.
// @Tags        notes
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       project_id path     string true "Project ID (UUID)"
// @Param       log_id     path     string true "Note ID (UUID)"
// @Param       files      formData file   true "Evidence"
// @Success     201 {object} models.UploadRetryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/notes/{log_id}/media [post]
func (h *NotesHandler) RetryNoteMedia(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}
	logID, ok := uuidParam(c, "log_id")
	if !ok {
		return
	}

	files, ok := readEvidence(c, h.maxFileBytes)
	if !ok {
		return
	}
	if len(files) == 0 {
		badRequest(c, "no files", "at least one file is required")
		return
	}

	results, err := h.notes.RetryUploads(c.Request.Context(), projectID, logID, files)
	if err != nil {
		respondError(c, err, "upload note media")
		return
	}

	uploaded, failed := services.CountUploads(results)
	c.JSON(http.StatusCreated, models.UploadRetryResponse{
		Uploaded:      uploaded,
		Failed:        failed,
		UploadResults: uploadResultResponses(results),
	})
}
