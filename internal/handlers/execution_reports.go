package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/middleware"
	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

type ExecutionReportsHandler struct {
	reports      *services.ExecutionReportWorkflow
	maxFileBytes int64
}

func NewExecutionReportsHandler(reports *services.ExecutionReportWorkflow, maxFileBytes int64) *ExecutionReportsHandler {
	return &ExecutionReportsHandler{reports: reports, maxFileBytes: maxFileBytes}
}

// SubmitReport godoc
// @Summary     Submit execution report
// @Description Records whether a to-do was executed today. A reason is required unless the status is
// @Description executed, and the reason "Other" requires a detail. Resubmitting replaces the previous
// @Description report for the to-do.
// @Tags        execution-reports
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       todo_id   path     string true  "To-do ID (UUID)"
// @Param       status    formData string true  "Execution status" Enums(executed, partial, not_executed)
// @Param       reason_id formData string false "Reason (UUID), required unless executed"
// @Param       detail    formData string false "Detail, required for the reason Other"
// @Param       files     formData file   false "Evidence (up to 2 photos or 1 video)"
// @Success     201 {object} models.ExecutionReportResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Router      /todos/{todo_id}/execution-report [post]
func (h *ExecutionReportsHandler) SubmitReport(c *gin.Context) {
	todoID, ok := uuidParam(c, "todo_id")
	if !ok {
		return
	}

	files, ok := readEvidence(c, h.maxFileBytes)
	if !ok {
		return
	}

	status := formValue(c, "status")
	reasonID, err := optionalUUID(formValue(c, "reason_id"))
	if err != nil && models.ValidExecStatus(status) && status != models.ExecStatusExecuted {
		// An unparseable reason can never name an active one.
		respondError(c, services.ErrInvalidReason, "submit execution report")
		return
	}

	result, err := h.reports.Submit(c.Request.Context(), services.ReportSubmission{
		TodoID:      todoID,
		Status:      status,
		ReasonID:    reasonID,
		Detail:      formValue(c, "detail"),
		Files:       files,
		SubmittedBy: middleware.UserID(c),
	})
	if err != nil {
		respondError(c, err, "submit execution report")
		return
	}

	c.JSON(http.StatusCreated, executionReportResponse(result.Report, result.Uploads))
}

// RetryReportMedia godoc
// @Summary     Retry report uploads
// @Description Uploads evidence for a to-do that already has an execution report.
// @Tags        execution-reports
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       todo_id path     string true "To-do ID (UUID)"
// @Param       files   formData file   true "Evidence"
// @Success     201 {object} models.UploadRetryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /todos/{todo_id}/execution-report/media [post]
func (h *ExecutionReportsHandler) RetryReportMedia(c *gin.Context) {
	todoID, ok := uuidParam(c, "todo_id")
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

	results, err := h.reports.RetryUploads(c.Request.Context(), todoID, files)
	if err != nil {
		respondError(c, err, "upload report media")
		return
	}

	uploaded, failed := services.CountUploads(results)
	c.JSON(http.StatusCreated, models.UploadRetryResponse{
		Uploaded:      uploaded,
		Failed:        failed,
		UploadResults: uploadResultResponses(results),
	})
}

// ReviewReport godoc
// @Summary     Review execution report
// @Tags        execution-reports
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       report_id path string               true "Report ID (UUID)"
// @Param       request   body models.ReviewRequest true "Decision"
// @Success     200 {object} models.ExecutionReportResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /execution-reports/{report_id}/review [patch]
func (h *ExecutionReportsHandler) ReviewReport(c *gin.Context) {
	reportID, ok := uuidParam(c, "report_id")
	if !ok {
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	report, err := h.reports.Review(c.Request.Context(), reportID, req.Status, req.Comment, middleware.UserID(c))
	if err != nil {
		respondError(c, err, "review execution report")
		return
	}

	c.JSON(http.StatusOK, executionReportResponse(report, nil))
}
