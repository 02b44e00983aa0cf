package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

// respondError maps service and data-layer errors onto HTTP statuses.
// action completes "failed to ..." for unexpected errors.
func respondError(c *gin.Context, err error, action string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: verr.Code, Message: verr.Message})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: err.Error()})
	case errors.Is(err, services.ErrFeedUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "feed unavailable", Message: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to " + action, Message: err.Error()})
	}
}

func badRequest(c *gin.Context, errMsg, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errMsg, Message: message})
}

// uuidParam parses a UUID path parameter, answering 400 when it is invalid.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+strings.ReplaceAll(name, "_", " "), err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID parses an optional UUID value; empty means unset.
func optionalUUID(value string) (uuid.NullUUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func nullUUIDString(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}

func projectResponse(p models.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Status:      p.Status,
		ExternalRef: p.ExternalRef.String,
		CreatedAt:   p.CreatedAt,
	}
}

func todoResponse(t models.Todo) models.TodoResponse {
	return models.TodoResponse{
		ID:         t.ID.String(),
		ProjectID:  t.ProjectID.String(),
		Title:      t.Title,
		Notes:      t.Notes.String,
		Status:     t.Status,
		Priority:   t.Priority,
		DueDate:    t.DueDate,
		AssignedTo: nullUUIDString(t.AssignedTo),
		CreatedAt:  t.CreatedAt,
	}
}

func feedItemResponse(item models.FeedItem, loc *time.Location) models.FeedItemResponse {
	return models.FeedItemResponse{
		Kind:          item.Kind,
		EntryID:       item.EntryID.String(),
		TodoID:        nullUUIDString(item.TodoID),
		EntryDate:     item.EntryDate.In(loc),
		Title:         item.Title.String,
		Body:          item.Body.String,
		CreatedBy:     nullUUIDString(item.CreatedBy),
		TodoTitle:     item.TodoTitle.String,
		Status:        item.Status.String,
		StatusBadge:   item.StatusBadge(),
		Detail:        item.Detail.String,
		ReasonLabel:   item.ReasonLabel.String,
		ReviewStatus:  item.ReviewStatus.String,
		ReviewComment: item.ReviewComment.String,
		MediaCount:    item.MediaCount,
	}
}

func feedItemResponses(items []models.FeedItem, loc *time.Location) []models.FeedItemResponse {
	out := make([]models.FeedItemResponse, len(items))
	for i, item := range items {
		out[i] = feedItemResponse(item, loc)
	}
	return out
}

func todoStatusResponses(statuses []models.TodoStatus) []models.TodoStatusResponse {
	out := make([]models.TodoStatusResponse, len(statuses))
	for i, s := range statuses {
		out[i] = models.TodoStatusResponse{
			TodoID:       s.TodoID.String(),
			TodoTitle:    s.TodoTitle,
			DueDate:      s.DueDate,
			Reported:     s.Reported(),
			ReportID:     nullUUIDString(s.ReportID),
			ExecStatus:   s.ExecStatus,
			ExecDetail:   s.ExecDetail,
			ReasonLabel:  s.ReasonLabel,
			ReviewStatus: s.ReviewStatus,
			MediaCount:   s.MediaCount,
		}
	}
	return out
}

func daySummaryResponse(day models.DaySummary, loc *time.Location) models.DaySummaryResponse {
	return models.DaySummaryResponse{
		Date:           day.Date.String(),
		MissingReports: day.MissingReportCount,
		Notes:          feedItemResponses(day.Notes, loc),
		Uncompleted:    todoStatusResponses(day.UncompletedTodos),
		Completed:      todoStatusResponses(day.CompletedTodos),
	}
}

func uploadResultResponses(results []services.EvidenceResult) []models.UploadResultResponse {
	out := make([]models.UploadResultResponse, len(results))
	for i, r := range results {
		resp := models.UploadResultResponse{
			Index:    r.Index,
			Filename: r.Filename,
			Success:  r.Succeeded(),
			URL:      r.URL,
		}
		if r.Media != nil {
			resp.MediaID = r.Media.ID.String()
		}
		if r.Err != nil {
			resp.Error = r.Err.Error()
			var uerr *services.UploadError
			if errors.As(r.Err, &uerr) {
				resp.Kind = uerr.Kind
			}
		}
		out[i] = resp
	}
	return out
}

func executionReportResponse(report *models.ExecutionReport, uploads []services.EvidenceResult) models.ExecutionReportResponse {
	uploaded, failed := services.CountUploads(uploads)
	return models.ExecutionReportResponse{
		ID:            report.ID.String(),
		TodoID:        report.TodoID.String(),
		Status:        report.Status,
		ReasonID:      nullUUIDString(report.ReasonID),
		Detail:        report.Detail.String,
		CreatedAt:     report.CreatedAt,
		ReviewStatus:  report.ReviewStatus,
		ReviewComment: report.ReviewComment.String,
		Uploaded:      uploaded,
		Failed:        failed,
		UploadResults: uploadResultResponses(uploads),
	}
}
