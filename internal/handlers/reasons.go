package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/supabase"
)

type ReasonsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewReasonsHandler(dbClient *supabase.DatabaseClient) *ReasonsHandler {
	return &ReasonsHandler{dbClient: dbClient}
}

// ListReasons godoc
// @Summary     List reasons
// @Description Lists the active reasons a to-do was not fully executed. "Other" requires a detail.
// @Description Pass all=true to include retired reasons.
// @Tags        reasons
// @Produce     json
// @Security    Bearer
// @Param       all query    bool false "Include retired reasons"
// @Success     200 {object} models.ReasonListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /reasons [get]
func (h *ReasonsHandler) ListReasons(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	reasons, err := h.dbClient.ListReasons(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "list reasons")
		return
	}

	response := models.ReasonListResponse{Reasons: make([]models.ReasonResponse, len(reasons))}
	for i, r := range reasons {
		response.Reasons[i] = reasonResponse(r)
	}
	c.JSON(http.StatusOK, response)
}

// UpdateReason godoc
// @Summary     Retire or restore a reason
// @Description Retired reasons stay on the reports that cite them but are rejected on new submissions.
// @Tags        reasons
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       reason_id path string                     true "Reason ID (UUID)"
// @Param       request   body models.UpdateReasonRequest true "Active flag"
// @Success     200 {object} models.ReasonResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /reasons/{reason_id} [patch]
func (h *ReasonsHandler) UpdateReason(c *gin.Context) {
	reasonID, ok := uuidParam(c, "reason_id")
	if !ok {
		return
	}

	var req models.UpdateReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.dbClient.SetReasonActive(ctx, reasonID, *req.Active); err != nil {
		respondError(c, err, "update reason")
		return
	}

	reason, err := h.dbClient.GetReason(ctx, reasonID)
	if err != nil {
		respondError(c, err, "get reason")
		return
	}
	c.JSON(http.StatusOK, reasonResponse(*reason))
}

func reasonResponse(r models.Reason) models.ReasonResponse {
	return models.ReasonResponse{ID: r.ID.String(), Label: r.Label, Active: r.Active}
}
