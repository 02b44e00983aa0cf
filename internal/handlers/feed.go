package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitelog-backend/internal/models"
	"sitelog-backend/internal/services"
)

type FeedHandler struct {
	feed       *services.FeedRepository
	aggregator *services.DailyAggregator
	pageSize   int
}

func NewFeedHandler(feed *services.FeedRepository, aggregator *services.DailyAggregator, pageSize int) *FeedHandler {
	return &FeedHandler{feed: feed, aggregator: aggregator, pageSize: pageSize}
}

// dateRange reads from/to query parameters. Both default to today; a lone
// from runs to today and a lone to covers just that day.
func (h *FeedHandler) dateRange(c *gin.Context) (services.DateRange, bool) {
	today := h.feed.Today()
	rng := services.DateRange{From: today, To: today}

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if toRaw != "" {
		to, err := models.ParseDate(toRaw)
		if err != nil {
			badRequest(c, "invalid to", err.Error())
			return rng, false
		}
		rng.From, rng.To = to, to
	}
	if fromRaw != "" {
		from, err := models.ParseDate(fromRaw)
		if err != nil {
			badRequest(c, "invalid from", err.Error())
			return rng, false
		}
		rng.From = from
	}

	if err := rng.Validate(); err != nil {
		respondError(c, err, "read date range")
		return rng, false
	}
	return rng, true
}

// ListFeed godoc
// @Summary     Project feed
// @Description Notes and execution reports for a project, newest first. Search matches title, body or
// @Description to-do title; author and kind match exactly. Pagination applies after filtering.
// @Tags        feed
// @Produce     json
// @Security    Bearer
// @Param       project_id path  string true  "Project ID (UUID)"
// @Param       from       query string false "First day (YYYY-MM-DD), default today"
// @Param       to         query string false "Last day (YYYY-MM-DD), default today"
// @Param       q          query string false "Free-text search"
// @Param       author     query string false "Author user ID (UUID)"
// @Param       kind       query string false "Entry kind" Enums(note, execution_report)
// @Param       limit      query int    false "Page size"
// @Param       offset     query int    false "Items to skip"
// @Success     200 {object} models.FeedResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /projects/{project_id}/feed [get]
func (h *FeedHandler) ListFeed(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}

	author, err := optionalUUID(c.Query("author"))
	if err != nil {
		badRequest(c, "invalid author", err.Error())
		return
	}

	kind := c.Query("kind")
	if kind != "" && kind != models.KindNote && kind != models.KindExecutionReport {
		badRequest(c, "invalid kind", "kind must be note or execution_report")
		return
	}

	page := services.FeedPage{Limit: h.pageSize}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			badRequest(c, "invalid limit", "limit must be a positive integer")
			return
		}
		page.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			badRequest(c, "invalid offset", "offset must be a non-negative integer")
			return
		}
		page.Offset = offset
	}

	filter := services.FeedFilter{Search: c.Query("q"), Author: author, Kind: kind}
	items, hasMore, err := h.feed.ListFeedPage(c.Request.Context(), projectID, rng, filter, page)
	if err != nil {
		respondError(c, err, "list feed")
		return
	}

	c.JSON(http.StatusOK, models.FeedResponse{
		Items:   feedItemResponses(items, h.feed.Location()),
		HasMore: hasMore,
	})
}

// ListEntryMedia godoc
// @Summary     Feed entry media
// @Description Evidence attached to a note or execution report, with public URLs.
// @Tags        feed
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       kind       path string true "Entry kind" Enums(note, execution_report)
// @Param       entry_id   path string true "Entry ID (UUID)"
// @Success     200 {object} models.MediaListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/feed/{kind}/{entry_id}/media [get]
func (h *FeedHandler) ListEntryMedia(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "entry_id")
	if !ok {
		return
	}

	media, err := h.feed.ListMedia(c.Request.Context(), projectID, c.Param("kind"), entryID)
	if err != nil {
		respondError(c, err, "list media")
		return
	}

	response := models.MediaListResponse{Media: make([]models.MediaResponse, len(media))}
	for i, m := range media {
		response.Media[i] = models.MediaResponse{
			ID:        m.Item.ID.String(),
			Type:      m.Item.Type,
			Path:      m.Item.URL,
			URL:       m.URL,
			CreatedAt: m.Item.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

// ListDays godoc
// @Summary     Daily summaries
// @Description Groups the feed by calendar day with completed and uncompleted to-dos and the
// @Description number of due to-dos without a report that day. Empty days are omitted.
// @Tags        days
// @Produce     json
// @Security    Bearer
// @Param       project_id path  string true  "Project ID (UUID)"
// @Param       from       query string false "First day (YYYY-MM-DD), default today"
// @Param       to         query string false "Last day (YYYY-MM-DD), default today"
// @Param       mode       query string false "feed: newest day first, document: oldest first" Enums(feed, document)
// @Success     200 {object} models.DaysResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /projects/{project_id}/days [get]
func (h *FeedHandler) ListDays(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}

	mode := c.DefaultQuery("mode", services.ModeFeed)
	if !services.ValidMode(mode) {
		badRequest(c, "invalid mode", "mode must be feed or document")
		return
	}

	days, err := h.aggregator.Aggregate(c.Request.Context(), projectID, rng, mode)
	if err != nil {
		respondError(c, err, "aggregate days")
		return
	}

	response := models.DaysResponse{Days: make([]models.DaySummaryResponse, len(days))}
	for i, day := range days {
		response.Days[i] = daySummaryResponse(day, h.feed.Location())
	}
	c.JSON(http.StatusOK, response)
}

// GetDay godoc
// @Summary     Single day summary
// @Description The document view of one day. Returned even when the day is empty.
// @Tags        days
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       date       path string true "Day (YYYY-MM-DD)"
// @Success     200 {object} models.DaySummaryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /projects/{project_id}/days/{date} [get]
func (h *FeedHandler) GetDay(c *gin.Context) {
	projectID, ok := uuidParam(c, "project_id")
	if !ok {
		return
	}
	day, err := models.ParseDate(c.Param("date"))
	if err != nil {
		badRequest(c, "invalid date", err.Error())
		return
	}

	summary, err := h.aggregator.AggregateDay(c.Request.Context(), projectID, day)
	if err != nil {
		respondError(c, err, "aggregate day")
		return
	}
	c.JSON(http.StatusOK, daySummaryResponse(summary, h.feed.Location()))
}
