package journal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/response"
)

type JournalHandler struct {
	store EventStore
}

func NewJournalHandler(store EventStore) *JournalHandler {
	return &JournalHandler{store: store}
}

func (h *JournalHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/events", h.listEvents)
}

// @Summary      List ledger events
// @Description  Persisted event journal; pass asset_id to filter, limit to page
// @Tags         events
// @Produce      json
// @Param        asset_id  query  string  false  "Filter by asset"
// @Param        limit     query  int     false  "Max events to return (default 50, cap 200)"
// @Success      200  {object}  response.APIResponse{data=[]journal.StoredEvent} "Events fetched"
// @Failure      500  {object}  response.APIResponse "Query failed"
// @Router       /events [get]
func (h *JournalHandler) listEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	var (
		events []StoredEvent
		err    error
	)
	if assetID := c.Query("asset_id"); assetID != "" {
		events, err = h.store.ListEventsByAsset(c.Request.Context(), assetID, limit)
	} else {
		events, err = h.store.ListRecentEvents(c.Request.Context(), limit)
	}
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to fetch events", nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "events fetched", events)
}
