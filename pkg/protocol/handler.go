package protocol

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/ledger"
	"flowledger/pkg/response"
)

// ProtocolHandler serves the derived read-only aggregates and the
// consistency audit.
type ProtocolHandler struct {
	ledger *ledger.Ledger
}

func NewProtocolHandler(l *ledger.Ledger) *ProtocolHandler {
	return &ProtocolHandler{ledger: l}
}

func (h *ProtocolHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/protocol/stats", h.getStats)
	router.GET("/protocol/audit", h.audit)
}

// @Summary      Get protocol stats
// @Description  Total assets, total funded, total paid
// @Tags         protocol
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=ledger.ProtocolStats} "Protocol stats"
// @Router       /protocol/stats [get]
func (h *ProtocolHandler) getStats(c *gin.Context) {
	response.SendAPIResponse(c, http.StatusOK, true, "protocol stats fetched", h.ledger.GetProtocolStats())
}

// @Summary      Audit ledger consistency
// @Description  Recomputes every derived aggregate from primary records; a failure indicates a ledger bug
// @Tags         protocol
// @Produce      json
// @Success      200  {object}  response.APIResponse "Ledger consistent"
// @Failure      500  {object}  response.APIResponse "Inconsistency found"
// @Router       /protocol/audit [get]
func (h *ProtocolHandler) audit(c *gin.Context) {
	if err := h.ledger.Audit(); err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	response.SendAPIResponse(c, http.StatusOK, true, "ledger consistent", nil)
}
