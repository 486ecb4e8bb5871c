package pool

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/ledger"
	"flowledger/pkg/response"
)

type PoolHandler struct {
	service PoolService
}

func NewPoolHandler(service PoolService) *PoolHandler {
	return &PoolHandler{service: service}
}

func (h *PoolHandler) RegisterRoutes(router *gin.Engine, adminOnly gin.HandlerFunc) {
	router.GET("/pool", h.getPoolStats)
	router.POST("/pool/deposits", adminOnly, h.deposit)
	router.POST("/pool/releases", adminOnly, h.release)
}

type amountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

func sendPoolError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, ledger.ErrInsufficientPoolBalance):
		response.SendAPIResponse(c, http.StatusConflict, false, err.Error(), nil)
	default:
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
	}
}

// @Summary      Get pool stats
// @Description  Escrow balance, deposited and released totals
// @Tags         pool
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=ledger.PoolStats} "Pool stats"
// @Router       /pool [get]
func (h *PoolHandler) getPoolStats(c *gin.Context) {
	response.SendAPIResponse(c, http.StatusOK, true, "pool stats fetched", h.service.GetPoolStats(c.Request.Context()))
}

// @Summary      Deposit liquidity
// @Tags         pool
// @Accept       json
// @Produce      json
// @Param        request body amountRequest true "Deposit amount"
// @Success      200  {object}  response.APIResponse{data=ledger.PoolStats} "Deposit recorded"
// @Failure      400  {object}  response.APIResponse "Invalid amount"
// @Router       /pool/deposits [post]
func (h *PoolHandler) deposit(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	stats, err := h.service.Deposit(c.Request.Context(), req.Amount)
	if err != nil {
		sendPoolError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "deposit recorded", stats)
}

// @Summary      Release liquidity
// @Description  Operator withdrawal from the pool balance
// @Tags         pool
// @Accept       json
// @Produce      json
// @Param        request body amountRequest true "Release amount"
// @Success      200  {object}  response.APIResponse{data=ledger.PoolStats} "Release recorded"
// @Failure      409  {object}  response.APIResponse "Insufficient pool balance"
// @Router       /pool/releases [post]
func (h *PoolHandler) release(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	stats, err := h.service.Release(c.Request.Context(), req.Amount)
	if err != nil {
		sendPoolError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "release recorded", stats)
}
