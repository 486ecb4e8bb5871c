package investments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/investors"
	"flowledger/pkg/ledger"
	"flowledger/pkg/response"
)

type InvestmentHandler struct {
	service InvestmentService
}

func NewInvestmentHandler(service InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

func (h *InvestmentHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/investments", h.recordInvestment)
	router.GET("/assets/:id/allocations/:investor", h.getAllocation)
}

type recordInvestmentRequest struct {
	AssetID  string `json:"asset_id" binding:"required"`
	Investor string `json:"investor" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

type allocationResult struct {
	AssetID  string `json:"asset_id"`
	Investor string `json:"investor"`
	Amount   int64  `json:"amount"`
}

// @Summary      Record an investment
// @Description  Accumulates a verified investor's allocation against an asset, capped at the asset's face amount
// @Tags         investments
// @Accept       json
// @Produce      json
// @Param        request body recordInvestmentRequest true "Investment request"
// @Success      201  {object}  response.APIResponse "Investment recorded"
// @Failure      403  {object}  response.APIResponse "Investor not verified"
// @Failure      404  {object}  response.APIResponse "Asset or investor not found"
// @Failure      409  {object}  response.APIResponse "Investment exceeds face amount"
// @Router       /investments [post]
func (h *InvestmentHandler) recordInvestment(c *gin.Context) {
	var req recordInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	err := h.service.RecordInvestment(c.Request.Context(), req.AssetID, req.Investor, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvestorNotVerified):
			response.SendAPIResponse(c, http.StatusForbidden, false, err.Error(), nil)
		case errors.Is(err, investors.ErrInvestorNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "investor not found", nil)
		case errors.Is(err, ledger.ErrAssetNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "asset not found", nil)
		case errors.Is(err, ledger.ErrOverInvestment):
			response.SendAPIResponse(c, http.StatusConflict, false, err.Error(), nil)
		case errors.Is(err, ledger.ErrInvalidAmount):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "investment recorded", nil)
}

// @Summary      Get investor allocation
// @Description  Cumulative amount an investor has recorded against an asset
// @Tags         investments
// @Produce      json
// @Param        id        path  string  true  "Asset ID"
// @Param        investor  path  string  true  "Investor UUID"
// @Success      200  {object}  response.APIResponse{data=allocationResult} "Allocation fetched"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Router       /assets/{id}/allocations/{investor} [get]
func (h *InvestmentHandler) getAllocation(c *gin.Context) {
	assetID := c.Param("id")
	investor := c.Param("investor")

	amount, err := h.service.GetAllocation(c.Request.Context(), assetID, investor)
	if err != nil {
		if errors.Is(err, ledger.ErrAssetNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "asset not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "allocation fetched", allocationResult{
		AssetID:  assetID,
		Investor: investor,
		Amount:   amount,
	})
}
