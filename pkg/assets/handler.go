package assets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/ledger"
	"flowledger/pkg/response"
)

type AssetHandler struct {
	service AssetService
}

func NewAssetHandler(service AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

func isValidAssetType(assetType string) bool {
	switch ledger.AssetType(assetType) {
	case ledger.AssetTypeInvoice, ledger.AssetTypeSaaS, ledger.AssetTypeCreator, ledger.AssetTypeRental, ledger.AssetTypeLuxury:
		return true
	default:
		return false
	}
}

// RegisterRoutes mounts the asset lifecycle. Funding and payment
// confirmation move pool money, so they sit behind the admin gate.
func (h *AssetHandler) RegisterRoutes(router *gin.Engine, adminOnly gin.HandlerFunc) {
	router.POST("/assets", h.createAsset)
	router.GET("/assets", h.listAssets)
	router.GET("/assets/:id", h.getAsset)
	router.PATCH("/assets/:id/risk-score", h.updateRiskScore)
	router.PATCH("/assets/:id/basket", h.reassignBasket)
	router.POST("/assets/:id/fund", adminOnly, h.markFunded)
	router.POST("/assets/:id/payments", adminOnly, h.confirmPayment)
}

type createAssetRequest struct {
	AssetID      string `json:"asset_id" binding:"required"`
	Originator   string `json:"originator" binding:"required"`
	FaceAmount   int64  `json:"face_amount" binding:"required"`
	Unlockable   int64  `json:"unlockable"`
	RiskScore    int    `json:"risk_score"`
	BasketID     string `json:"basket_id" binding:"required"`
	AssetType    string `json:"asset_type" binding:"required"`
	DocumentHash string `json:"document_hash"`
}

type fundAssetRequest struct {
	UnlockAmount int64 `json:"unlock_amount" binding:"required"`
}

type confirmPaymentRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type riskScoreRequest struct {
	RiskScore *int `json:"risk_score" binding:"required"`
}

type reassignBasketRequest struct {
	BasketID string `json:"basket_id" binding:"required"`
}

// paymentResult pairs the post-payment asset snapshot with the
// distribution the host must settle.
type paymentResult struct {
	Asset        ledger.Asset   `json:"asset"`
	Distribution []ledger.Share `json:"distribution"`
}

// sendLedgerError maps core error kinds onto HTTP statuses: missing
// records to 404, state-machine and capacity conflicts to 409, bad
// input to 400.
func sendLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrAssetNotFound):
		response.SendAPIResponse(c, http.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, ledger.ErrDuplicateAsset),
		errors.Is(err, ledger.ErrAlreadyFunded),
		errors.Is(err, ledger.ErrAlreadyPaid),
		errors.Is(err, ledger.ErrAssetNotFunded),
		errors.Is(err, ledger.ErrOverInvestment),
		errors.Is(err, ledger.ErrInsufficientPoolBalance):
		response.SendAPIResponse(c, http.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidRiskScore),
		errors.Is(err, ledger.ErrInvalidAssetType):
		response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
	default:
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
	}
}

// @Summary      Create a new asset
// @Description  Tokenizes a future cash flow into an asset and enrolls it in its basket
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body createAssetRequest true "Asset creation request"
// @Success      201  {object}  response.APIResponse{data=ledger.Asset} "Asset created"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      409  {object}  response.APIResponse "Duplicate asset id"
// @Router       /assets [post]
func (h *AssetHandler) createAsset(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if !isValidAssetType(req.AssetType) {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid asset_type", nil)
		return
	}

	asset, err := h.service.CreateAsset(c.Request.Context(), ledger.CreateAssetInput{
		AssetID:      req.AssetID,
		Originator:   req.Originator,
		FaceAmount:   req.FaceAmount,
		Unlockable:   req.Unlockable,
		RiskScore:    req.RiskScore,
		BasketID:     req.BasketID,
		AssetType:    ledger.AssetType(req.AssetType),
		DocumentHash: req.DocumentHash,
	})
	if err != nil {
		sendLedgerError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "asset created", asset)
}

// @Summary      Fund an asset
// @Description  Releases the unlock amount from the pool and marks the asset funded
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path  string            true  "Asset ID"
// @Param        request body  fundAssetRequest  true  "Funding request"
// @Success      200  {object}  response.APIResponse{data=ledger.Asset} "Asset funded"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Failure      409  {object}  response.APIResponse "Already funded or insufficient pool balance"
// @Router       /assets/{id}/fund [post]
func (h *AssetHandler) markFunded(c *gin.Context) {
	var req fundAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	asset, err := h.service.MarkFunded(c.Request.Context(), c.Param("id"), req.UnlockAmount)
	if err != nil {
		sendLedgerError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "asset funded", asset)
}

// @Summary      Confirm a repayment
// @Description  Records a repayment against a funded asset and returns the investor distribution for settlement
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path  string                 true  "Asset ID"
// @Param        request body  confirmPaymentRequest  true  "Payment confirmation"
// @Success      200  {object}  response.APIResponse{data=paymentResult} "Payment confirmed"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Failure      409  {object}  response.APIResponse "Asset not funded or already paid"
// @Router       /assets/{id}/payments [post]
func (h *AssetHandler) confirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	asset, shares, err := h.service.ConfirmPayment(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		sendLedgerError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "payment confirmed", paymentResult{Asset: asset, Distribution: shares})
}

// @Summary      Update risk score
// @Description  Replaces the asset's risk score with a fresh oracle result
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path  string            true  "Asset ID"
// @Param        request body  riskScoreRequest  true  "New risk score"
// @Success      200  {object}  response.APIResponse{data=ledger.Asset} "Risk score updated"
// @Failure      400  {object}  response.APIResponse "Score out of range"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Router       /assets/{id}/risk-score [patch]
func (h *AssetHandler) updateRiskScore(c *gin.Context) {
	var req riskScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RiskScore == nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	asset, err := h.service.UpdateRiskScore(c.Request.Context(), c.Param("id"), *req.RiskScore)
	if err != nil {
		sendLedgerError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "risk score updated", asset)
}

// @Summary      Reassign basket
// @Description  Moves an unfunded asset into a different basket
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id      path  string                 true  "Asset ID"
// @Param        request body  reassignBasketRequest  true  "Target basket"
// @Success      200  {object}  response.APIResponse{data=ledger.Asset} "Basket updated"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Failure      409  {object}  response.APIResponse "Asset already funded"
// @Router       /assets/{id}/basket [patch]
func (h *AssetHandler) reassignBasket(c *gin.Context) {
	var req reassignBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	asset, err := h.service.ReassignBasket(c.Request.Context(), c.Param("id"), req.BasketID)
	if err != nil {
		sendLedgerError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "basket updated", asset)
}

// @Summary      Get asset by ID
// @Tags         assets
// @Produce      json
// @Param        id   path      string  true  "Asset ID"
// @Success      200  {object}  response.APIResponse{data=ledger.Asset} "Asset fetched"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Router       /assets/{id} [get]
func (h *AssetHandler) getAsset(c *gin.Context) {
	asset, err := h.service.GetAssetInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		sendLedgerError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "asset fetched", asset)
}

// @Summary      List all assets
// @Description  Snapshot of every asset in creation order
// @Tags         assets
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=[]ledger.Asset} "Assets listed"
// @Router       /assets [get]
func (h *AssetHandler) listAssets(c *gin.Context) {
	response.SendAPIResponse(c, http.StatusOK, true, "assets listed", h.service.ListAssets(c.Request.Context()))
}
