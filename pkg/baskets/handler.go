package baskets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/response"
)

type BasketHandler struct {
	service BasketService
}

func NewBasketHandler(service BasketService) *BasketHandler {
	return &BasketHandler{service: service}
}

func (h *BasketHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/baskets/:id", h.getBasketStats)
	router.GET("/baskets/:id/assets", h.getBasketAssets)
}

// @Summary      Get basket stats
// @Description  Aggregate totals for a basket; unknown baskets read as zeros
// @Tags         baskets
// @Produce      json
// @Param        id   path      string  true  "Basket ID"
// @Success      200  {object}  response.APIResponse{data=ledger.BasketStats} "Basket stats"
// @Router       /baskets/{id} [get]
func (h *BasketHandler) getBasketStats(c *gin.Context) {
	stats := h.service.GetBasketStats(c.Request.Context(), c.Param("id"))
	response.SendAPIResponse(c, http.StatusOK, true, "basket stats fetched", stats)
}

// @Summary      List basket assets
// @Description  Member asset ids in insertion order
// @Tags         baskets
// @Produce      json
// @Param        id   path      string  true  "Basket ID"
// @Success      200  {object}  response.APIResponse{data=[]string} "Basket assets"
// @Router       /baskets/{id}/assets [get]
func (h *BasketHandler) getBasketAssets(c *gin.Context) {
	ids := h.service.GetBasketAssets(c.Request.Context(), c.Param("id"))
	response.SendAPIResponse(c, http.StatusOK, true, "basket assets listed", ids)
}
