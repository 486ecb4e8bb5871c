package investors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/response"
)

type InvestorHandler struct {
	service InvestorService
}

func NewInvestorHandler(service InvestorService) *InvestorHandler {
	return &InvestorHandler{service: service}
}

func (h *InvestorHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/investors", h.register)
	router.GET("/investors/:uuid", h.getInvestor)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register an investor
// @Description  Creates an unverified investor principal
// @Tags         investors
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Registration request"
// @Success      201  {object}  response.APIResponse{data=Investor} "Investor registered"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      409  {object}  response.APIResponse "Email already registered"
// @Router       /investors [post]
func (h *InvestorHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	inv, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.SendAPIResponse(c, http.StatusConflict, false, "email already registered", nil)
		case errors.Is(err, ErrInvalidPassword):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "investor registered", inv)
}

// @Summary      Get investor by UUID
// @Tags         investors
// @Produce      json
// @Param        uuid  path      string  true  "Investor UUID"
// @Success      200  {object}  response.APIResponse{data=Investor} "Investor fetched"
// @Failure      404  {object}  response.APIResponse "Investor not found"
// @Router       /investors/{uuid} [get]
func (h *InvestorHandler) getInvestor(c *gin.Context) {
	inv, err := h.service.GetInvestor(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, ErrInvestorNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "investor not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "investor fetched", inv)
}
