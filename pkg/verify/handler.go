package verify

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowledger/pkg/investors"
	"flowledger/pkg/response"
)

type VerifyHandler struct {
	service VerifyService
}

func NewVerifyHandler(service VerifyService) *VerifyHandler {
	return &VerifyHandler{service: service}
}

func (h *VerifyHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/verification/request", h.requestCode)
	router.POST("/verification/confirm", h.confirmCode)
}

type requestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type confirmCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// @Summary      Request a verification code
// @Description  Emails a single-use code to a registered investor
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        request body requestCodeRequest true "Verification request"
// @Success      200  {object}  response.APIResponse "Code sent"
// @Failure      404  {object}  response.APIResponse "Investor not found"
// @Failure      429  {object}  response.APIResponse "Too many requests"
// @Router       /verification/request [post]
func (h *VerifyHandler) requestCode(c *gin.Context) {
	var req requestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if err := h.service.RequestCode(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, investors.ErrInvestorNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "investor not found", nil)
		case errors.Is(err, ErrTooManyRequests):
			response.SendAPIResponse(c, http.StatusTooManyRequests, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "verification code sent", nil)
}

// @Summary      Confirm a verification code
// @Description  Marks the investor verified when the code matches
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        request body confirmCodeRequest true "Confirmation request"
// @Success      200  {object}  response.APIResponse "Investor verified"
// @Failure      400  {object}  response.APIResponse "Invalid or expired code"
// @Router       /verification/confirm [post]
func (h *VerifyHandler) confirmCode(c *gin.Context) {
	var req confirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	if err := h.service.ConfirmCode(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, ErrCodeNotFound), errors.Is(err, ErrCodeExpired), errors.Is(err, ErrCodeMismatch):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "investor verified", nil)
}
