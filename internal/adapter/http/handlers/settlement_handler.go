package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/request"
	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettlementHandler exposes the completion receipt and the post-close review.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

func (h *SettlementHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.usecase.GetReceipt(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(receipt))
}

// CreateReview records the rider's rating after the order closes.
//
// @Summary  Review a closed work order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "work order id"
// @Param    payload body request.ReviewRequest true "review"
// @Success  201 {object} response.ReviewResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/review [post]
func (h *SettlementHandler) CreateReview(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "INVALID_REVIEW_PAYLOAD", "Invalid review payload")
		return
	}

	review, err := h.usecase.CreateReview(c.Request.Context(), middleware.CallerID(c), c.Param("id"), payload.Rating, payload.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReview(review))
}
