package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/request"
	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler exposes the quote protocol: workshop submissions and rider
// decisions (accept, reject, counter-offer).

type QuoteHandler struct {
	usecase    usecase.IQuoteUseCase
	settlement usecase.ISettlementUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, settlement usecase.ISettlementUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, settlement: settlement}
}

// Submit creates a quote against a published request on behalf of the
// caller's workshop.
//
// @Summary  Submit a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.SubmitQuoteRequest true "quote"
// @Success  201 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "INVALID_QUOTE_PAYLOAD", "Invalid quote payload")
		return
	}

	parts, err := payload.ResolveParts()
	if err != nil {
		writeInvalidPayload(c, "INVALID_QUOTE_PAYLOAD", "Invalid part price")
		return
	}
	laborCost, err := payload.ResolveLaborCost()
	if err != nil {
		writeInvalidPayload(c, "INVALID_QUOTE_PAYLOAD", "Invalid labor cost")
		return
	}
	validUntil, err := payload.ResolveValidUntil()
	if err != nil {
		writeInvalidPayload(c, "INVALID_QUOTE_PAYLOAD", "valid_until must be RFC3339")
		return
	}

	workshop, err := h.settlement.GetWorkshopByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitQuoteInput{
		WorkshopID:    workshop.ID,
		RequestID:     payload.RequestID,
		Parts:         parts,
		LaborCost:     laborCost,
		EstimatedTime: payload.EstimatedTime,
		Notes:         payload.Notes,
		ValidUntil:    validUntil,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *QuoteHandler) ListByRequestID(c *gin.Context) {
	quotes, err := h.usecase.ListByRequestID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// Accept accepts a quote and returns the spawned work order. Exactly one
// quote per request can ever win; a concurrent accept gets a 409.
//
// @Summary  Accept a quote
// @Tags     quotes
// @Produce  json
// @Param    id path string true "quote id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /quotes/{id}/accept [patch]
func (h *QuoteHandler) Accept(c *gin.Context) {
	order, err := h.usecase.Accept(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "INVALID_REJECT_PAYLOAD", "A rejection reason is required")
		return
	}

	quote, err := h.usecase.Reject(c.Request.Context(), middleware.CallerID(c), c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) CounterOffer(c *gin.Context) {
	var payload request.CounterOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "INVALID_COUNTER_OFFER_PAYLOAD", "Invalid counter-offer payload")
		return
	}
	amount, err := payload.ResolveSuggestedAmount()
	if err != nil {
		writeInvalidPayload(c, "INVALID_COUNTER_OFFER_PAYLOAD", "Invalid suggested amount")
		return
	}

	co, err := h.usecase.CounterOffer(c.Request.Context(), middleware.CallerID(c), c.Param("id"), payload.Message, amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCounterOffer(co))
}
