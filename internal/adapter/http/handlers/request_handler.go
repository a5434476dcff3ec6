package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/request"
	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the service request lifecycle to riders and the
// request feed to workshops.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// Publish creates and publishes a new service request.
//
// @Summary  Publish a service request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    payload body request.PublishServiceRequestRequest true "service request"
// @Success  201 {object} response.ServiceRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /requests [post]
func (h *RequestHandler) Publish(c *gin.Context) {
	var payload request.PublishServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "INVALID_REQUEST_PAYLOAD", "Invalid service request payload")
		return
	}

	created, err := h.usecase.Publish(c.Request.Context(), usecase.PublishRequestInput{
		RiderID:      middleware.CallerID(c),
		MotorcycleID: payload.MotorcycleID,
		CategoryID:   payload.CategoryID,
		Description:  payload.Description,
		District:     payload.District,
		PhotoURLs:    payload.PhotoURLs,
		Urgency:      payload.ResolveUrgency(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// ListAvailable returns published requests, optionally filtered by
// category_id and district query parameters.
func (h *RequestHandler) ListAvailable(c *gin.Context) {
	items, err := h.usecase.ListAvailable(c.Request.Context(), c.Query("category_id"), c.Query("district"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(items))
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	r, err := h.usecase.Cancel(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

// EstimateCost returns min/max/avg of historical quote totals for a category.
func (h *RequestHandler) EstimateCost(c *gin.Context) {
	stats, err := h.usecase.EstimateCost(c.Request.Context(), c.Param("category_slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCategoryCostStats(stats))
}

func (h *RequestHandler) ListHistory(c *gin.Context) {
	history, err := h.usecase.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(history))
}
