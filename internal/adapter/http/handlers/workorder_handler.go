package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/request"
	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler drives the work order execution endpoints and the
// change-request sub-protocol.

type WorkOrderHandler struct {
	usecase    usecase.IWorkOrderUseCase
	settlement usecase.ISettlementUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, settlement usecase.ISettlementUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, settlement: settlement}
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) Start(c *gin.Context) {
	var payload request.StartWorkOrderRequest
	// The note is optional; an empty body is a valid start.
	_ = c.ShouldBindJSON(&payload)

	workshop, err := h.settlement.GetWorkshopByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	order, err := h.usecase.Start(c.Request.Context(), workshop.ID, c.Param("id"), payload.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// RequestChange proposes a scope/cost change on an in-service order.
//
// @Summary  Propose a change request
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "work order id"
// @Param    payload body request.ChangeRequestRequest true "change request"
// @Success  201 {object} response.ChangeRequestResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/changes [post]
func (h *WorkOrderHandler) RequestChange(c *gin.Context) {
	var payload request.ChangeRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, "INVALID_CHANGE_PAYLOAD", "Invalid change request payload")
		return
	}
	cost, err := payload.ResolveAdditionalCost()
	if err != nil {
		writeInvalidPayload(c, "INVALID_CHANGE_PAYLOAD", "Invalid additional cost")
		return
	}

	workshop, err := h.settlement.GetWorkshopByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.usecase.RequestChange(c.Request.Context(), workshop.ID, c.Param("id"), payload.Description, payload.Justification, cost)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromChangeRequest(created))
}

func (h *WorkOrderHandler) DecideChange(c *gin.Context) {
	var payload request.DecideChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approve == nil {
		writeInvalidPayload(c, "INVALID_DECISION_PAYLOAD", "An approve boolean is required")
		return
	}

	decided, err := h.usecase.DecideChange(c.Request.Context(), middleware.CallerID(c), c.Param("id"), *payload.Approve)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromChangeRequest(decided))
}

// Complete marks the order done. Blocked with 422 while any change request is
// still pending rider decision.
//
// @Summary  Complete a work order
// @Tags     orders
// @Produce  json
// @Param    id path string true "work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/complete [patch]
func (h *WorkOrderHandler) Complete(c *gin.Context) {
	workshop, err := h.settlement.GetWorkshopByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	order, err := h.usecase.Complete(c.Request.Context(), workshop.ID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) Close(c *gin.Context) {
	order, err := h.usecase.Close(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) ListChanges(c *gin.Context) {
	changes, err := h.usecase.ListChanges(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromChangeRequests(changes))
}
