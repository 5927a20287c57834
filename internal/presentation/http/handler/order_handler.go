package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/domain/enum"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
)

// OrderHandler handles order-building HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Preview returns the line items and total of a selection
func (h *OrderHandler) Preview(c *gin.Context) {
	var req request.SelectionRequest
	if !bindJSON(c, &req) {
		return
	}

	preview := h.orderService.Preview(c.Request.Context(), toSelection(req.Selection))
	response.OK(c, "Order preview", preview)
}

// Checkout turns a selection into an open bill
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req request.SelectionRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.orderService.Checkout(c.Request.Context(), toSelection(req.Selection))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", response.NewBillResponse(bill, enum.BillStatusOpen))
}
