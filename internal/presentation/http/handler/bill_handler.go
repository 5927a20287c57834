package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/domain/enum"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
)

// BillHandler handles bill lifecycle HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create snapshots line items into an open bill. A billId in the body resumes that bill.
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill := h.billService.CreateBill(toLineItems(req.Products), req.BillID)
	response.Created(c, "Bill created successfully", response.NewBillResponse(&bill, enum.BillStatusOpen))
}

// ListIncomplete lists bills saved for later payment
func (h *BillHandler) ListIncomplete(c *gin.Context) {
	bills := h.billService.ListIncomplete(c.Request.Context())
	response.OK(c, "Incomplete bills retrieved successfully", response.NewBillListResponse(bills, enum.BillStatusIncomplete))
}

// GetIncomplete returns one incomplete bill for resuming
func (h *BillHandler) GetIncomplete(c *gin.Context) {
	bill, err := h.billService.GetIncomplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", response.NewBillResponse(bill, enum.BillStatusIncomplete))
}

// MarkIncomplete parks a bill in the incomplete set
func (h *BillHandler) MarkIncomplete(c *gin.Context) {
	var req request.BillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill := toBill(req)
	added, err := h.billService.MarkIncomplete(c.Request.Context(), *bill)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Bill saved as incomplete"
	if !added {
		message = "Bill is already incomplete"
	}
	response.OK(c, message, gin.H{
		"bill":  response.NewBillResponse(bill, enum.BillStatusIncomplete),
		"added": added,
	})
}

// MarkPaid removes a bill from the incomplete set
func (h *BillHandler) MarkPaid(c *gin.Context) {
	var req request.PayBillRequest
	if !bindJSON(c, &req) {
		return
	}

	removed, err := h.billService.MarkPaid(c.Request.Context(), req.BillID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill marked as paid", gin.H{
		"billId":  req.BillID,
		"status":  enum.BillStatusPaid,
		"removed": removed,
	})
}
