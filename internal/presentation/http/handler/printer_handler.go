package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus(c.Request.Context()))
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint(c.Request.Context())
	if err != nil {
		// Return the receipt data anyway
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{"receipt": receipt})
}

// PrintBill prints the receipt of a bill.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	var req request.PrintBillRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.printerService.PrintBill(c.Request.Context(), toBill(req.Bill))
	if err != nil {
		response.OK(c, "Receipt generated but printing failed", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{"receipt": receipt})
}
