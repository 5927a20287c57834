package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/booth-pos/pkg/pagination"
)

// QRHandler handles payment QR HTTP requests
type QRHandler struct {
	qrService       *service.QRService
	settingsService *service.SettingsService
}

// NewQRHandler creates a new QR handler
func NewQRHandler(qrService *service.QRService, settingsService *service.SettingsService) *QRHandler {
	return &QRHandler{qrService: qrService, settingsService: settingsService}
}

// Request returns the QR image for a bill amount, from cache when possible
func (h *QRHandler) Request(c *gin.Context) {
	var req request.QRRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	image, err := h.qrService.GetOrCreate(ctx, h.settingsService.Load(ctx), req.BillID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "QR code retrieved successfully", image)
}

// Bulk pre-generates QR images for a range of amounts
func (h *QRHandler) Bulk(c *gin.Context) {
	var req request.BulkQRRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := service.ParseRange(req.Start, req.End, req.Step)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	result, err := h.qrService.BulkGenerate(ctx, h.settingsService.Load(ctx), req.BillID, r)
	if err != nil && !errors.Is(err, context.Canceled) {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bulk QR generation finished", result)
}

// List returns the cached amounts; ?images=true includes the image payloads.
// Passing page or per_page returns one page of the listing.
func (h *QRHandler) List(c *gin.Context) {
	withImages, _ := strconv.ParseBool(c.DefaultQuery("images", "false"))
	entries := h.qrService.List(c.Request.Context(), withImages)

	data := gin.H{"count": len(entries), "entries": entries}
	if c.Query("page") != "" || c.Query("per_page") != "" {
		params := pagination.DefaultPagination()
		params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		params.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(pagination.DefaultPerPage)))
		page, meta := pagination.Slice(entries, *params)
		data["entries"] = page
		data["pagination"] = meta
	}
	response.OK(c, "QR cache retrieved successfully", data)
}

// Clear empties the cache
func (h *QRHandler) Clear(c *gin.Context) {
	if err := h.qrService.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "QR cache cleared", nil)
}

// DeleteAmount removes the entry for one amount
func (h *QRHandler) DeleteAmount(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Param("amount"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid amount")
		return
	}

	if err := h.qrService.RemoveEntry(c.Request.Context(), amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "QR cache entry removed", gin.H{"amount": amount})
}

// DeleteIndex removes the entry at a position of the ascending-amount listing
func (h *QRHandler) DeleteIndex(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid index")
		return
	}

	amount, err := h.qrService.RemoveEntryAt(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "QR cache entry removed", gin.H{"amount": amount, "index": index})
}
