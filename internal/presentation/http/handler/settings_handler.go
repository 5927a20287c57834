package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
)

// SettingsHandler handles bank account settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetBankAccount returns the account used for QR payments
func (h *SettingsHandler) GetBankAccount(c *gin.Context) {
	response.OK(c, "Bank account retrieved successfully", h.settingsService.Load(c.Request.Context()))
}

// UpdateBankAccount saves the account; the QR cache is cleared as a side effect
func (h *SettingsHandler) UpdateBankAccount(c *gin.Context) {
	var req request.BankAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.settingsService.Save(c.Request.Context(), entity.BankAccount{
		BankCode:      req.BankCode,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bank account updated successfully", account)
}

// ListBanks returns the bank directory
func (h *SettingsHandler) ListBanks(c *gin.Context) {
	banks, err := h.settingsService.ListBanks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Banks retrieved successfully", banks)
}
