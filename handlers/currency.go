package handlers

import (
	"net/http"

	"intothestar/config"
	"intothestar/models"
	"intothestar/services/currency"
	"intothestar/utils"

	"github.com/gin-gonic/gin"
)

// CurrencyHandler exposes the display-currency conversion endpoint.
type CurrencyHandler struct {
	converter currency.Converter
}

func NewCurrencyHandler(converter currency.Converter) *CurrencyHandler {
	return &CurrencyHandler{converter: converter}
}

func (h *CurrencyHandler) Convert(c *gin.Context) {
	var req models.CurrencyConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	converted := h.converter.Convert(c.Request.Context(), req.AmountAED, req.TargetCurrency)
	c.JSON(http.StatusOK, gin.H{
		"base_currency":    config.AppConfig.BaseCurrency,
		"target_currency":  req.TargetCurrency,
		"amount_aed":       req.AmountAED,
		"converted_amount": converted,
	})
}
