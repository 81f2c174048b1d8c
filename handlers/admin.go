package handlers

import (
	"errors"
	"net/http"

	"intothestar/models"
	"intothestar/services/admin"
	"intothestar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the administrative endpoints.
type AdminHandler struct {
	svc    admin.AdminService
	logger *zap.Logger
}

func NewAdminHandler(svc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, logger: logger}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.svc.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Incorrect username or password", "")
			return
		}
		h.logger.Error("Admin login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "login failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.svc.ListBookings(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) GetAvailability(c *gin.Context) {
	days, err := h.svc.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.logger.Error("Failed to list availability", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list availability", "")
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *AdminHandler) UpdateAvailability(c *gin.Context) {
	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.svc.UpdateAvailability(c.Request.Context(), req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Availability updated"})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.Settings(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings", "")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	settings, err := h.svc.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to update settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update settings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "base_price_aed": settings.BasePriceAED})
}
