package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

var (
	supportedCurrencies = map[string]bool{"EUR": true, "CHF": true, "MKD": true}
	supportedLocales    = map[string]bool{"en": true, "sq": true, "de": true}
)

// Slug is deliberately absent: it is fixed at registration.
type UpdateProfileRequest struct {
	ShopName    *string `json:"shop_name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	Phone       *string `json:"phone"`
	Currency    *string `json:"currency"`
	Locale      *string `json:"locale"`
	Timezone    *string `json:"timezone"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var profile models.BarberProfile
	if err := h.db.First(&profile, profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "profile_not_found", "Profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Failed to load profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var profile models.BarberProfile
	if err := h.db.First(&profile, profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "profile_not_found", "Profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Failed to load profile.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Currency != nil && !supportedCurrencies[*req.Currency] {
		httperr.BadRequest(c, "invalid_currency", "Supported currencies: EUR, CHF, MKD.")
		return
	}
	if req.Locale != nil && !supportedLocales[*req.Locale] {
		httperr.BadRequest(c, "invalid_locale", "Supported locales: en, sq, de.")
		return
	}
	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
		return
	}
	if req.ShopName != nil && *req.ShopName == "" {
		httperr.BadRequest(c, "invalid_shop_name", "Shop name cannot be empty.")
		return
	}

	if req.ShopName != nil {
		profile.ShopName = *req.ShopName
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Currency != nil {
		profile.Currency = *req.Currency
	}
	if req.Locale != nil {
		profile.Locale = *req.Locale
	}
	if req.Timezone != nil {
		profile.Timezone = *req.Timezone
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to save profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}
