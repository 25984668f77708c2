package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var barber models.Barber
	if err := h.db.First(&barber, barberID).Error; err != nil {
		httperr.Internal(c, "barber_not_found", "Failed to load account.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("barber_id = ?", barberID).First(&profile).Error; err != nil {
		httperr.Internal(c, "profile_not_found", "Failed to load profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber": gin.H{
			"id":    barber.ID,
			"email": barber.Email,
		},
		"profile": profile,
	})
}
