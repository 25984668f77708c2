package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/storage"
	usecase "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

type PublicHandler struct {
	db           *gorm.DB
	store        storage.ObjectStore
	availability *usecase.GetAvailability
	reserve      *usecase.CreateReservation
}

func NewPublicHandler(
	db *gorm.DB,
	store storage.ObjectStore,
	availability *usecase.GetAvailability,
	reserve *usecase.CreateReservation,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		store:        store,
		availability: availability,
		reserve:      reserve,
	}
}

// --------- Shop browse ---------

type publicShopDTO struct {
	ShopName    string `json:"shop_name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

func (h *PublicHandler) ListShops(c *gin.Context) {
	city := strings.ToLower(strings.TrimSpace(c.Query("city")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.BarberProfile{})
	if city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(shop_name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var profiles []models.BarberProfile
	if err := q.Order("shop_name ASC").Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Failed to list shops.")
		return
	}

	out := make([]publicShopDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, publicShopDTO{
			ShopName:    p.ShopName,
			Slug:        p.Slug,
			Description: p.Description,
			City:        p.City,
			Country:     p.Country,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}

// --------- Shop detail ---------

type publicStaffDTO struct {
	ID           uint                       `json:"id"`
	Name         string                     `json:"name"`
	Availability []models.StaffAvailability `json:"availability"`
}

type publicImageDTO struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

func (h *PublicHandler) GetShop(c *gin.Context) {
	slug := c.Param("slug")

	var profile models.BarberProfile
	if err := h.db.Where("slug = ?", slug).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Failed to load shop.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("profile_id = ? AND active = ?", profile.ID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_get_shop", "Failed to load shop.")
		return
	}

	var staff []models.Staff
	if err := h.db.
		Preload("Availability").
		Where("profile_id = ? AND active = ?", profile.ID, true).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_get_shop", "Failed to load shop.")
		return
	}

	staffOut := make([]publicStaffDTO, 0, len(staff))
	for _, s := range staff {
		staffOut = append(staffOut, publicStaffDTO{
			ID:           s.ID,
			Name:         s.Name,
			Availability: s.Availability,
		})
	}

	images := h.presignedImages(c, profile.ID)

	c.JSON(http.StatusOK, gin.H{
		"shop": gin.H{
			"shop_name":   profile.ShopName,
			"slug":        profile.Slug,
			"description": profile.Description,
			"address":     profile.Address,
			"city":        profile.City,
			"country":     profile.Country,
			"phone":       profile.Phone,
			"currency":    profile.Currency,
			"locale":      profile.Locale,
			"timezone":    profile.Timezone,
		},
		"services": services,
		"staff":    staffOut,
		"images":   images,
	})
}

// presignedImages swaps stored object keys for short-lived URLs. A missing
// store or a presign failure just drops the image from the payload.
func (h *PublicHandler) presignedImages(c *gin.Context, profileID uint) []publicImageDTO {
	out := []publicImageDTO{}
	if h.store == nil {
		return out
	}

	var rows []models.ShopImage
	if err := h.db.
		Where("profile_id = ?", profileID).
		Order("order_index ASC, id ASC").
		Find(&rows).Error; err != nil {
		return out
	}

	for _, img := range rows {
		url, err := h.store.PresignedURL(c.Request.Context(), img.Key)
		if err != nil {
			continue
		}
		out = append(out, publicImageDTO{ID: img.ID, URL: url, Alt: img.Alt})
	}
	return out
}

// --------- Availability ---------

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	slug := c.Param("slug")

	var profile models.BarberProfile
	if err := h.db.Where("slug = ?", slug).First(&profile).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	staffID, err1 := strconv.ParseUint(c.Query("staff_id"), 10, 64)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	date := c.Query("date")
	if err1 != nil || err2 != nil || date == "" {
		httperr.BadRequest(c, "invalid_request", "staff_id, service_id and date are required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfileID: profile.ID,
		StaffID:   uint(staffID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// --------- Reservation ---------

type PublicReservationRequest struct {
	StaffID   uint `json:"staff_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerNote  string `json:"customer_note"`

	StartDatetime string `json:"start_datetime" binding:"required"`
	EndDatetime   string `json:"end_datetime" binding:"required"`
}

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	slug := c.Param("slug")

	var profile models.BarberProfile
	if err := h.db.Where("slug = ?", slug).First(&profile).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	var req PublicReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.reserve.Execute(c.Request.Context(), usecase.CreateReservationInput{
		ProfileID:     profile.ID,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerNote:  req.CustomerNote,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               res.ID,
		"reference":        res.Reference,
		"status":           res.Status,
		"reservation_date": res.ReservationDate,
		"start_time":       res.StartTime,
		"end_time":         res.EndTime,
	})
}
