package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type AvailabilityWindowConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateStaffRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Email        string                     `json:"email"`
	Phone        string                     `json:"phone"`
	Active       *bool                      `json:"active"`
	Availability []AvailabilityWindowConfig `json:"availability"`
}

type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type UpdateAvailabilityRequest struct {
	Windows []AvailabilityWindowConfig `json:"windows" binding:"required"`
}

// validateWindows enforces start < end and at most one window per weekday,
// and rewrites each time into the canonical zero-padded "HH:MM" form. Every
// overlap predicate downstream compares these strings lexicographically, so
// an unpadded "9:00" must never reach the database.
func validateWindows(windows []AvailabilityWindowConfig) (string, bool) {
	seen := map[int]bool{}
	for i := range windows {
		w := &windows[i]

		start, err := domain.ParseClock(w.StartTime)
		if err != nil {
			return "invalid_time", false
		}
		end, err := domain.ParseClock(w.EndTime)
		if err != nil {
			return "invalid_time", false
		}
		if start >= end {
			return "window_start_after_end", false
		}
		if seen[w.DayOfWeek] {
			return "duplicate_day_of_week", false
		}
		seen[w.DayOfWeek] = true

		w.StartTime = domain.FormatClock(start)
		w.EndTime = domain.FormatClock(end)
	}
	return "", true
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var staff []models.Staff
	if err := h.db.
		Preload("Availability").
		Where("profile_id = ?", profileID).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if code, ok := validateWindows(req.Availability); !ok {
		httperr.BadRequest(c, code, "Invalid availability windows.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	staff := models.Staff{
		ProfileID: profileID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Active:    active,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}

		for _, w := range req.Availability {
			window := models.StaffAvailability{
				StaffID:   staff.ID,
				DayOfWeek: w.DayOfWeek,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			}
			if err := tx.Create(&window).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Failed to create staff.")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Failed to load staff member.")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Failed to save staff member.")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// Delete removes the staff member plus availability windows and blocked
// slots in one transaction.
func (h *StaffHandler) Delete(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_staff", "Failed to load staff member.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staff.ID).Delete(&models.StaffAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_id = ?", staff.ID).Delete(&models.BlockedSlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&staff).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Failed to delete staff member.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Availability ---------

func (h *StaffHandler) GetAvailability(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&staff).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var windows []models.StaffAvailability
	if err := h.db.
		Where("staff_id = ?", staff.ID).
		Order("day_of_week ASC").
		Find(&windows).Error; err != nil {

		httperr.Internal(c, "failed_to_get_availability", "Failed to load availability.")
		return
	}

	c.JSON(http.StatusOK, windows)
}

// UpdateAvailability replaces the full weekly set. Delete and re-insert run
// in one transaction so readers never observe an empty schedule.
func (h *StaffHandler) UpdateAvailability(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&staff).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if code, ok := validateWindows(req.Windows); !ok {
		httperr.BadRequest(c, code, "Invalid availability windows.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staff.ID).Delete(&models.StaffAvailability{}).Error; err != nil {
			return err
		}

		for _, w := range req.Windows {
			window := models.StaffAvailability{
				StaffID:   staff.ID,
				DayOfWeek: w.DayOfWeek,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			}
			if err := tx.Create(&window).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Failed to save availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Blocked slots ---------

type CreateBlockedSlotRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *StaffHandler) ListBlockedSlots(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&staff).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var blocked []models.BlockedSlot
	if err := h.db.
		Where("staff_id = ?", staff.ID).
		Order("date ASC, start_time ASC").
		Find(&blocked).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_slots", "Failed to list blocked slots.")
		return
	}

	c.JSON(http.StatusOK, blocked)
}

func (h *StaffHandler) CreateBlockedSlot(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&staff).Error; err != nil {

		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	start, err := domain.ParseClock(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Invalid start time.")
		return
	}
	end, err := domain.ParseClock(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Invalid end time.")
		return
	}
	if start >= end {
		httperr.BadRequest(c, "window_start_after_end", "Start must be before end.")
		return
	}

	// Canonical "HH:MM"; the SQL overlap predicate is a string comparison.
	blocked := models.BlockedSlot{
		StaffID:   staff.ID,
		Date:      req.Date,
		StartTime: domain.FormatClock(start),
		EndTime:   domain.FormatClock(end),
		Reason:    req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_slot", "Failed to create blocked slot.")
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *StaffHandler) DeleteBlockedSlot(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	blockedID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid blocked slot id.")
		return
	}

	// Ownership runs through the staff table.
	result := h.db.
		Where(
			"id = ? AND staff_id IN (?)",
			blockedID,
			h.db.Model(&models.Staff{}).Select("id").Where("profile_id = ?", profileID),
		).
		Delete(&models.BlockedSlot{})

	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_blocked_slot", "Failed to delete blocked slot.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_slot_not_found", "Blocked slot not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
