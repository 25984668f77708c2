package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	usecase "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

type ReservationHandler struct {
	listByDate  *usecase.ListReservationsByDate
	listByMonth *usecase.ListReservationsByMonth
	transition  *usecase.TransitionReservation
}

func NewReservationHandler(
	listByDate *usecase.ListReservationsByDate,
	listByMonth *usecase.ListReservationsByMonth,
	transition *usecase.TransitionReservation,
) *ReservationHandler {
	return &ReservationHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		transition:  transition,
	}
}

// List serves the owner agenda. ?date=YYYY-MM-DD gives one day,
// ?year=&month= gives a whole month; date wins when both are present.
func (h *ReservationHandler) List(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	date := c.Query("date")
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if date != "" {
		var staffID uint
		if s := c.Query("staff_id"); s != "" {
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				httperr.BadRequest(c, "invalid_id", "staff_id must be an integer.")
				return
			}
			staffID = uint(n)
		}

		out, err := h.listByDate.Execute(c.Request.Context(), profileID, date, c.Query("status"), staffID)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	if yearStr != "" || monthStr != "" {
		year, err1 := strconv.Atoi(yearStr)
		month, err2 := strconv.Atoi(monthStr)
		if err1 != nil || err2 != nil {
			httperr.BadRequest(c, "invalid_month", "year and month must be integers.")
			return
		}

		out, err := h.listByMonth.Execute(c.Request.Context(), profileID, year, month)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	httperr.BadRequest(c, "missing_period", "Provide ?date= or ?year=&month=.")
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.transition.Execute(
		c.Request.Context(),
		profileID,
		barberID,
		uint(reservationID),
		req.Status,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
