package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/httperr"
)

// Human-readable messages per business code; the code itself is the contract.
var businessMessages = map[string]string{
	"slot_conflict":           "The requested slot is no longer available.",
	"invalid_transition":      "The reservation cannot move to that status.",
	"invalid_status":          "Unknown reservation status.",
	"staff_not_found":         "Staff member not found.",
	"service_not_found":       "Service not found.",
	"reservation_not_found":   "Reservation not found.",
	"outside_availability":    "The requested time is outside working hours.",
	"invalid_datetime":        "Invalid or mismatched datetimes.",
	"end_time_mismatch":       "End time does not match the service duration.",
	"missing_customer_fields": "Customer name and phone are required.",
	"invalid_date":            "Date must be YYYY-MM-DD.",
	"invalid_month":           "Invalid year or month.",
}

// writeBusinessError maps a usecase error onto the HTTP surface. Anything
// without a business code is a plain 500.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Request failed."
	}

	switch code {
	case "slot_conflict", "invalid_transition":
		httperr.Conflict(c, code, msg)
	case "staff_not_found", "service_not_found", "reservation_not_found":
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
