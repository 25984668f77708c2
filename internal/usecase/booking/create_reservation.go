package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/barberbook-api/internal/audit"
	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ProfileID uint
	StaffID   uint
	ServiceID uint

	CustomerName  string
	CustomerPhone string
	CustomerNote  string

	// ISO-8601, naive shop-local (e.g. "2024-06-10T10:00:00").
	StartDatetime string
	EndDatetime   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Required customer fields
	// --------------------------------------------------
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, httperr.ErrBusiness("missing_customer_fields")
	}

	// --------------------------------------------------
	// 2. Tenant isolation: staff and service must belong
	//    to the reservation's profile
	// --------------------------------------------------
	staff, err := uc.repo.GetStaff(ctx, in.ProfileID, in.StaffID)
	if err != nil || !staff.Active {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ProfileID, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3. Datetimes: same date, end = start + duration
	// --------------------------------------------------
	start, err := parseNaiveDatetime(in.StartDatetime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}
	end, err := parseNaiveDatetime(in.EndDatetime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}

	if start.Format("2006-01-02") != end.Format("2006-01-02") {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}

	// The client computes the end time; never trust it.
	if !end.Equal(start.Add(time.Duration(service.DurationMin) * time.Minute)) {
		return nil, httperr.ErrBusiness("end_time_mismatch")
	}

	date := start.Format("2006-01-02")
	startHM := start.Format("15:04")
	endHM := end.Format("15:04")

	// --------------------------------------------------
	// 4. Must fit the staff's weekly window for that day
	// --------------------------------------------------
	window, err := uc.repo.GetAvailabilityWindow(ctx, in.StaffID, int(start.Weekday()))
	if err != nil {
		return nil, httperr.ErrBusiness("outside_availability")
	}
	if startHM < window.StartTime || endHM > window.EndTime {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	// --------------------------------------------------
	// 5. Conflict check + insert, one transaction
	// --------------------------------------------------
	res := &models.Reservation{
		Reference:       uuid.NewString(),
		ProfileID:       in.ProfileID,
		StaffID:         in.StaffID,
		ServiceID:       in.ServiceID,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerNote:    strings.TrimSpace(in.CustomerNote),
		ReservationDate: date,
		StartTime:       startHM,
		EndTime:         endHM,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservationIfFree(ctx, res); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfileID: in.ProfileID,
		Action:    "reservation_created",
		Entity:    "reservation",
		EntityID:  &res.ID,
		Metadata: map[string]any{
			"staff_id": in.StaffID,
			"date":     date,
			"start":    startHM,
			"end":      endHM,
		},
	})

	return res, nil
}

// parseNaiveDatetime accepts ISO-8601 with or without a zone designator; the
// wall-clock components are taken as-is (naive shop-local time, no
// conversion).
func parseNaiveDatetime(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	var zero time.Time
	return zero, httperr.ErrBusiness("invalid_datetime")
}
