package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists bookable "HH:MM" start times for one staff member, service
// and date. No availability window for that weekday means no slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	staff, err := uc.repo.GetStaff(ctx, in.ProfileID, in.StaffID)
	if err != nil || !staff.Active {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ProfileID, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// time.Weekday already encodes 0=Sunday, matching the wire contract.
	// Only a missing window means an empty day; other lookup errors are
	// storage failures and must surface.
	window, err := uc.repo.GetAvailabilityWindow(ctx, in.StaffID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	busy, err := uc.repo.BusyIntervals(ctx, in.StaffID, in.Date)
	if err != nil {
		return nil, err
	}

	slots := domain.Slots(
		domain.Window{Start: window.StartTime, End: window.EndTime},
		service.DurationMin,
		busy,
	)
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}
