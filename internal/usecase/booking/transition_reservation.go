package booking

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/audit"
	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type TransitionReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionReservation {
	return &TransitionReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a reservation through its lifecycle. An id that does not
// belong to the caller's profile reports reservation_not_found so nothing
// leaks across tenants.
func (uc *TransitionReservation) Execute(
	ctx context.Context,
	profileID uint,
	barberID uint,
	reservationID uint,
	newStatus string,
) (*models.Reservation, error) {

	to, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservationForProfile(ctx, reservationID, profileID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanTransition(domain.Status(res.Status), to); err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(profile.Timezone)
	res.Status = string(to)
	switch to {
	case domain.StatusConfirmed:
		res.ConfirmedAt = &now
	case domain.StatusCancelled:
		res.CancelledAt = &now
	case domain.StatusCompleted:
		res.CompletedAt = &now
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		BarberID:  &barberID,
		Action:    "reservation_" + string(to),
		Entity:    "reservation",
		EntityID:  &res.ID,
	})

	return res, nil
}
