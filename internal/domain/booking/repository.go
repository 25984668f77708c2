package booking

import (
	"context"

	"github.com/barberbook/barberbook-api/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetProfileByID(
		ctx context.Context,
		id uint,
	) (*models.BarberProfile, error)

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		profileID uint,
		serviceID uint,
	) (*models.Service, error)

	GetStaff(
		ctx context.Context,
		profileID uint,
		staffID uint,
	) (*models.Staff, error)

	// -------- Availability --------
	GetAvailabilityWindow(
		ctx context.Context,
		staffID uint,
		dayOfWeek int,
	) (*models.StaffAvailability, error)

	// BusyIntervals returns the non-cancelled reservations plus blocked
	// slots for one staff member on one date, ordered by start time.
	BusyIntervals(
		ctx context.Context,
		staffID uint,
		date string,
	) ([]Interval, error)

	// -------- Reservation --------

	// CreateReservationIfFree re-checks the overlap predicate and inserts
	// inside a single transaction. Returns slot_conflict when the interval
	// is already taken.
	CreateReservationIfFree(
		ctx context.Context,
		res *models.Reservation,
	) error

	GetReservationForProfile(
		ctx context.Context,
		reservationID uint,
		profileID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservations(
		ctx context.Context,
		profileID uint,
		filter ReservationFilter,
	) ([]models.Reservation, error)
}

// ReservationFilter narrows owner-side listings. Zero values mean "any".
type ReservationFilter struct {
	Date       string // exact "YYYY-MM-DD"
	DatePrefix string // "YYYY-MM" for month listings
	Status     string
	StaffID    uint
}
