package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *BookingGormRepository) GetProfileByID(
	ctx context.Context,
	id uint,
) (*models.BarberProfile, error) {

	var profile models.BarberProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	profileID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", serviceID, profileID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	profileID uint,
	staffID uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", staffID, profileID).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailabilityWindow(
	ctx context.Context,
	staffID uint,
	dayOfWeek int,
) (*models.StaffAvailability, error) {

	var window models.StaffAvailability
	if err := r.db.WithContext(ctx).
		Where("staff_id = ? AND day_of_week = ?", staffID, dayOfWeek).
		First(&window).Error; err != nil {
		return nil, err
	}
	return &window, nil
}

func (r *BookingGormRepository) BusyIntervals(
	ctx context.Context,
	staffID uint,
	date string,
) ([]domain.Interval, error) {
	return busyIntervals(r.db.WithContext(ctx), staffID, date)
}

// busyIntervals collects reservation and blocked-slot ranges for one staff
// member and date. Runs against either the root db or an open transaction.
func busyIntervals(tx *gorm.DB, staffID uint, date string) ([]domain.Interval, error) {
	var reservations []models.Reservation
	if err := tx.
		Select("start_time", "end_time").
		Where(
			"staff_id = ? AND reservation_date = ? AND status <> ?",
			staffID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	var blocked []models.BlockedSlot
	if err := tx.
		Select("start_time", "end_time").
		Where("staff_id = ? AND date = ?", staffID, date).
		Order("start_time ASC").
		Find(&blocked).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(reservations)+len(blocked))
	for _, res := range reservations {
		intervals = append(intervals, domain.Interval{Start: res.StartTime, End: res.EndTime})
	}
	for _, b := range blocked {
		intervals = append(intervals, domain.Interval{Start: b.StartTime, End: b.EndTime})
	}
	return intervals, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

// CreateReservationIfFree re-runs the overlap predicate and inserts inside a
// single transaction so two concurrent requests cannot both pass the check.
// On Postgres the staff row is locked FOR UPDATE first: a scan of existing
// reservations alone cannot stop two first bookings on an empty day from
// racing past each other. sqlite (tests) rejects the clause and serializes
// writers on its own.
func (r *BookingGormRepository) CreateReservationIfFree(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		lock := tx
		if tx.Dialector.Name() == "postgres" {
			lock = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var staff models.Staff
		if err := lock.First(&staff, res.StaffID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Reservation{}).
			Where(
				"staff_id = ? AND reservation_date = ? AND status <> ? AND start_time < ? AND end_time > ?",
				res.StaffID,
				res.ReservationDate,
				string(domain.StatusCancelled),
				res.EndTime,
				res.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		var blockedCount int64
		if err := tx.Model(&models.BlockedSlot{}).
			Where(
				"staff_id = ? AND date = ? AND start_time < ? AND end_time > ?",
				res.StaffID,
				res.ReservationDate,
				res.EndTime,
				res.StartTime,
			).
			Count(&blockedCount).Error; err != nil {
			return err
		}
		if blockedCount > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(res).Error
	})
}

func (r *BookingGormRepository) GetReservationForProfile(
	ctx context.Context,
	reservationID uint,
	profileID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", reservationID, profileID).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *BookingGormRepository) ListReservations(
	ctx context.Context,
	profileID uint,
	filter domain.ReservationFilter,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Service").
		Where("profile_id = ?", profileID)

	if filter.Date != "" {
		q = q.Where("reservation_date = ?", filter.Date)
	}
	if filter.DatePrefix != "" {
		q = q.Where("reservation_date LIKE ?", filter.DatePrefix+"%")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StaffID != 0 {
		q = q.Where("staff_id = ?", filter.StaffID)
	}

	var reservations []models.Reservation
	if err := q.
		Order("reservation_date ASC, start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
