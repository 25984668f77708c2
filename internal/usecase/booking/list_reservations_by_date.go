package booking

import (
	"context"
	"time"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/dto"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	profileID uint,
	date string,
	status string,
	staffID uint,
) ([]dto.ReservationListDTO, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if status != "" {
		if _, err := domain.ParseStatus(status); err != nil {
			return nil, err
		}
	}

	reservations, err := uc.repo.ListReservations(
		ctx,
		profileID,
		domain.ReservationFilter{Date: date, Status: status, StaffID: staffID},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:              res.ID,
			Reference:       res.Reference,
			ReservationDate: res.ReservationDate,
			StartTime:       res.StartTime,
			EndTime:         res.EndTime,
			Status:          res.Status,
			CustomerName:    res.CustomerName,
			CustomerPhone:   res.CustomerPhone,
			StaffName:       res.Staff.Name,
			ServiceName:     res.Service.Name,
		})
	}

	return out, nil
}
