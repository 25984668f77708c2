package booking

import (
	"context"
	"fmt"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/dto"
	"github.com/barberbook/barberbook-api/internal/httperr"
)

type ListReservationsByMonth struct {
	repo domain.Repository
}

func NewListReservationsByMonth(
	repo domain.Repository,
) *ListReservationsByMonth {
	return &ListReservationsByMonth{
		repo: repo,
	}
}

func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	profileID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	prefix := fmt.Sprintf("%04d-%02d", year, month)

	reservations, err := uc.repo.ListReservations(
		ctx,
		profileID,
		domain.ReservationFilter{DatePrefix: prefix},
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
