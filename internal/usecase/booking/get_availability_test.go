package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

func availabilityInput(env *testEnv, date string) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		ProfileID: env.profile.ID,
		StaffID:   env.staff.ID,
		ServiceID: env.service.ID,
		Date:      date,
	}
}

func TestGetAvailability_FullDay(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)

	slots, err := uc.Execute(context.Background(), availabilityInput(env, "2024-06-10"))
	require.NoError(t, err)

	// 09:00-17:00 with 30-minute slots.
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
}

func TestGetAvailability_DayOff(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)

	// Sunday: no window configured, empty list rather than an error.
	slots, err := uc.Execute(context.Background(), availabilityInput(env, "2024-06-09"))
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGetAvailability_ExcludesBookedAndBlocked(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)
	create := NewCreateReservation(env.repo, env.audit)

	_, err := create.Execute(context.Background(), reservationInput(env,
		"2024-06-10T10:00:00", "2024-06-10T10:30:00"))
	require.NoError(t, err)

	blocked := models.BlockedSlot{
		StaffID:   env.staff.ID,
		Date:      "2024-06-10",
		StartTime: "14:00",
		EndTime:   "15:00",
	}
	require.NoError(t, env.db.Create(&blocked).Error)

	slots, err := uc.Execute(context.Background(), availabilityInput(env, "2024-06-10"))
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "14:00")
	assert.NotContains(t, slots, "14:30")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
	assert.Contains(t, slots, "15:00")
}

func TestGetAvailability_CancelledFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)
	create := NewCreateReservation(env.repo, env.audit)
	transition := NewTransitionReservation(env.repo, env.audit)

	res, err := create.Execute(context.Background(), reservationInput(env,
		"2024-06-10T10:00:00", "2024-06-10T10:30:00"))
	require.NoError(t, err)

	_, err = transition.Execute(context.Background(), env.profile.ID, 1, res.ID, "cancelled")
	require.NoError(t, err)

	slots, err := uc.Execute(context.Background(), availabilityInput(env, "2024-06-10"))
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestGetAvailability_LongServiceNearClose(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)

	long := models.Service{
		ProfileID:   env.profile.ID,
		Name:        "Cut and beard",
		DurationMin: 45,
		Price:       25,
		Active:      true,
	}
	require.NoError(t, env.db.Create(&long).Error)

	in := availabilityInput(env, "2024-06-10")
	in.ServiceID = long.ID

	slots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// 16:30 would overrun the 17:00 close by 15 minutes.
	assert.Contains(t, slots, "16:00")
	assert.NotContains(t, slots, "16:30")
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)

	_, err := uc.Execute(context.Background(), availabilityInput(env, "10.06.2024"))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

type windowLookupFailRepo struct {
	domain.Repository
}

func (windowLookupFailRepo) GetAvailabilityWindow(ctx context.Context, staffID uint, dayOfWeek int) (*models.StaffAvailability, error) {
	return nil, errors.New("driver: bad connection")
}

func TestGetAvailability_WindowLookupFailurePropagates(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(windowLookupFailRepo{env.repo})

	// A storage failure is not an empty day.
	slots, err := uc.Execute(context.Background(), availabilityInput(env, "2024-06-10"))
	require.Error(t, err)
	assert.Nil(t, slots)

	_, isBusiness := httperr.BusinessCode(err)
	assert.False(t, isBusiness)
}

func TestGetAvailability_UnknownStaff(t *testing.T) {
	env := newTestEnv(t)
	uc := NewGetAvailability(env.repo)

	in := availabilityInput(env, "2024-06-10")
	in.StaffID = 9999

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}
