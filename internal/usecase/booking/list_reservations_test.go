package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barberbook-api/internal/httperr"
)

func TestListReservationsByDate(t *testing.T) {
	env := newTestEnv(t)
	create := NewCreateReservation(env.repo, env.audit)
	transition := NewTransitionReservation(env.repo, env.audit)
	uc := NewListReservationsByDate(env.repo)

	first, err := create.Execute(context.Background(), reservationInput(env,
		"2024-06-10T09:00:00", "2024-06-10T09:30:00"))
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), reservationInput(env,
		"2024-06-10T11:00:00", "2024-06-10T11:30:00"))
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), reservationInput(env,
		"2024-06-11T09:00:00", "2024-06-11T09:30:00"))
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), env.profile.ID, "2024-06-10", "", 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Equal(t, "11:00", out[1].StartTime)
	assert.Equal(t, "Marko", out[0].StaffName)
	assert.Equal(t, "Haircut", out[0].ServiceName)

	// Status filter.
	_, err = transition.Execute(context.Background(), env.profile.ID, 1, first.ID, "confirmed")
	require.NoError(t, err)

	out, err = uc.Execute(context.Background(), env.profile.ID, "2024-06-10", "confirmed", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, first.ID, out[0].ID)

	_, err = uc.Execute(context.Background(), env.profile.ID, "2024-06-10", "scheduled", 0)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), env.profile.ID, "10/06/2024", "", 0)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	// Staff filter.
	out, err = uc.Execute(context.Background(), env.profile.ID, "2024-06-10", "", env.staff.ID)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.Execute(context.Background(), env.profile.ID, "2024-06-10", "", 9999)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListReservationsByMonth(t *testing.T) {
	env := newTestEnv(t)
	create := NewCreateReservation(env.repo, env.audit)
	uc := NewListReservationsByMonth(env.repo)

	for _, day := range []string{"03", "10", "24"} {
		_, err := create.Execute(context.Background(), reservationInput(env,
			"2024-06-"+day+"T09:00:00", "2024-06-"+day+"T09:30:00"))
		require.NoError(t, err)
	}
	_, err := create.Execute(context.Background(), reservationInput(env,
		"2024-07-01T09:00:00", "2024-07-01T09:30:00"))
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), env.profile.ID, 2024, 6)
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = uc.Execute(context.Background(), env.profile.ID, 2024, 7)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = uc.Execute(context.Background(), env.profile.ID, 2024, 13)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
}
